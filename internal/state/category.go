package state

import "github.com/atomicstack/recipebox/internal/api"

// CategoryStore holds the category snapshot. It is refreshed independently
// of the recipe snapshot; a recipe may name a category that is not here.
type CategoryStore interface {
	Entries() []api.Category
	SetEntries([]api.Category)
	Len() int
	Name(id api.ID) string
}

type categoryStore struct {
	entries []api.Category
}

func NewCategoryStore() CategoryStore {
	return &categoryStore{}
}

func (s *categoryStore) Entries() []api.Category {
	return cloneCategories(s.entries)
}

func (s *categoryStore) SetEntries(entries []api.Category) {
	s.entries = cloneCategories(entries)
}

func (s *categoryStore) Len() int {
	return len(s.entries)
}

// Name returns the display name for id, or "" when the id is unknown.
func (s *categoryStore) Name(id api.ID) string {
	for _, c := range s.entries {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func cloneCategories(entries []api.Category) []api.Category {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]api.Category, len(entries))
	copy(dup, entries)
	return dup
}

package state

import "github.com/atomicstack/recipebox/internal/api"

// RecipeStore holds the recipe snapshot currently on screen. The snapshot is
// replaced wholesale; callers never see the store's backing slice.
type RecipeStore interface {
	Entries() []api.Recipe
	SetEntries([]api.Recipe)
	Len() int
	Find(id api.ID) (api.Recipe, bool)
}

type recipeStore struct {
	entries []api.Recipe
}

func NewRecipeStore() RecipeStore {
	return &recipeStore{}
}

func (s *recipeStore) Entries() []api.Recipe {
	return cloneRecipes(s.entries)
}

func (s *recipeStore) SetEntries(entries []api.Recipe) {
	s.entries = cloneRecipes(entries)
}

func (s *recipeStore) Len() int {
	return len(s.entries)
}

func (s *recipeStore) Find(id api.ID) (api.Recipe, bool) {
	for _, r := range s.entries {
		if r.ID == id {
			return r, true
		}
	}
	return api.Recipe{}, false
}

func cloneRecipes(entries []api.Recipe) []api.Recipe {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]api.Recipe, len(entries))
	copy(dup, entries)
	return dup
}

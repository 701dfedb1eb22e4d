// Package route names the screens of the recipe browser and the rules for
// moving between them.
package route

// Path identifies a screen.
type Path string

const (
	List        Path = "/"
	AddCategory Path = "/add-category"
	AddRecipe   Path = "/add-recipe"
)

func (p Path) String() string { return string(p) }

// AddRecipeTarget returns where the add-recipe action leads. A recipe needs a
// category, so with none known the category form is shown instead.
func AddRecipeTarget(categoryCount int) Path {
	if categoryCount > 0 {
		return AddRecipe
	}
	return AddCategory
}

// Screen describes one route.
type Screen struct {
	Path  Path
	Title string
	// Form screens return to the list on cancel or success.
	Form bool
}

// Registry exposes lookup utilities for the known screens.
type Registry struct {
	screens map[Path]*Screen
	order   []Path
}

// BuildRegistry constructs the registry of every screen.
func BuildRegistry() *Registry {
	r := &Registry{screens: make(map[Path]*Screen)}
	add := func(s *Screen) {
		r.screens[s.Path] = s
		r.order = append(r.order, s.Path)
	}
	add(&Screen{Path: List, Title: "Recipe List"})
	add(&Screen{Path: AddCategory, Title: "Add Category", Form: true})
	add(&Screen{Path: AddRecipe, Title: "Add Recipe", Form: true})
	return r
}

// Find locates a screen by path.
func (r *Registry) Find(p Path) (*Screen, bool) {
	s, ok := r.screens[p]
	return s, ok
}

// Paths lists registered paths in registration order.
func (r *Registry) Paths() []Path {
	out := make([]Path, len(r.order))
	copy(out, r.order)
	return out
}

// Title returns the screen title, falling back to the raw path.
func (r *Registry) Title(p Path) string {
	if s, ok := r.Find(p); ok {
		return s.Title
	}
	return string(p)
}

package dispatcher

import (
	"github.com/atomicstack/recipebox/internal/api"
	"github.com/atomicstack/recipebox/internal/backend"
	"github.com/atomicstack/recipebox/internal/state"
)

type Result struct {
	RecipesUpdated    bool
	CategoriesUpdated bool
	// Stale is set when a read result arrived after a newer request of the
	// same kind had been issued and was therefore dropped.
	Stale bool
}

// Sequencer reports the newest issued request per kind.
type Sequencer interface {
	Latest(kind backend.Kind) uint64
}

type Dispatcher struct {
	recipes    state.RecipeStore
	categories state.CategoryStore
	seq        Sequencer
}

// New builds a dispatcher. With a nil Sequencer every successful read is
// applied in arrival order.
func New(r state.RecipeStore, c state.CategoryStore, seq Sequencer) *Dispatcher {
	return &Dispatcher{recipes: r, categories: c, seq: seq}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindRecipes:
		if d.stale(evt) {
			res.Stale = true
			return res
		}
		if recipes, ok := evt.Data.([]api.Recipe); ok {
			d.recipes.SetEntries(recipes)
			res.RecipesUpdated = true
		}
	case backend.KindCategories:
		if d.stale(evt) {
			res.Stale = true
			return res
		}
		if categories, ok := evt.Data.([]api.Category); ok {
			d.categories.SetEntries(categories)
			res.CategoriesUpdated = true
		}
	}
	return res
}

func (d *Dispatcher) stale(evt backend.Event) bool {
	if d.seq == nil || evt.Seq == 0 {
		return false
	}
	return evt.Seq != d.seq.Latest(evt.Kind)
}

package events

import "github.com/atomicstack/recipebox/internal/logging"

type RecipeTracer struct{}

type CategoryTracer struct{}

var (
	Recipe   = RecipeTracer{}
	Category = CategoryTracer{}
)

func (RecipeTracer) Request(op string, seq uint64, arg string) {
	logging.Trace("recipe.request", map[string]interface{}{"op": op, "seq": seq, "arg": arg})
}

func (RecipeTracer) Applied(op string, seq uint64, count int) {
	logging.Trace("recipe.applied", map[string]interface{}{"op": op, "seq": seq, "count": count})
}

func (RecipeTracer) Stale(op string, seq, latest uint64) {
	logging.Trace("recipe.stale", map[string]interface{}{"op": op, "seq": seq, "latest": latest})
}

func (RecipeTracer) Failed(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("recipe.failed", map[string]interface{}{"op": op, "error": err.Error()})
}

func (RecipeTracer) Delete(id string) {
	logging.Trace("recipe.delete", map[string]interface{}{"id": id})
}

func (RecipeTracer) Deleted(id string) {
	logging.Trace("recipe.deleted", map[string]interface{}{"id": id})
}

func (RecipeTracer) Export(path string, rows int) {
	logging.Trace("recipe.export", map[string]interface{}{"path": path, "rows": rows})
}

func (CategoryTracer) Request(seq uint64) {
	logging.Trace("category.request", map[string]interface{}{"seq": seq})
}

func (CategoryTracer) Applied(seq uint64, count int) {
	logging.Trace("category.applied", map[string]interface{}{"seq": seq, "count": count})
}

func (CategoryTracer) Select(id, name string) {
	logging.Trace("category.select", map[string]interface{}{"id": id, "name": name})
}

func (CategoryTracer) Failed(err error) {
	if err == nil {
		return
	}
	logging.Trace("category.failed", map[string]interface{}{"error": err.Error()})
}

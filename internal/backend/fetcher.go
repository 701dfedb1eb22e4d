package backend

import (
	"context"
	"sync"

	"github.com/atomicstack/recipebox/internal/api"
)

// Kind represents the type of data carried by an Event.
type Kind int

const (
	KindRecipes Kind = iota
	KindCategories
	KindDelete
	KindCreate
)

func (k Kind) String() string {
	switch k {
	case KindRecipes:
		return "recipes"
	case KindCategories:
		return "categories"
	case KindDelete:
		return "delete"
	case KindCreate:
		return "create"
	default:
		return "unknown"
	}
}

// Op names the request that produced an event.
type Op string

const (
	OpAll         Op = "all"
	OpFilter      Op = "filter"
	OpSearch      Op = "search"
	OpDelete      Op = "delete"
	OpAddCategory Op = "add-category"
	OpAddRecipe   Op = "add-recipe"
)

// Event conveys the outcome of one request to the recipe service.
type Event struct {
	Kind Kind
	Op   Op
	Seq  uint64
	Data interface{}
	Err  error
}

// Source is the subset of the REST client the fetcher needs.
type Source interface {
	AllRecipes(ctx context.Context) ([]api.Recipe, error)
	AllCategories(ctx context.Context) ([]api.Category, error)
	FilterRecipes(ctx context.Context, categoryID api.ID) ([]api.Recipe, error)
	SearchRecipes(ctx context.Context, query string) ([]api.Recipe, error)
	DeleteRecipe(ctx context.Context, id api.ID) error
	AddCategory(ctx context.Context, name string) error
	AddRecipe(ctx context.Context, r api.NewRecipe) error
}

// Request performs a single call and reports it as an Event. Requests are
// created on the display goroutine and run elsewhere.
type Request func() Event

// Fetcher turns service calls into Requests. Every recipe or category read
// is stamped with a per-kind sequence number at the moment it is issued, so
// consumers can tell whether a result belongs to the newest request.
type Fetcher struct {
	src Source
	ctx context.Context

	mu     sync.Mutex
	issued map[Kind]uint64
}

// NewFetcher creates a fetcher bound to ctx. A nil ctx means Background.
func NewFetcher(ctx context.Context, src Source) *Fetcher {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Fetcher{src: src, ctx: ctx, issued: make(map[Kind]uint64)}
}

// Latest returns the sequence number of the most recently issued request of
// the given kind, or zero if none was issued.
func (f *Fetcher) Latest(kind Kind) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.issued[kind]
}

func (f *Fetcher) next(kind Kind) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issued[kind]++
	return f.issued[kind]
}

func (f *Fetcher) recipes(op Op, call func(context.Context) ([]api.Recipe, error)) Request {
	seq := f.next(KindRecipes)
	return func() Event {
		recipes, err := call(f.ctx)
		return Event{Kind: KindRecipes, Op: op, Seq: seq, Data: recipes, Err: err}
	}
}

// AllRecipes issues a read of every recipe.
func (f *Fetcher) AllRecipes() Request {
	return f.recipes(OpAll, f.src.AllRecipes)
}

// FilterRecipes issues a read scoped to one category.
func (f *Fetcher) FilterRecipes(categoryID api.ID) Request {
	return f.recipes(OpFilter, func(ctx context.Context) ([]api.Recipe, error) {
		return f.src.FilterRecipes(ctx, categoryID)
	})
}

// SearchRecipes issues a free-text search.
func (f *Fetcher) SearchRecipes(query string) Request {
	return f.recipes(OpSearch, func(ctx context.Context) ([]api.Recipe, error) {
		return f.src.SearchRecipes(ctx, query)
	})
}

// AllCategories issues a read of every category.
func (f *Fetcher) AllCategories() Request {
	seq := f.next(KindCategories)
	return func() Event {
		categories, err := f.src.AllCategories(f.ctx)
		return Event{Kind: KindCategories, Op: OpAll, Seq: seq, Data: categories, Err: err}
	}
}

// DeleteRecipe issues a delete. The event carries the id as Data.
func (f *Fetcher) DeleteRecipe(id api.ID) Request {
	return func() Event {
		err := f.src.DeleteRecipe(f.ctx, id)
		return Event{Kind: KindDelete, Op: OpDelete, Data: id, Err: err}
	}
}

// AddCategory issues a category creation. The event carries the name as Data.
func (f *Fetcher) AddCategory(name string) Request {
	return func() Event {
		err := f.src.AddCategory(f.ctx, name)
		return Event{Kind: KindCreate, Op: OpAddCategory, Data: name, Err: err}
	}
}

// AddRecipe issues a recipe creation. The event carries the item name as Data.
func (f *Fetcher) AddRecipe(r api.NewRecipe) Request {
	return func() Event {
		err := f.src.AddRecipe(f.ctx, r)
		return Event{Kind: KindCreate, Op: OpAddRecipe, Data: r.Item, Err: err}
	}
}

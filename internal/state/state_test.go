package state

import (
	"testing"

	"github.com/atomicstack/recipebox/internal/api"
)

func TestRecipeStoreClonesOnReadAndWrite(t *testing.T) {
	store := NewRecipeStore()
	input := []api.Recipe{{ID: "1", Item: "Soup"}}
	store.SetEntries(input)
	input[0].Item = "changed"

	got := store.Entries()
	if got[0].Item != "Soup" {
		t.Fatalf("expected store to keep its own copy, got %q", got[0].Item)
	}
	got[0].Item = "mutated"
	if again := store.Entries(); again[0].Item != "Soup" {
		t.Fatalf("expected read copy to be detached, got %q", again[0].Item)
	}
	if r, ok := store.Find("1"); !ok || r.Item != "Soup" {
		t.Fatalf("expected to find recipe 1, got %#v", r)
	}
	if _, ok := store.Find("2"); ok {
		t.Fatalf("did not expect recipe 2")
	}
}

func TestRecipeStoreReplacesWholesale(t *testing.T) {
	store := NewRecipeStore()
	store.SetEntries([]api.Recipe{{ID: "1"}, {ID: "2"}})
	store.SetEntries([]api.Recipe{{ID: "3"}})
	if store.Len() != 1 || store.Entries()[0].ID != "3" {
		t.Fatalf("expected single replaced entry, got %#v", store.Entries())
	}
	store.SetEntries(nil)
	if store.Len() != 0 {
		t.Fatalf("expected empty snapshot")
	}
}

func TestCategoryStoreName(t *testing.T) {
	store := NewCategoryStore()
	store.SetEntries([]api.Category{{ID: "7", Name: "Dessert"}})
	if got := store.Name("7"); got != "Dessert" {
		t.Fatalf("expected Dessert, got %q", got)
	}
	if got := store.Name("99"); got != "" {
		t.Fatalf("expected unknown id to yield empty name, got %q", got)
	}
}

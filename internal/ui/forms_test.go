package ui

import (
	"testing"

	"github.com/atomicstack/recipebox/internal/api"
	"github.com/atomicstack/recipebox/internal/route"
)

func TestAddCategoryReturnsToListAndReloads(t *testing.T) {
	h, rec, srv := startDemo(t)
	h.Key("c")
	h.Type("Salads")
	h.Key("enter")

	if h.Model().Route() != route.List || h.Model().Mode() != ModeList {
		t.Fatalf("expected list after save, got %s", h.Model().Route())
	}
	cats := srv.Categories()
	if len(cats) != 4 || cats[3].Name != "Salads" {
		t.Fatalf("expected Salads stored, got %#v", cats)
	}
	if len(h.Model().Categories()) != 4 {
		t.Fatalf("expected reloaded category snapshot, got %#v", h.Model().Categories())
	}
	toasts := rec.all()
	if len(toasts) != 1 || toasts[0].Kind != ToastSuccess || toasts[0].Message != `Category "Salads" added` {
		t.Fatalf("unexpected toasts %#v", toasts)
	}
}

func TestAddCategoryDuplicateIsRejectedLocally(t *testing.T) {
	h, _, srv := startDemo(t)
	h.Key("c")
	h.Type("soups")
	h.Key("enter")
	if h.Model().categoryForm == nil || h.Model().categoryForm.Error() != "Category already exists" {
		t.Fatal("expected inline duplicate error")
	}
	if srv.Hits("/api/recipe/add-category") != 0 {
		t.Fatal("expected no request for a known duplicate")
	}
}

func TestAddCategoryServiceErrorStaysOnForm(t *testing.T) {
	h, rec, srv := startDemo(t)
	srv.Seed(append(srv.Categories(), api.Category{ID: "4", Name: "Salads"}), srv.Recipes())
	h.Key("c")
	h.Type("Salads")
	h.Key("enter")

	if h.Model().Route() != route.AddCategory {
		t.Fatalf("expected to stay on the form, got %s", h.Model().Route())
	}
	f := h.Model().categoryForm
	if f == nil || f.Error() != "category already exists" || f.Pending() {
		t.Fatalf("expected the service message inline, got %#v", f)
	}
	if len(rec.all()) != 0 {
		t.Fatalf("expected no toast, got %#v", rec.all())
	}
}

func TestAddRecipeCreatesRecipeInChosenCategory(t *testing.T) {
	h, rec, srv := startDemo(t)
	h.Key("a")
	if h.Model().Mode() != ModeRecipeForm {
		t.Fatalf("expected recipe form, got %v", h.Model().Mode())
	}
	h.Type("Pho")
	h.Key("tab")
	h.Key("tab")
	h.Type("rice noodles")
	h.Key("tab")
	h.Key("right")
	h.Key("enter")

	if h.Model().Route() != route.List {
		t.Fatalf("expected list after save, got %s", h.Model().Route())
	}
	stored := srv.Recipes()
	last := stored[len(stored)-1]
	if last.Item != "Pho" || last.Ingredient != "rice noodles" || last.Category != "2" {
		t.Fatalf("unexpected stored recipe %#v", last)
	}
	if len(h.Model().Recipes()) != len(stored) {
		t.Fatalf("expected reloaded snapshot of %d, got %d", len(stored), len(h.Model().Recipes()))
	}
	toasts := rec.all()
	if len(toasts) != 1 || toasts[0].Message != `Recipe "Pho" added` {
		t.Fatalf("unexpected toasts %#v", toasts)
	}
}

func TestAddRecipeValidationBlocksSubmit(t *testing.T) {
	h, _, srv := startDemo(t)
	h.Key("a")
	h.Type("Pho")
	h.Key("enter")
	if h.Model().recipeForm == nil || h.Model().recipeForm.Error() != "Ingredients required" {
		t.Fatal("expected missing ingredients error")
	}
	if srv.Hits("/api/recipe/add-recipe") != 0 {
		t.Fatal("expected no request for an invalid recipe")
	}
}

func TestFormCancelResetsSearchAndCategory(t *testing.T) {
	h, _, _ := startDemo(t)
	h.Key("f")
	h.Key("down")
	h.Key("enter")
	h.Key("/")
	h.Type("soup")
	h.Key("esc")
	if h.Model().SelectedCategory().ID == "" || h.Model().SearchQuery() == "" {
		t.Fatal("expected selection and query before leaving")
	}

	h.Key("c")
	h.Key("esc")

	if h.Model().SelectedCategory().ID != "" {
		t.Fatalf("expected category reset, got %#v", h.Model().SelectedCategory())
	}
	if h.Model().SearchQuery() != "" {
		t.Fatalf("expected search reset, got %q", h.Model().SearchQuery())
	}
	if len(h.Model().Recipes()) != 5 {
		t.Fatalf("expected full list after returning, got %d", len(h.Model().Recipes()))
	}
}

func TestCtrlCQuitsFromForms(t *testing.T) {
	for _, key := range []string{"c", "a"} {
		h, _, _ := startDemo(t)
		h.Key(key)
		if h.Model().Mode() != ModeCategoryForm && h.Model().Mode() != ModeRecipeForm {
			t.Fatalf("expected a form after %q, got %v", key, h.Model().Mode())
		}
		h.Key("ctrl+c")
		if !h.Quit() {
			t.Fatalf("expected ctrl+c to quit the form opened by %q", key)
		}
	}
}

func TestLateCreateResultAfterCancelStaysOnList(t *testing.T) {
	h, rec, srv := startDemo(t)
	h.Key("c")
	h.Type("Salads")
	_, pending := h.Model().Update(keyMsg("enter"))
	if pending == nil || !h.Model().categoryForm.Pending() {
		t.Fatal("expected the form to wait for the service")
	}

	h.Key("esc")
	fetches := srv.Hits(pathAllCategories)
	h.processCmd(pending)

	if h.Model().Route() != route.List || h.Model().Mode() != ModeList {
		t.Fatalf("expected to stay on the list, got %s", h.Model().Route())
	}
	if got := srv.Hits(pathAllCategories); got != fetches {
		t.Fatalf("expected no second reload, got %d fetches after %d", got, fetches)
	}
	if len(srv.Categories()) != 4 {
		t.Fatalf("expected the category to be stored anyway, got %#v", srv.Categories())
	}
	if toasts := rec.all(); len(toasts) != 1 || toasts[0].Kind != ToastSuccess {
		t.Fatalf("expected one success toast, got %#v", toasts)
	}
}

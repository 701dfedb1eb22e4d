package form

import (
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/recipebox/internal/api"
)

func typeText(t *testing.T, update func(tea.Msg) (tea.Cmd, bool, bool), text string) {
	t.Helper()
	if _, submit, cancel := update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}); submit || cancel {
		t.Fatalf("typing %q should neither submit nor cancel", text)
	}
}

func press(update func(tea.Msg) (tea.Cmd, bool, bool), k tea.KeyType) (bool, bool) {
	_, submit, cancel := update(tea.KeyMsg{Type: k})
	return submit, cancel
}

func TestCategoryFormValidatesAndSubmits(t *testing.T) {
	f := NewCategoryForm([]api.Category{{ID: "1", Name: "Breakfast"}}, cursor.CursorStatic)

	if submit, _ := press(f.Update, tea.KeyEnter); submit {
		t.Fatal("expected empty name to be rejected")
	}
	if f.Error() != "Category name required" {
		t.Fatalf("unexpected error %q", f.Error())
	}

	typeText(t, f.Update, "breakfast")
	if submit, _ := press(f.Update, tea.KeyEnter); submit {
		t.Fatal("expected duplicate name to be rejected")
	}
	if f.Error() != "Category already exists" {
		t.Fatalf("unexpected error %q", f.Error())
	}

	press(f.Update, tea.KeyCtrlU)
	typeText(t, f.Update, "  Soups ")
	if submit, _ := press(f.Update, tea.KeyEnter); !submit {
		t.Fatalf("expected submit, error %q", f.Error())
	}
	if f.Value() != "Soups" || !f.Pending() {
		t.Fatalf("unexpected value %q pending %v", f.Value(), f.Pending())
	}

	typeText(t, f.Update, "ignored")
	if f.Value() != "Soups" {
		t.Fatalf("expected input frozen while pending, got %q", f.Value())
	}

	f.SetError("duplicate category")
	if f.Pending() || f.Error() != "duplicate category" {
		t.Fatalf("expected error shown and pending cleared")
	}
	if _, cancel := press(f.Update, tea.KeyEsc); !cancel {
		t.Fatal("expected esc to cancel")
	}
}

func TestRecipeFormCollectsFields(t *testing.T) {
	cats := []api.Category{{ID: "1", Name: "Breakfast"}, {ID: "2", Name: "Soups"}}
	f := NewRecipeForm(cats, cursor.CursorStatic)

	if submit, _ := press(f.Update, tea.KeyEnter); submit {
		t.Fatal("expected missing name to be rejected")
	}
	if f.Error() != "Recipe name required" {
		t.Fatalf("unexpected error %q", f.Error())
	}

	typeText(t, f.Update, "Pho")
	press(f.Update, tea.KeyTab)
	typeText(t, f.Update, "pho.jpg")
	press(f.Update, tea.KeyTab)
	typeText(t, f.Update, "noodles; broth")
	press(f.Update, tea.KeyTab)
	if f.Focus() != FieldCategory {
		t.Fatalf("expected category field focused, got %d", f.Focus())
	}
	press(f.Update, tea.KeyRight)
	if c, _ := f.Category(); c.ID != "2" {
		t.Fatalf("expected Soups chosen, got %#v", c)
	}
	press(f.Update, tea.KeyRight)
	if c, _ := f.Category(); c.ID != "1" {
		t.Fatalf("expected choice to wrap to Breakfast, got %#v", c)
	}
	press(f.Update, tea.KeyLeft)

	if submit, _ := press(f.Update, tea.KeyEnter); !submit {
		t.Fatalf("expected submit, error %q", f.Error())
	}
	want := api.NewRecipe{Item: "Pho", Image: "pho.jpg", Ingredient: "noodles; broth", Category: "2"}
	if got := f.Value(); got != want {
		t.Fatalf("unexpected payload %#v", got)
	}
	if f.InputView(FieldCategory) != "‹ Soups › (2/2)" {
		t.Fatalf("unexpected category view %q", f.InputView(FieldCategory))
	}
}

func TestRecipeFormRequiresCategory(t *testing.T) {
	f := NewRecipeForm(nil, cursor.CursorStatic)
	typeText(t, f.Update, "Toast")
	press(f.Update, tea.KeyTab)
	press(f.Update, tea.KeyTab)
	typeText(t, f.Update, "bread")
	if submit, _ := press(f.Update, tea.KeyEnter); submit {
		t.Fatal("expected submit without category to fail")
	}
	if f.Error() != "Category required" {
		t.Fatalf("unexpected error %q", f.Error())
	}

	f.SetCategories([]api.Category{{ID: "7", Name: "Bakery"}})
	if submit, _ := press(f.Update, tea.KeyEnter); !submit {
		t.Fatalf("expected submit once a category exists, error %q", f.Error())
	}
	press(f.Update, tea.KeyShiftTab)
	if f.Focus() != FieldIngredient {
		t.Fatalf("expected input frozen while pending, focus %d", f.Focus())
	}
}

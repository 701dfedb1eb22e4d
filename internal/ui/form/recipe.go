package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/recipebox/internal/api"
)

// Field indexes of the recipe form. The category field is a chooser rather
// than a text input.
const (
	FieldItem = iota
	FieldImage
	FieldIngredient
	FieldCategory
	fieldCount
)

// RecipeForm collects a new recipe.
type RecipeForm struct {
	inputs     [FieldCategory]textinput.Model
	categories []api.Category
	choice     int
	focus      int
	err        string
	pending    bool
}

// NewRecipeForm builds the form with the known categories to choose from.
// The first category is preselected.
func NewRecipeForm(categories []api.Category, mode cursor.Mode) *RecipeForm {
	f := &RecipeForm{}
	f.inputs[FieldItem] = newInput("Recipe name", 120, mode)
	f.inputs[FieldImage] = newInput("Image URL (optional)", 512, mode)
	f.inputs[FieldIngredient] = newInput("Ingredients, e.g. 2 eggs; 1 cup milk", 2048, mode)
	f.SetCategories(categories)
	f.setFocus(FieldItem)
	return f
}

func (f *RecipeForm) Title() string { return "Add Recipe" }
func (f *RecipeForm) Help() string {
	return "Tab/↑↓ to move. ←/→ to pick a category. Enter to save. Esc to cancel."
}
func (f *RecipeForm) Error() string { return f.err }
func (f *RecipeForm) Pending() bool { return f.pending }
func (f *RecipeForm) Focus() int    { return f.focus }

// SetError shows a failure reported by the service and re-enables input.
func (f *RecipeForm) SetError(msg string) {
	f.err = msg
	f.pending = false
}

// SetCategories replaces the category choices, keeping the current choice
// when it still exists.
func (f *RecipeForm) SetCategories(categories []api.Category) {
	prev := api.ID("")
	if c, ok := f.Category(); ok {
		prev = c.ID
	}
	f.categories = append([]api.Category(nil), categories...)
	f.choice = 0
	for i, c := range f.categories {
		if c.ID == prev {
			f.choice = i
			break
		}
	}
}

// Category returns the chosen category.
func (f *RecipeForm) Category() (api.Category, bool) {
	if f.choice < 0 || f.choice >= len(f.categories) {
		return api.Category{}, false
	}
	return f.categories[f.choice], true
}

// Value returns the payload for the add-recipe call.
func (f *RecipeForm) Value() api.NewRecipe {
	r := api.NewRecipe{
		Item:       strings.TrimSpace(f.inputs[FieldItem].Value()),
		Image:      strings.TrimSpace(f.inputs[FieldImage].Value()),
		Ingredient: strings.TrimSpace(f.inputs[FieldIngredient].Value()),
	}
	if c, ok := f.Category(); ok {
		r.Category = c.ID
	}
	return r
}

// InputView renders the field at idx.
func (f *RecipeForm) InputView(idx int) string {
	if idx == FieldCategory {
		c, ok := f.Category()
		if !ok {
			return "(no categories)"
		}
		return fmt.Sprintf("‹ %s › (%d/%d)", c.Name, f.choice+1, len(f.categories))
	}
	if idx < 0 || idx >= len(f.inputs) {
		return ""
	}
	return f.inputs[idx].View()
}

// Label names the field at idx.
func (f *RecipeForm) Label(idx int) string {
	switch idx {
	case FieldItem:
		return "Name"
	case FieldImage:
		return "Image"
	case FieldIngredient:
		return "Ingredients"
	case FieldCategory:
		return "Category"
	}
	return ""
}

// Fields returns the number of fields.
func (f *RecipeForm) Fields() int { return fieldCount }

// Update applies msg. submit reports a valid recipe ready to send; cancel
// reports the user backing out.
func (f *RecipeForm) Update(msg tea.Msg) (cmd tea.Cmd, submit bool, cancel bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateFocused(msg), false, false
	}
	if f.pending && key.Type != tea.KeyEsc {
		return nil, false, false
	}
	switch key.String() {
	case "esc":
		return nil, false, true
	case "enter":
		if err := f.validate(); err != "" {
			f.err = err
			return nil, false, false
		}
		f.err = ""
		f.pending = true
		return nil, true, false
	case "tab", "down":
		f.setFocus((f.focus + 1) % fieldCount)
		return nil, false, false
	case "shift+tab", "up":
		f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		return nil, false, false
	}
	if f.focus == FieldCategory {
		switch key.String() {
		case "left", "h":
			f.cycleCategory(-1)
		case "right", "l", " ":
			f.cycleCategory(1)
		}
		return nil, false, false
	}
	if key.String() == "ctrl+u" {
		f.inputs[f.focus].SetValue("")
		f.inputs[f.focus].CursorStart()
		return nil, false, false
	}
	cmd = f.updateFocused(msg)
	if f.err != "" {
		f.err = f.validate()
	}
	return cmd, false, false
}

func (f *RecipeForm) updateFocused(msg tea.Msg) tea.Cmd {
	if f.focus < 0 || f.focus >= len(f.inputs) {
		return nil
	}
	updated, cmd := f.inputs[f.focus].Update(msg)
	f.inputs[f.focus] = updated
	return cmd
}

func (f *RecipeForm) setFocus(idx int) {
	f.focus = idx
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *RecipeForm) cycleCategory(delta int) {
	n := len(f.categories)
	if n == 0 {
		return
	}
	f.choice = (f.choice + delta + n) % n
}

func (f *RecipeForm) validate() string {
	v := f.Value()
	if v.Item == "" {
		return "Recipe name required"
	}
	if v.Ingredient == "" {
		return "Ingredients required"
	}
	if v.Category == "" {
		return "Category required"
	}
	return ""
}

// Package form holds the input screens reached from the recipe list: adding
// a category and adding a recipe.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/recipebox/internal/api"
)

// CategoryForm collects the name of a new category.
type CategoryForm struct {
	input    textinput.Model
	existing map[string]struct{}
	err      string
	pending  bool
}

// NewCategoryForm builds the form. Names in existing are rejected
// case-insensitively.
func NewCategoryForm(existing []api.Category, mode cursor.Mode) *CategoryForm {
	ti := newInput("Category name", 64, mode)
	ti.Focus()
	f := &CategoryForm{input: ti}
	f.SetCategories(existing)
	return f
}

func (f *CategoryForm) Title() string     { return "Add Category" }
func (f *CategoryForm) Help() string      { return "Press Enter to save. Esc to cancel." }
func (f *CategoryForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *CategoryForm) InputView() string { return f.input.View() }
func (f *CategoryForm) Error() string     { return f.err }
func (f *CategoryForm) Pending() bool     { return f.pending }

// SetError shows a failure reported by the service and re-enables input.
func (f *CategoryForm) SetError(msg string) {
	f.err = msg
	f.pending = false
}

// SetCategories refreshes the list of names already taken.
func (f *CategoryForm) SetCategories(categories []api.Category) {
	f.existing = make(map[string]struct{}, len(categories))
	for _, c := range categories {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name != "" {
			f.existing[name] = struct{}{}
		}
	}
}

// Update applies msg. submit reports a valid name ready to send; cancel
// reports the user backing out.
func (f *CategoryForm) Update(msg tea.Msg) (cmd tea.Cmd, submit bool, cancel bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if f.pending && key.Type != tea.KeyEsc {
			return nil, false, false
		}
		switch key.String() {
		case "ctrl+u":
			f.input.SetValue("")
			f.input.CursorStart()
			f.err = ""
			return nil, false, false
		}
		switch key.Type {
		case tea.KeyEsc:
			return nil, false, true
		case tea.KeyEnter:
			if err := f.validate(f.Value()); err != "" {
				f.err = err
				return nil, false, false
			}
			f.err = ""
			f.pending = true
			return nil, true, false
		}
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	if _, ok := msg.(tea.KeyMsg); ok && f.err != "" {
		f.err = f.validate(f.Value())
	}
	return cmd, false, false
}

func (f *CategoryForm) validate(name string) string {
	if name == "" {
		return "Category name required"
	}
	if _, exists := f.existing[strings.ToLower(name)]; exists {
		return "Category already exists"
	}
	return ""
}

func newInput(placeholder string, limit int, mode cursor.Mode) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Cursor.SetMode(mode)
	return ti
}

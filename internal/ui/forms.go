package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/recipebox/internal/logging/events"
	"github.com/atomicstack/recipebox/internal/route"
	"github.com/atomicstack/recipebox/internal/ui/form"
)

func (m *Model) handleCategoryForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.categoryForm == nil {
		return false, nil
	}
	cmd, submit, cancel := m.categoryForm.Update(msg)
	if cancel {
		events.Route.Cancel(m.route.String())
		return true, m.navigate(route.List, "cancel")
	}
	if submit {
		name := m.categoryForm.Value()
		events.Route.Submit(m.route.String(), map[string]string{"category": name})
		return true, m.runRequest("category:add", name, m.fetcher.AddCategory(name))
	}
	return true, cmd
}

func (m *Model) handleRecipeForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.recipeForm == nil {
		return false, nil
	}
	cmd, submit, cancel := m.recipeForm.Update(msg)
	if cancel {
		events.Route.Cancel(m.route.String())
		return true, m.navigate(route.List, "cancel")
	}
	if submit {
		recipe := m.recipeForm.Value()
		events.Route.Submit(m.route.String(), map[string]string{
			"item":     recipe.Item,
			"image":    recipe.Image,
			"category": string(recipe.Category),
		})
		return true, m.runRequest("recipe:add", recipe.Item, m.fetcher.AddRecipe(recipe))
	}
	return true, cmd
}

func (m *Model) viewCategoryForm(header string) string {
	f := m.categoryForm
	lines := []string{}
	if header != "" {
		lines = append(lines, header, "")
	}
	lines = append(lines, styles.Title.Render(f.Title()), "", f.InputView())
	if err := f.Error(); err != "" {
		lines = append(lines, "", styles.Error.Render(err))
	}
	if f.Pending() {
		lines = append(lines, "", styles.Info.Render("Saving…"))
	}
	lines = append(lines, "", styles.Footer.Render(f.Help()))
	return strings.Join(lines, "\n")
}

func (m *Model) viewRecipeForm(header string) string {
	f := m.recipeForm
	lines := []string{}
	if header != "" {
		lines = append(lines, header, "")
	}
	lines = append(lines, styles.Title.Render(f.Title()), "")
	for i := 0; i < f.Fields(); i++ {
		labelStyle := styles.FormLabel
		if i == f.Focus() {
			labelStyle = styles.FormActiveLabel
		}
		lines = append(lines, labelStyle.Render(f.Label(i)), "  "+f.InputView(i))
	}
	if i := f.Focus(); i == form.FieldCategory && len(m.categories.Entries()) == 0 {
		lines = append(lines, "", styles.Info.Render("Add a category first (Esc, then c)."))
	}
	if err := f.Error(); err != "" {
		lines = append(lines, "", styles.Error.Render(err))
	}
	if f.Pending() {
		lines = append(lines, "", styles.Info.Render("Saving…"))
	}
	lines = append(lines, "", styles.Footer.Render(f.Help()))
	return strings.Join(lines, "\n")
}

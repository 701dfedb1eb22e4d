package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/recipebox/internal/api"
	"github.com/atomicstack/recipebox/internal/logging/events"
	"github.com/atomicstack/recipebox/internal/route"
	"github.com/atomicstack/recipebox/internal/ui/form"
	uistate "github.com/atomicstack/recipebox/internal/ui/state"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	switch m.mode {
	case ModeSearch:
		return m.handleSearchKey(keyMsg)
	case ModePicker:
		return m.handlePickerKey(keyMsg)
	}
	return m.handleListKey(keyMsg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc":
		return tea.Quit
	case "up", "k":
		m.moveCursorUp(m.cards)
	case "down", "j":
		m.moveCursorDown(m.cards)
	case "pgup":
		if m.cards.Page(-1, m.cardRows()) {
			m.noteCursor(m.cards)
		}
	case "pgdown":
		if m.cards.Page(1, m.cardRows()) {
			m.noteCursor(m.cards)
		}
	case "home", "g":
		if m.cards.First() {
			m.noteCursor(m.cards)
		}
	case "end", "G":
		if m.cards.Last() {
			m.noteCursor(m.cards)
		}
	case "/", "s":
		return m.focusSearch()
	case "f":
		m.openPicker()
	case "d", "delete":
		return m.deleteSelected()
	case "c":
		return m.navigate(route.AddCategory, "")
	case "a":
		target := route.AddRecipeTarget(m.categories.Len())
		reason := ""
		if target != route.AddRecipe {
			reason = "no categories"
		}
		return m.navigate(target, reason)
	case "x":
		return m.exportSnapshot()
	case "r":
		return m.navigate(route.List, "reload")
	}
	return nil
}

// navigate switches screens. Arriving at the list resets the search box and
// category choice and reloads both snapshots, the same as a first display.
func (m *Model) navigate(to route.Path, reason string) tea.Cmd {
	if _, ok := m.routes.Find(to); !ok {
		m.errMsg = fmt.Sprintf("unknown route %s", to)
		return nil
	}
	events.Route.Navigate(m.route.String(), to.String(), reason)
	m.route = to
	m.errMsg = ""
	m.categoryForm = nil
	m.recipeForm = nil
	m.picker = nil
	m.search.Blur()
	switch to {
	case route.AddCategory:
		m.categoryForm = form.NewCategoryForm(m.categories.Entries(), m.cursorMode)
		m.mode = ModeCategoryForm
		return nil
	case route.AddRecipe:
		m.recipeForm = form.NewRecipeForm(m.categories.Entries(), m.cursorMode)
		m.mode = ModeRecipeForm
		return nil
	}
	m.mode = ModeList
	m.search.SetValue("")
	m.selected = api.Category{}
	return m.loadPage()
}

func (m *Model) deleteSelected() tea.Cmd {
	current, ok := m.cards.Current()
	if !ok {
		return nil
	}
	return m.deleteRecipe(api.ID(current.ID))
}

func (m *Model) moveCursorUp(l *level) {
	if l.Step(-1) {
		m.noteCursor(l)
	}
}

func (m *Model) moveCursorDown(l *level) {
	if l.Step(1) {
		m.noteCursor(l)
	}
}

func (m *Model) noteCursor(l *level) {
	events.UI.Cursor(l.ID, l.Cursor)
	m.syncViewport(l)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	if l == m.picker {
		l.Reveal(m.pickerRows())
		return
	}
	l.Reveal(m.cardRows())
}

// syncCards rebuilds the card list from the recipe snapshot.
func (m *Model) syncCards() {
	recipes := m.recipes.Entries()
	items := make([]uistate.Item, 0, len(recipes))
	for _, r := range recipes {
		items = append(items, uistate.Item{ID: string(r.ID), Label: r.Item})
	}
	m.cards.UpdateItems(items)
	m.syncViewport(m.cards)
}

// syncCategories pushes the category snapshot into whatever shows it.
func (m *Model) syncCategories() {
	categories := m.categories.Entries()
	if m.picker != nil {
		m.picker.UpdateItems(pickerItems(categories))
		m.syncViewport(m.picker)
	}
	if m.categoryForm != nil {
		m.categoryForm.SetCategories(categories)
	}
	if m.recipeForm != nil {
		m.recipeForm.SetCategories(categories)
	}
	if m.selected.ID != "" {
		if name := m.categories.Name(m.selected.ID); name != "" {
			m.selected.Name = name
		}
	}
}

func pickerItems(categories []api.Category) []uistate.Item {
	items := make([]uistate.Item, 0, len(categories)+1)
	items = append(items, uistate.Item{ID: "", Label: noCategoryLabel})
	for _, c := range categories {
		items = append(items, uistate.Item{ID: string(c.ID), Label: c.Name})
	}
	return items
}

func (m *Model) openPicker() {
	m.picker = uistate.NewLevel(pickerLevelID, noCategoryLabel, pickerItems(m.categories.Entries()))
	if idx := m.picker.IndexOf(string(m.selected.ID)); idx >= 0 {
		m.picker.Cursor = idx
	}
	m.mode = ModePicker
	m.filterCursorDirty = true
	m.syncViewport(m.picker)
}

func (m *Model) closePicker() {
	m.picker = nil
	m.mode = ModeList
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	if m.picker == nil {
		m.mode = ModeList
		return nil
	}
	switch msg.String() {
	case "esc":
		m.closePicker()
		return nil
	case "enter":
		return m.selectCategory()
	case "up":
		m.moveCursorUp(m.picker)
		return nil
	case "down":
		m.moveCursorDown(m.picker)
		return nil
	case "pgup":
		if m.picker.Page(-1, m.pickerRows()) {
			m.noteCursor(m.picker)
		}
		return nil
	case "pgdown":
		if m.picker.Page(1, m.pickerRows()) {
			m.noteCursor(m.picker)
		}
		return nil
	case "home":
		if m.picker.First() {
			m.noteCursor(m.picker)
		}
		return nil
	case "end":
		if m.picker.Last() {
			m.noteCursor(m.picker)
		}
		return nil
	}
	m.handlePickerText(msg)
	return nil
}

// selectCategory applies the highlighted picker entry. The leading entry
// carries an empty id, which is sent to the filter endpoint as-is.
func (m *Model) selectCategory() tea.Cmd {
	item, ok := m.picker.Current()
	if !ok {
		m.closePicker()
		return nil
	}
	m.selected = api.Category{ID: api.ID(item.ID), Name: item.Label}
	if item.ID == "" {
		m.selected.Name = ""
	}
	events.Category.Select(item.ID, m.selected.Name)
	m.closePicker()
	return m.filterRecipes(m.selected.ID)
}

package ui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/recipebox/internal/logging/events"
)

const (
	searchPrompt      = "Search » "
	searchPlaceholder = "press / to search recipes"
)

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = searchPrompt
	ti.Placeholder = searchPlaceholder
	ti.CharLimit = 128
	if styles.FilterPrompt != nil {
		ti.PromptStyle = styles.FilterPrompt.Copy()
	}
	if styles.Filter != nil {
		ti.TextStyle = styles.Filter.Copy()
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = styles.FilterPlaceholder.Copy()
	}
	return ti
}

// searchWidth sizes the search box to the terminal. Before the size is
// known the box is wide enough for the placeholder.
func (m *Model) searchWidth() int {
	if m.width <= 0 {
		return lipgloss.Width(searchPlaceholder)
	}
	w := m.width - lipgloss.Width(searchPrompt) - 1
	if w < 1 {
		return 1
	}
	return w
}

func (m *Model) focusSearch() tea.Cmd {
	m.mode = ModeSearch
	m.search.CursorEnd()
	events.Search.Focus(m.search.Value())
	return m.search.Focus()
}

// handleSearchKey edits the search box. Only Enter sends the query; leaving
// with Esc keeps the text without searching.
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		query := m.search.Value()
		m.search.Blur()
		m.mode = ModeList
		events.Search.Submit(query)
		return m.searchRecipes(query)
	case tea.KeyEsc:
		m.search.Blur()
		m.mode = ModeList
		events.Search.Blur(m.search.Value())
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return cmd
}

// updateSearchInput feeds non-key messages, such as cursor blinks, to the
// search box. An unfocused input ignores them.
func (m *Model) updateSearchInput(msg tea.Msg) tea.Cmd {
	if _, isKey := msg.(tea.KeyMsg); isKey {
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return cmd
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l == nil {
		return
	}
	if before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// handlePickerText edits the fuzzy filter of the category picker.
func (m *Model) handlePickerText(msg tea.KeyMsg) bool {
	current := m.picker
	if current == nil {
		return false
	}
	before := current.FilterCursorPos()
	changed := false
	switch msg.String() {
	case "ctrl+u":
		changed = current.ClearFilter()
		if changed {
			events.Filter.Cleared(current.ID)
		}
	case "ctrl+w":
		changed = current.DeleteFilterWordBackward()
		if changed {
			events.Filter.Backspace(current.ID, current.Filter)
		}
	}
	if !changed {
		switch msg.Type {
		case tea.KeyBackspace, tea.KeyCtrlH:
			changed = current.DeleteFilterRuneBackward()
			if changed {
				events.Filter.Backspace(current.ID, current.Filter)
			}
		case tea.KeyLeft:
			changed = current.MoveFilterCursorRuneBackward()
		case tea.KeyRight:
			changed = current.MoveFilterCursorRuneForward()
		case tea.KeySpace:
			changed = current.InsertFilterText(" ")
		case tea.KeyRunes:
			if msg.Alt || len(msg.Runes) == 0 {
				return false
			}
			for _, r := range msg.Runes {
				if unicode.IsControl(r) {
					return false
				}
			}
			changed = current.InsertFilterText(string(msg.Runes))
			if changed {
				events.Filter.Append(current.ID, current.Filter)
			}
		}
	}
	if !changed {
		return false
	}
	m.noteFilterCursorChange(current, before)
	m.syncViewport(current)
	return true
}

func (m *Model) filterPrompt() string {
	current := m.picker
	if current == nil {
		return ""
	}
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := current.Filter
	if text == "" {
		runes := []rune("(type to filter categories)")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := current.FilterCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}

package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/recipebox/internal/export"
	"github.com/atomicstack/recipebox/internal/logging"
	"github.com/atomicstack/recipebox/internal/logging/events"
	"github.com/atomicstack/recipebox/internal/state"
	"github.com/atomicstack/recipebox/internal/ui/command"
)

type exportResultMsg struct {
	path string
	rows int
	err  error
}

// exportSnapshot writes the recipes on screen to the configured file. The
// snapshot is copied before the command runs off the display goroutine.
func (m *Model) exportSnapshot() tea.Cmd {
	path := strings.TrimSpace(m.exportPath)
	if path == "" {
		m.notify(ToastError, "No export path configured")
		return nil
	}
	recipes := m.recipes.Entries()
	names := state.NewCategoryStore()
	names.SetEntries(m.categories.Entries())
	return m.bus.Execute(command.Request{
		ID:    "recipes:export",
		Label: path,
		Run: func() tea.Msg {
			rows, err := export.Write(path, recipes, names)
			return exportResultMsg{path: path, rows: rows, err: err}
		},
	})
}

func (m *Model) handleExportResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(exportResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		logging.Error(result.err)
		events.Action.Error(result.err)
		m.notify(ToastError, "Export failed")
		return nil
	}
	events.Recipe.Export(result.path, result.rows)
	m.notify(ToastInfo, fmt.Sprintf("Exported %d recipes to %s", result.rows, result.path))
	return nil
}

package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/recipebox/internal/api"
	"github.com/atomicstack/recipebox/internal/backend"
	"github.com/atomicstack/recipebox/internal/logging"
	"github.com/atomicstack/recipebox/internal/logging/events"
	"github.com/atomicstack/recipebox/internal/route"
	"github.com/atomicstack/recipebox/internal/ui/command"
)

const (
	deleteSucceededText = "Recipe deleted successfully"
	deleteFailedText    = "Failed to delete"
)

type backendEventMsg struct {
	event backend.Event
}

// runRequest wraps a fetcher request into a command that reports its event.
func (m *Model) runRequest(id, label string, req backend.Request) tea.Cmd {
	return m.bus.Execute(command.Request{
		ID:    id,
		Label: label,
		Run: func() tea.Msg {
			return backendEventMsg{event: req()}
		},
	})
}

// loadPage issues the two reads made whenever the list is displayed.
func (m *Model) loadPage() tea.Cmd {
	return tea.Batch(m.fetchAllRecipes(), m.fetchAllCategories())
}

func (m *Model) fetchAllRecipes() tea.Cmd {
	req := m.fetcher.AllRecipes()
	events.Recipe.Request(string(backend.OpAll), m.fetcher.Latest(backend.KindRecipes), "")
	return m.runRequest("recipes:all", "all recipes", req)
}

func (m *Model) fetchAllCategories() tea.Cmd {
	req := m.fetcher.AllCategories()
	events.Category.Request(m.fetcher.Latest(backend.KindCategories))
	return m.runRequest("categories:all", "all categories", req)
}

func (m *Model) filterRecipes(categoryID api.ID) tea.Cmd {
	req := m.fetcher.FilterRecipes(categoryID)
	events.Recipe.Request(string(backend.OpFilter), m.fetcher.Latest(backend.KindRecipes), string(categoryID))
	return m.runRequest("recipes:filter", string(categoryID), req)
}

func (m *Model) searchRecipes(query string) tea.Cmd {
	req := m.fetcher.SearchRecipes(query)
	events.Recipe.Request(string(backend.OpSearch), m.fetcher.Latest(backend.KindRecipes), query)
	return m.runRequest("recipes:search", query, req)
}

func (m *Model) deleteRecipe(id api.ID) tea.Cmd {
	events.Recipe.Delete(string(id))
	return m.runRequest("recipe:delete", string(id), m.fetcher.DeleteRecipe(id))
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	return m.applyBackendEvent(eventMsg.event)
}

func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	switch evt.Kind {
	case backend.KindDelete:
		return m.applyDeleteResult(evt)
	case backend.KindCreate:
		return m.applyCreateResult(evt)
	}

	if evt.Err != nil {
		logging.Error(fmt.Errorf("%s %s: %w", evt.Kind, evt.Op, evt.Err))
		if evt.Kind == backend.KindCategories {
			events.Category.Failed(evt.Err)
		} else {
			events.Recipe.Failed(string(evt.Op), evt.Err)
		}
		return nil
	}

	res := m.dispatcher.Handle(evt)
	if res.Stale {
		events.Recipe.Stale(string(evt.Op), evt.Seq, m.fetcher.Latest(evt.Kind))
		return nil
	}
	if res.RecipesUpdated {
		events.Recipe.Applied(string(evt.Op), evt.Seq, m.recipes.Len())
		m.syncCards()
	}
	if res.CategoriesUpdated {
		events.Category.Applied(evt.Seq, m.categories.Len())
		m.syncCategories()
	}
	return nil
}

// applyDeleteResult reports the outcome of a delete. The snapshot is never
// edited locally; a successful delete is followed by one full reload.
func (m *Model) applyDeleteResult(evt backend.Event) tea.Cmd {
	id, _ := evt.Data.(api.ID)
	if evt.Err != nil {
		logging.Error(fmt.Errorf("delete recipe %s: %w", id, evt.Err))
		events.Action.Error(evt.Err)
		m.notify(ToastError, deleteFailedText)
		return nil
	}
	events.Recipe.Deleted(string(id))
	m.notify(ToastSuccess, deleteSucceededText)
	return m.fetchAllRecipes()
}

func (m *Model) applyCreateResult(evt backend.Event) tea.Cmd {
	name, _ := evt.Data.(string)
	if evt.Err != nil {
		logging.Error(fmt.Errorf("%s %q: %w", evt.Op, name, evt.Err))
		events.Action.Error(evt.Err)
		msg := failureText(evt.Err)
		switch {
		case evt.Op == backend.OpAddCategory && m.awaitingCreate(evt.Op):
			m.categoryForm.SetError(msg)
		case evt.Op == backend.OpAddRecipe && m.awaitingCreate(evt.Op):
			m.recipeForm.SetError(msg)
		default:
			m.notify(ToastError, msg)
		}
		return nil
	}
	var info string
	switch evt.Op {
	case backend.OpAddCategory:
		info = fmt.Sprintf("Category %q added", name)
	default:
		info = fmt.Sprintf("Recipe %q added", name)
	}
	events.Action.Success(info)
	m.notify(ToastSuccess, info)
	if !m.awaitingCreate(evt.Op) {
		return nil
	}
	return m.navigate(route.List, "created")
}

// awaitingCreate reports whether the form that sent op is still open and
// waiting for its answer.
func (m *Model) awaitingCreate(op backend.Op) bool {
	switch op {
	case backend.OpAddCategory:
		return m.categoryForm != nil && m.categoryForm.Pending()
	case backend.OpAddRecipe:
		return m.recipeForm != nil && m.recipeForm.Pending()
	}
	return false
}

// failureText prefers the message the service sent back.
func failureText(err error) string {
	var appErr *api.ApplicationError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return "Failed to save"
}

package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/recipebox/internal/api"
	"github.com/atomicstack/recipebox/internal/auth"
	"github.com/atomicstack/recipebox/internal/backend"
	"github.com/atomicstack/recipebox/internal/data/dispatcher"
	"github.com/atomicstack/recipebox/internal/route"
	"github.com/atomicstack/recipebox/internal/state"
	"github.com/atomicstack/recipebox/internal/theme"
	"github.com/atomicstack/recipebox/internal/ui/command"
	"github.com/atomicstack/recipebox/internal/ui/form"
	uistate "github.com/atomicstack/recipebox/internal/ui/state"
)

type level = uistate.Level

type Mode int

const (
	ModeList Mode = iota
	ModeSearch
	ModePicker
	ModeCategoryForm
	ModeRecipeForm
)

const (
	cardsLevelID  = "recipes"
	pickerLevelID = "categories"

	noCategoryLabel = "Select category"
	emptyListText   = "No Recipes found"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Source     backend.Source
	Context    context.Context
	Session    auth.Session
	Width      int
	Height     int
	ShowFooter bool
	ExportPath string
	Notifier   Notifier
}

// Model implements the Bubble Tea model for the recipe list page and the
// add screens reached from it.
type Model struct {
	route    route.Path
	routes   *route.Registry
	mode     Mode
	cards    *level
	picker   *level
	search   textinput.Model
	selected api.Category

	errMsg      string
	toast       Toast
	toastExpire time.Time
	notifier    Notifier

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	exportPath  string
	session     auth.Session

	filterCursor      cursor.Model
	filterCursorDirty bool
	cursorMode        cursor.Mode

	categoryForm *form.CategoryForm
	recipeForm   *form.RecipeForm

	handlers map[reflect.Type]msgHandler

	fetcher    *backend.Fetcher
	bus        *command.Bus
	recipes    state.RecipeStore
	categories state.CategoryStore
	dispatcher *dispatcher.Dispatcher
}

// NewModel initialises the UI on the list route. Nothing is fetched until
// Init runs.
func NewModel(opts Options) *Model {
	fetcher := backend.NewFetcher(opts.Context, opts.Source)
	recipes := state.NewRecipeStore()
	categories := state.NewCategoryStore()
	m := &Model{
		route:      route.List,
		routes:     route.BuildRegistry(),
		mode:       ModeList,
		cards:      newCardLevel(),
		showFooter: opts.ShowFooter,
		exportPath: opts.ExportPath,
		session:    opts.Session,
		notifier:   opts.Notifier,
		cursorMode: cursor.CursorBlink,
		fetcher:    fetcher,
		bus:        command.New(),
		recipes:    recipes,
		categories: categories,
		dispatcher: dispatcher.New(recipes, categories, fetcher),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.search = newSearchInput()
	m.search.Width = m.searchWidth()
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// SetCursorMode switches every text cursor, including those of forms opened
// later, to mode.
func (m *Model) SetCursorMode(mode cursor.Mode) {
	m.cursorMode = mode
	m.filterCursor.SetMode(mode)
	m.search.Cursor.SetMode(mode)
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.loadPage()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	handler := m.handlerFor(msg)
	if _, isKey := msg.(tea.KeyMsg); isKey || handler == nil {
		if handled, cmd := m.handleActiveForm(msg); handled {
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m, m.finishUpdate(cmds)
		}
	}
	if handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	if cmd := m.updateSearchInput(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModeCategoryForm:
		return m.handleCategoryForm(msg)
	case ModeRecipeForm:
		return m.handleRecipeForm(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(exportResultMsg{}):   m.handleExportResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Route returns the current screen.
func (m *Model) Route() route.Path { return m.route }

// Mode returns the current input mode.
func (m *Model) Mode() Mode { return m.mode }

// Recipes returns the recipe snapshot on screen.
func (m *Model) Recipes() []api.Recipe { return m.recipes.Entries() }

// Categories returns the category snapshot.
func (m *Model) Categories() []api.Category { return m.categories.Entries() }

// SearchQuery returns the text in the search box.
func (m *Model) SearchQuery() string { return m.search.Value() }

// SelectedCategory returns the category used for the last filter, if any.
func (m *Model) SelectedCategory() api.Category { return m.selected }

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport(m.cards)
	if m.picker != nil {
		m.syncViewport(m.picker)
	}
	m.search.Width = m.searchWidth()
	return nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/recipebox/internal/api"
	"github.com/atomicstack/recipebox/internal/auth"
	"github.com/atomicstack/recipebox/internal/devserver"
	"github.com/atomicstack/recipebox/internal/logging"
	"github.com/atomicstack/recipebox/internal/logging/events"
	"github.com/atomicstack/recipebox/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	BaseURL    string
	User       string
	Token      string
	Timeout    time.Duration
	ExportPath string
	Width      int
	Height     int
	ShowFooter bool
	Demo       bool
}

// Session returns the signed-in user context built from the configuration.
func (c Config) Session() auth.Session {
	return auth.Session{User: c.User, Token: c.Token}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	baseURL := cfg.BaseURL
	if cfg.Demo {
		url, shutdown, err := devserver.NewDemo().Listen("127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("start demo server: %w", err)
		}
		defer func() {
			shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
			defer done()
			if err := shutdown(shutdownCtx); err != nil {
				logging.Error(fmt.Errorf("stop demo server: %w", err))
			}
		}()
		events.App.Demo(url)
		baseURL = url
	}

	model, err := NewModel(ctx, cfg, baseURL)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	events.App.Exit(err)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// NewModel wires the REST client for baseURL into a UI model.
func NewModel(ctx context.Context, cfg Config, baseURL string) (*ui.Model, error) {
	client, err := api.NewClient(baseURL,
		api.WithSession(cfg.Session()),
		api.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}
	return ui.NewModel(ui.Options{
		Source:     client,
		Context:    ctx,
		Session:    client.Session(),
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		ExportPath: cfg.ExportPath,
	}), nil
}

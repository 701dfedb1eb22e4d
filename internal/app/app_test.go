package app

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/atomicstack/recipebox/internal/devserver"
	"github.com/atomicstack/recipebox/internal/route"
	"github.com/atomicstack/recipebox/internal/ui"
)

func TestNewModelRejectsBadBaseURL(t *testing.T) {
	if _, err := NewModel(context.Background(), Config{}, "not a url"); err == nil {
		t.Fatal("expected error for malformed base url")
	}
}

func TestNewModelLoadsFromService(t *testing.T) {
	srv := devserver.NewDemo()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	model, err := NewModel(context.Background(), Config{User: "ana", Token: "t"}, ts.URL)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	h := ui.NewHarness(model)
	h.Start()

	if got := len(h.Model().Recipes()); got != len(srv.Recipes()) {
		t.Fatalf("expected %d recipes, got %d", len(srv.Recipes()), got)
	}
	if got := len(h.Model().Categories()); got != len(srv.Categories()) {
		t.Fatalf("expected %d categories, got %d", len(srv.Categories()), got)
	}
	if h.Model().Route() != route.List {
		t.Fatalf("expected list route, got %s", h.Model().Route())
	}
}

func TestConfigSession(t *testing.T) {
	s := Config{User: " ana ", Token: "abc"}.Session()
	if s.DisplayName() != "ana" || s.Authorization() != "Bearer abc" {
		t.Fatalf("unexpected session %#v", s)
	}
}

package ui

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/recipebox/internal/auth"
	"github.com/atomicstack/recipebox/internal/devserver"
)

func TestViewShowsEmptyState(t *testing.T) {
	srv := devserver.New()
	h, _ := newTestHarness(t, srv.Handler(), Options{ShowFooter: true})
	h.Start()
	view := h.View()
	if !strings.Contains(view, "No Recipes found") {
		t.Fatalf("expected empty state, got:\n%s", view)
	}
	if !strings.Contains(view, "a add recipe (needs a category)") {
		t.Fatalf("expected gated add-recipe hint, got:\n%s", view)
	}
}

func TestViewRendersCards(t *testing.T) {
	srv := devserver.NewDemo()
	h, _ := newTestHarness(t, srv.Handler(), Options{
		ShowFooter: true,
		Session:    auth.Session{User: "ana"},
	})
	h.Start()
	view := h.View()
	for _, want := range []string{
		"Recipe List",
		"signed in as ana",
		"Category: all (f to choose)",
		"Shakshuka",
		"Breakfast",
		"#10",
		"4 eggs · 400g tomatoes",
		"image: shakshuka.jpg",
		"image: -",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.Contains(view, "needs a category") {
		t.Fatal("expected plain add-recipe hint when categories exist")
	}
}

func TestViewShowsSelectedCategoryAndToast(t *testing.T) {
	h, _, _ := startDemo(t)
	h.Key("f")
	h.Type("dessert")
	h.Key("enter")
	h.Key("d")
	view := h.View()
	if !strings.Contains(view, "Category: Dessert (f to change)") {
		t.Fatalf("expected selected category, got:\n%s", view)
	}
	if !strings.Contains(view, "Recipe deleted successfully") {
		t.Fatalf("expected toast, got:\n%s", view)
	}
}

func TestToastExpires(t *testing.T) {
	h, _, _ := startDemo(t)
	h.Key("d")
	m := h.Model()
	if _, ok := m.currentToast(); !ok {
		t.Fatal("expected an active toast")
	}
	m.toastExpire = time.Now().Add(-time.Second)
	if _, ok := m.currentToast(); ok {
		t.Fatal("expected toast to expire")
	}
	if strings.Contains(h.View(), "Recipe deleted successfully") {
		t.Fatal("expected expired toast to be hidden")
	}
}

func TestViewRendersPicker(t *testing.T) {
	h, _, _ := startDemo(t)
	h.Key("f")
	view := h.View()
	for _, want := range []string{"Select category", "Breakfast", "Soups", "Dessert"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in picker:\n%s", want, view)
		}
	}
}

func TestViewTruncatesToWidth(t *testing.T) {
	h, _, _ := startDemo(t)
	h.Send(tea.WindowSizeMsg{Width: 30, Height: 40})
	for _, line := range strings.Split(h.View(), "\n") {
		if w := lipgloss.Width(line); w > 30 {
			t.Fatalf("line wider than 30 (%d): %q", w, line)
		}
	}
}

func TestExportWritesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.csv")
	srv := devserver.NewDemo()
	h, rec := newTestHarness(t, srv.Handler(), Options{ExportPath: path})
	h.Start()
	h.Key("x")

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("expected header and 5 rows, got %d: %v", len(records), records)
	}
	toasts := rec.all()
	if len(toasts) != 1 || toasts[0].Kind != ToastInfo || toasts[0].Message != "Exported 5 recipes to "+path {
		t.Fatalf("unexpected toasts %#v", toasts)
	}
}

func TestExportWithoutPathReportsError(t *testing.T) {
	h, rec, _ := startDemo(t)
	h.Key("x")
	toasts := rec.all()
	if len(toasts) != 1 || toasts[0].Kind != ToastError {
		t.Fatalf("expected error toast, got %#v", toasts)
	}
}

func TestSearchPlaceholderShownBeforeResize(t *testing.T) {
	for _, width := range []int{0, 60} {
		srv := devserver.New()
		h, _ := newTestHarness(t, srv.Handler(), Options{Width: width})
		h.Start()
		if view := h.View(); !strings.Contains(view, searchPlaceholder) {
			t.Fatalf("width %d: expected full placeholder, got:\n%s", width, view)
		}
	}
}

func TestCardsPageByCardHeight(t *testing.T) {
	srv := devserver.NewDemo()
	h, _ := newTestHarness(t, srv.Handler(), Options{Height: 10})
	h.Start()

	h.Send(tea.KeyMsg{Type: tea.KeyPgDown})
	if got := h.Model().cards.Cursor; got != 2 {
		t.Fatalf("expected page down by two cards, got cursor %d", got)
	}
	view := h.View()
	if !strings.Contains(view, "Buttermilk pancakes") || !strings.Contains(view, "Miso soup") {
		t.Fatalf("expected the window to scroll to the cursor card, got:\n%s", view)
	}
	if strings.Contains(view, "Lentil soup") {
		t.Fatalf("expected only two cards on screen, got:\n%s", view)
	}
	if strings.Contains(view, "Shakshuka") {
		t.Fatalf("expected the first card scrolled away, got:\n%s", view)
	}

	h.Key("g")
	h.Key("up")
	if got := h.Model().cards.Cursor; got != 4 {
		t.Fatalf("expected up from the first card to wrap to the last, got %d", got)
	}
	if !strings.Contains(h.View(), "Panna cotta") {
		t.Fatal("expected the wrapped-to card on screen")
	}
}

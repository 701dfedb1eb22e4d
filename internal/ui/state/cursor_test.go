package state

import "testing"

func cardLevel(ids ...string) *Level {
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = Item{ID: id, Label: "recipe " + id}
	}
	l := NewLevel("recipes", "Recipes", items)
	l.EntryHeight = 3
	return l
}

func TestStepWrapsAround(t *testing.T) {
	l := cardLevel("10", "11", "12")
	if !l.Step(-1) || l.Cursor != 2 {
		t.Fatalf("expected up from the first card to wrap to 2, got %d", l.Cursor)
	}
	if !l.Step(1) || l.Cursor != 0 {
		t.Fatalf("expected down from the last card to wrap to 0, got %d", l.Cursor)
	}

	single := cardLevel("10")
	if single.Step(1) {
		t.Fatal("expected no movement with a single card")
	}
	empty := cardLevel()
	empty.Cursor = 4
	if empty.Step(1) || empty.Cursor != 0 {
		t.Fatalf("expected empty level to reset cursor, got %d", empty.Cursor)
	}
}

func TestFitCountsEntryHeight(t *testing.T) {
	cards := cardLevel("10", "11")
	if got := cards.Fit(10); got != 3 {
		t.Fatalf("expected 3 cards in 10 lines, got %d", got)
	}
	if got := cards.Fit(2); got != 1 {
		t.Fatalf("expected at least one card, got %d", got)
	}
	if got := cards.Fit(0); got != -1 {
		t.Fatalf("expected unbounded fit for unknown height, got %d", got)
	}
	picker := NewLevel("categories", "Select category", nil)
	if got := picker.Fit(10); got != 10 {
		t.Fatalf("expected one picker row per line, got %d", got)
	}
}

func TestPageMovesByWholeCards(t *testing.T) {
	l := cardLevel("10", "11", "12", "13", "14")
	if !l.Page(1, 6) || l.Cursor != 2 {
		t.Fatalf("expected page down of two cards, got %d", l.Cursor)
	}
	if !l.Page(1, 6) || l.Cursor != 4 {
		t.Fatalf("expected second page down to land on 4, got %d", l.Cursor)
	}
	if l.Page(1, 6) {
		t.Fatal("expected paging to stop at the last card")
	}
	if !l.Page(-1, 0) || l.Cursor != 0 {
		t.Fatalf("expected unbounded page up to reach the first card, got %d", l.Cursor)
	}
}

func TestFirstAndLast(t *testing.T) {
	l := cardLevel("10", "11", "12")
	if !l.Last() || l.Cursor != 2 {
		t.Fatalf("expected last card, got %d", l.Cursor)
	}
	if l.Last() {
		t.Fatal("expected no movement when already last")
	}
	if !l.First() || l.Cursor != 0 {
		t.Fatalf("expected first card, got %d", l.Cursor)
	}
	empty := cardLevel()
	if empty.First() || empty.Last() {
		t.Fatal("expected no movement on an empty level")
	}
}

func TestRevealKeepsCursorCardOnScreen(t *testing.T) {
	l := cardLevel("10", "11", "12", "13", "14")
	l.Cursor = 4
	start, end := l.Reveal(6)
	if start != 3 || end != 5 {
		t.Fatalf("expected cards [3,5), got [%d,%d)", start, end)
	}

	l.Cursor = 1
	start, end = l.Reveal(6)
	if start != 1 || end != 3 {
		t.Fatalf("expected window to follow cursor up to [1,3), got [%d,%d)", start, end)
	}

	start, end = l.Reveal(0)
	if start != 0 || end != 5 || l.ViewportOffset != 0 {
		t.Fatalf("expected everything visible with unknown height, got [%d,%d)", start, end)
	}

	l.ViewportOffset = 9
	l.Cursor = 4
	start, end = l.Reveal(9)
	if start != 2 || end != 5 {
		t.Fatalf("expected stale offset clamped to [2,5), got [%d,%d)", start, end)
	}

	empty := cardLevel()
	if start, end := empty.Reveal(6); start != 0 || end != 0 {
		t.Fatalf("expected empty range, got [%d,%d)", start, end)
	}
}

func TestUpdateItemsKeepsCursorOnSameID(t *testing.T) {
	l := cardLevel("10", "11", "12")
	l.Cursor = 2
	l.UpdateItems([]Item{{ID: "12", Label: "recipe 12"}, {ID: "13", Label: "recipe 13"}})
	if l.Cursor != 0 {
		t.Fatalf("expected cursor to follow id 12 to index 0, got %d", l.Cursor)
	}
	if current, ok := l.Current(); !ok || current.ID != "12" {
		t.Fatalf("expected current item 12, got %#v", current)
	}

	l.UpdateItems([]Item{{ID: "20", Label: "recipe 20"}})
	if l.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", l.Cursor)
	}

	l.UpdateItems(nil)
	if _, ok := l.Current(); ok {
		t.Fatal("expected no current item for empty level")
	}
}

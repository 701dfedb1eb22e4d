package state

import (
	"reflect"
	"testing"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	level := newTestLevel("one", "two", "three")
	level.Cursor = 2
	level.SetFilter("two", len("two"))

	if level.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", level.Filter)
	}
	if level.FilterCursor != len("two") {
		t.Fatalf("expected cursor at end, got %d", level.FilterCursor)
	}
	if level.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", level.Cursor)
	}
	if len(level.Items) != 1 || level.Items[0].ID != "two" {
		t.Fatalf("expected filtered items to contain only 'two', got %#v", level.Items)
	}

	level.SetFilter("", 0)
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
	if level.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", level.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	level := newTestLevel("alpha")

	if !level.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", level.Filter, level.FilterCursor)
	}

	level.FilterCursor = 1
	if !level.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if level.Filter != "azb" {
		t.Fatalf("expected insert into middle, got %q", level.Filter)
	}

	if !level.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", level.Filter, level.FilterCursor)
	}

	level.SetFilter("abc def", len("abc def"))
	if !level.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if level.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", level.Filter)
	}

	level.SetFilter("abc", 0)
	if level.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
	if level.MoveFilterCursorRuneBackward() {
		t.Fatal("expected no movement before start")
	}
	if !level.MoveFilterCursorRuneForward() || level.FilterCursor != 1 {
		t.Fatalf("expected cursor at 1, got %d", level.FilterCursor)
	}
	if !level.ClearFilter() || level.Filter != "" {
		t.Fatalf("expected filter cleared, got %q", level.Filter)
	}
	if level.ClearFilter() {
		t.Fatal("expected clearing an empty filter to report no change")
	}
}

func TestFilterItemsAndClone(t *testing.T) {
	items := []Item{{ID: "1", Label: "Breakfast"}, {ID: "2", Label: "Soups"}}
	filtered := FilterItems(items, "brk")
	if len(filtered) != 1 || filtered[0].Label != "Breakfast" {
		t.Fatalf("unexpected filtered results %#v", filtered)
	}
	filtered = FilterItems(items, "2")
	if len(filtered) != 1 || filtered[0].Label != "Soups" {
		t.Fatalf("expected id match for Soups, got %#v", filtered)
	}

	clone := CloneItems(items)
	if &clone[0] == &items[0] {
		t.Fatal("expected clone to allocate new backing array")
	}
	filtered[0].Label = "changed"
	if items[1].Label != "Soups" {
		t.Fatal("expected original slice to remain unchanged")
	}

	if len(FilterItems(items, "nomatch")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
	if CloneItems(nil) != nil {
		t.Fatal("expected nil clone for nil input")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []Item{
		{ID: "1", Label: "First"},
		{ID: "2", Label: "Second"},
		{ID: "3", Label: "Third"},
	}

	if idx := BestMatchIndex(items, "second"); idx != 1 {
		t.Fatalf("expected exact label match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "th"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func TestSetFilterSelectsFuzzyMatch(t *testing.T) {
	items := []Item{{ID: "", Label: "Select category"}, {ID: "1", Label: "Breakfast"}, {ID: "2", Label: "Soups"}}
	level := NewLevel("categories", "Category", items)
	level.SetFilter("sou", 3)
	if !reflect.DeepEqual(level.Items, []Item{{ID: "2", Label: "Soups"}}) {
		t.Fatalf("expected filtered items to contain Soups, got %#v", level.Items)
	}
	if current, ok := level.Current(); !ok || current.ID != "2" {
		t.Fatalf("expected Soups selected, got %#v", current)
	}
}

package state

// Item is one selectable row: a recipe card or a category choice.
type Item struct {
	ID    string
	Label string
}

// Level holds list state shared by the recipe cards and the category picker:
// items, an optional fuzzy filter, the cursor and the viewport offset.
// EntryHeight is the number of screen lines one item occupies.
type Level struct {
	ID             string
	Title          string
	Items          []Item
	Full           []Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
	EntryHeight    int
}

// NewLevel constructs a Level with the cursor on the first item.
func NewLevel(id, title string, items []Item) *Level {
	l := &Level{
		ID:          id,
		Title:       title,
		LastCursor:  -1,
		EntryHeight: 1,
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index for a given item identifier.
func (l *Level) IndexOf(id string) int {
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *Level) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the items. The cursor follows the previously selected
// id when it is still present and is clamped otherwise.
func (l *Level) UpdateItems(items []Item) {
	prevOffset := l.ViewportOffset
	prevID := ""
	if current, ok := l.Current(); ok {
		prevID = current.ID
	}
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if idx := l.IndexOf(prevID); prevID != "" && idx >= 0 {
		l.Cursor = idx
	}
	if prevOffset < 0 || prevOffset > len(l.Items)-1 {
		prevOffset = 0
	}
	l.ViewportOffset = prevOffset
}

// CloneItems returns a detached copy of items.
func CloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

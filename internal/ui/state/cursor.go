package state

// Fit returns how many entries of the level fit in rows screen lines. Zero or
// negative rows means the height is unknown and every entry fits (-1). When
// rows is known at least one entry is shown, even if it gets clipped.
func (l *Level) Fit(rows int) int {
	if rows <= 0 {
		return -1
	}
	n := rows / l.entryHeight()
	if n < 1 {
		return 1
	}
	return n
}

func (l *Level) entryHeight() int {
	if l.EntryHeight < 1 {
		return 1
	}
	return l.EntryHeight
}

// Step moves the cursor delta entries, wrapping past either end. It is the
// up/down movement for both the recipe cards and the category picker.
func (l *Level) Step(delta int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = ((clamp(l.Cursor, 0, n-1)+delta)%n + n) % n
	return l.Cursor != old
}

// Jump moves the cursor delta entries and stops at the first or last entry.
func (l *Level) Jump(delta int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(clamp(l.Cursor, 0, n-1)+delta, 0, n-1)
	return l.Cursor != old
}

// Page moves by one window of rows lines, backwards when dir is negative.
// A card three lines tall pages by a third as many entries as a picker row.
func (l *Level) Page(dir, rows int) bool {
	size := l.Fit(rows)
	if size < 0 {
		size = len(l.Items)
	}
	if dir < 0 {
		size = -size
	}
	return l.Jump(size)
}

// First moves the cursor to the first entry.
func (l *Level) First() bool { return l.Jump(-len(l.Items)) }

// Last moves the cursor to the last entry.
func (l *Level) Last() bool { return l.Jump(len(l.Items)) }

// Reveal scrolls the viewport so the cursor entry lies inside a window of
// rows lines and returns the visible entry range [start, end).
func (l *Level) Reveal(rows int) (int, int) {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return 0, 0
	}
	l.Cursor = clamp(l.Cursor, 0, n-1)
	size := l.Fit(rows)
	if size < 0 || size >= n {
		l.ViewportOffset = 0
		return 0, n
	}
	offset := clamp(l.ViewportOffset, 0, n-size)
	if l.Cursor < offset {
		offset = l.Cursor
	}
	if l.Cursor >= offset+size {
		offset = l.Cursor - size + 1
	}
	l.ViewportOffset = offset
	return offset, offset + size
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

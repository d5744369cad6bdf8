// Package selection holds the Normal/Visual cursor state of the list editor.
package selection

// Mode is the selection mode.
type Mode int

const (
	Normal Mode = iota
	Visual
)

func (m Mode) String() string {
	if m == Visual {
		return "VISUAL"
	}
	return "NORMAL"
}

// Selection is a cursor plus, in Visual mode, an anchor. Every range-based
// command goes through Range so the normalization lives in one place.
type Selection struct {
	Mode   Mode
	Cursor int
	Anchor int
}

// Range returns the inclusive active range: the cursor line in Normal mode,
// [min(cursor, anchor), max(cursor, anchor)] in Visual mode.
func (s Selection) Range() (start, end int) {
	if s.Mode != Visual {
		return s.Cursor, s.Cursor
	}
	if s.Anchor < s.Cursor {
		return s.Anchor, s.Cursor
	}
	return s.Cursor, s.Anchor
}

// Contains reports whether i is inside the active range.
func (s Selection) Contains(i int) bool {
	start, end := s.Range()
	return i >= start && i <= end
}

// Size is the number of lines in the active range.
func (s Selection) Size() int {
	start, end := s.Range()
	return end - start + 1
}

// ToggleVisual switches modes. Entering Visual drops the anchor on the
// cursor; leaving it keeps the cursor.
func (s *Selection) ToggleVisual() {
	if s.Mode == Visual {
		s.Mode = Normal
		s.Anchor = s.Cursor
		return
	}
	s.Mode = Visual
	s.Anchor = s.Cursor
}

// Normalize leaves Visual mode keeping the cursor.
func (s *Selection) Normalize() {
	s.Mode = Normal
	s.Anchor = s.Cursor
}

// MoveTo places the cursor at i clamped to [0, n-1]; the anchor stays put.
func (s *Selection) MoveTo(i, n int) {
	s.Cursor = clamp(i, n)
	if s.Mode == Normal {
		s.Anchor = s.Cursor
	}
}

// Shift moves cursor and anchor together by delta.
func (s *Selection) Shift(delta, n int) {
	s.Cursor = clamp(s.Cursor+delta, n)
	s.Anchor = clamp(s.Anchor+delta, n)
}

// Clamp keeps both indices inside a file of n lines.
func (s *Selection) Clamp(n int) {
	s.Cursor = clamp(s.Cursor, n)
	s.Anchor = clamp(s.Anchor, n)
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

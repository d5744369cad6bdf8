package todo

import "fmt"

// Reader is the read-only view of a locked file.
type Reader interface {
	Len() int
	Line(i int) (Line, bool)
	Lines() []Line
	Slice(start, end int) []Line
}

// Guard is the scoped handle to a locked File. It is only valid inside the
// Update or View callback that produced it; any use afterwards panics.
// Index arguments outside the file are programming errors and panic.
type Guard struct {
	file *File
}

func (g *Guard) lines() []Line {
	if g.file == nil {
		panic("todo: guard used after release")
	}
	return g.file.lines
}

func (g *Guard) setLines(lines []Line) {
	if g.file == nil {
		panic("todo: guard used after release")
	}
	g.file.lines = lines
}

func (g *Guard) checkRange(start, end int) {
	n := len(g.lines())
	if start < 0 || end < start || end >= n {
		panic(fmt.Sprintf("todo: range [%d, %d] out of bounds for %d lines", start, end, n))
	}
}

func (g *Guard) Len() int {
	return len(g.lines())
}

// Line returns the line at i; ok is false when i is out of range.
func (g *Guard) Line(i int) (Line, bool) {
	lines := g.lines()
	if i < 0 || i >= len(lines) {
		return Line{}, false
	}
	return lines[i], true
}

// Lines returns a copy of every line.
func (g *Guard) Lines() []Line {
	lines := g.lines()
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// Slice returns a copy of the inclusive range [start, end].
func (g *Guard) Slice(start, end int) []Line {
	g.checkRange(start, end)
	out := make([]Line, end-start+1)
	copy(out, g.lines()[start:end+1])
	return out
}

// AddLine inserts line at index i (0..Len), shifting later lines down.
func (g *Guard) AddLine(i int, line Line) {
	lines := g.lines()
	if i < 0 || i > len(lines) {
		panic(fmt.Sprintf("todo: insert index %d out of bounds for %d lines", i, len(lines)))
	}
	lines = append(lines, Line{})
	copy(lines[i+1:], lines[i:])
	lines[i] = line
	g.setLines(lines)
}

// InsertLines inserts a block at index i (0..Len).
func (g *Guard) InsertLines(i int, block []Line) {
	lines := g.lines()
	if i < 0 || i > len(lines) {
		panic(fmt.Sprintf("todo: insert index %d out of bounds for %d lines", i, len(lines)))
	}
	out := make([]Line, 0, len(lines)+len(block))
	out = append(out, lines[:i]...)
	out = append(out, block...)
	out = append(out, lines[i:]...)
	g.setLines(out)
}

// RemoveLines deletes the inclusive range [start, end] and returns the
// removed lines. When the file would become empty a noop line is inserted
// and placeholder is true.
func (g *Guard) RemoveLines(start, end int) (removed []Line, placeholder bool) {
	g.checkRange(start, end)
	removed = g.Slice(start, end)
	lines := g.lines()
	lines = append(lines[:start], lines[end+1:]...)
	if len(lines) == 0 {
		lines = append(lines, NewNoop())
		placeholder = true
	}
	g.setLines(lines)
	return removed, placeholder
}

// SwapRange moves the block [start, end] one slot up or down by exchanging
// it with its neighboring line. Order inside the block is preserved. The
// neighbor must exist.
func (g *Guard) SwapRange(start, end int, up bool) {
	g.checkRange(start, end)
	lines := g.lines()
	if up {
		g.checkRange(start-1, end)
		moved := lines[start-1]
		copy(lines[start-1:end], lines[start:end+1])
		lines[end] = moved
		return
	}
	g.checkRange(start, end+1)
	moved := lines[end+1]
	copy(lines[start+1:end+2], lines[start:end+1])
	lines[start] = moved
}

// SetRangeAction retargets every non-static line in [start, end]; static
// lines are skipped. It returns the range as it was before the change and
// whether any line changed.
func (g *Guard) SetRangeAction(start, end int, action Action) (before []Line, changed bool) {
	before = g.Slice(start, end)
	lines := g.lines()
	for i := start; i <= end; i++ {
		if lines[i].SetAction(action) {
			changed = true
		}
	}
	return before, changed
}

// ToggleRangeOption applies the fixup option toggle to every fixup line in
// [start, end]; other lines are skipped.
func (g *Guard) ToggleRangeOption(start, end int, option Option) (before []Line, changed bool) {
	before = g.Slice(start, end)
	lines := g.lines()
	for i := start; i <= end; i++ {
		if lines[i].ToggleOption(option) {
			changed = true
		}
	}
	return before, changed
}

// ReplaceLines overwrites lines starting at start with snapshot.
func (g *Guard) ReplaceLines(start int, snapshot []Line) {
	if len(snapshot) == 0 {
		return
	}
	g.checkRange(start, start+len(snapshot)-1)
	copy(g.lines()[start:], snapshot)
}

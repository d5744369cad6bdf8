// Package render projects a todo list, its selection and the viewport into
// styled rows.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/kobzarvs/qrebase/internal/selection"
	"github.com/kobzarvs/qrebase/internal/todo"
	"github.com/kobzarvs/qrebase/internal/treesitter"
	"github.com/kobzarvs/qrebase/internal/view"
)

const (
	Title          = "Git Interactive Rebase"
	HelpHint       = "Type ? for help"
	EmptyMessage   = "Rebase todo file is empty"
	TooSmallNotice = "Window too small"

	minLabelWidth     = 6
	fullHashWidth     = 8
	compactHashWidth  = 3
	fullMarker        = " > "
	fullMarkerBlank   = "   "
	compactMarker     = ">"
	compactMarkerNone = " "
	editorFlag        = "*"
)

// Highlighter splits a shell command into styled spans.
type Highlighter interface {
	Highlight(cmd string) []treesitter.HighlightSpan
}

// Renderer keeps the scroll position between frames.
type Renderer struct {
	scroll      int
	branch      string
	highlighter Highlighter
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBranch appends the branch being rebased to the title.
func WithBranch(branch string) Option {
	return func(r *Renderer) { r.branch = branch }
}

// WithHighlighter enables exec command highlighting.
func WithHighlighter(h Highlighter) Option {
	return func(r *Renderer) { r.highlighter = h }
}

func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Scroll is the index of the first visible line.
func (r *Renderer) Scroll() int {
	return r.scroll
}

func (r *Renderer) title() string {
	if r.branch == "" {
		return Title
	}
	return Title + " (" + r.branch + ")"
}

// Render builds one frame. The reader must belong to a live guard; nothing
// is retained after the call.
func (r *Renderer) Render(lines todo.Reader, sel selection.Selection, ctx view.Context) view.Data {
	data := view.Data{Title: r.title(), Help: HelpHint}
	if ctx.IsWindowTooSmall() {
		data.TooSmall = true
		data.Message = TooSmallNotice
		return data
	}
	n := lines.Len()
	// A File always holds at least a noop; other readers may not.
	if n == 0 {
		data.Message = EmptyMessage
		return data
	}

	height := ctx.ContentHeight()
	r.ensureCursorVisible(sel.Cursor, height, n)
	end := r.scroll + height
	if end > n {
		end = n
	}
	visible := lines.Slice(r.scroll, end-1)

	full := ctx.IsFullWidth()
	labelWidth := minLabelWidth
	if full {
		labelWidth = labelColumnWidth(visible)
	}
	data.Rows = make([]view.Row, 0, len(visible))
	for i, line := range visible {
		idx := r.scroll + i
		row := view.Row{
			Selected:  sel.Contains(idx),
			PinWeight: pinWeight(line.Action()),
		}
		cursor := idx == sel.Cursor
		if full {
			row.Segments = r.fullSegments(line, cursor, labelWidth)
		} else {
			row.Segments = r.compactSegments(line, cursor)
		}
		data.Rows = append(data.Rows, fit(row, ctx.Width))
	}
	return data
}

// ensureCursorVisible moves the window the minimum needed, or centers the
// cursor when it jumped far outside.
func (r *Renderer) ensureCursorVisible(cursor, viewHeight, n int) {
	if viewHeight <= 0 {
		r.scroll = 0
		return
	}
	if cursor < r.scroll-1 || cursor >= r.scroll+viewHeight+1 {
		r.scroll = cursor - viewHeight/2
	} else if cursor < r.scroll {
		r.scroll = cursor
	} else if cursor >= r.scroll+viewHeight {
		r.scroll = cursor - viewHeight + 1
	}
	if last := n - viewHeight; r.scroll > last {
		r.scroll = last
	}
	if r.scroll < 0 {
		r.scroll = 0
	}
}

// labelColumnWidth is the widest label among visible hash-bearing rows,
// never less than minLabelWidth.
func labelColumnWidth(lines []todo.Line) int {
	w := minLabelWidth
	for _, l := range lines {
		if !l.HasHash() {
			continue
		}
		if lw := runewidth.StringWidth(l.Label()); lw > w {
			w = lw
		}
	}
	return w
}

func pinWeight(a todo.Action) int {
	if a.IsStatic() {
		return view.PinWeightStatic
	}
	return view.PinWeightDynamic
}

func (r *Renderer) fullSegments(line todo.Line, cursor bool, labelWidth int) []view.Segment {
	marker := fullMarkerBlank
	if cursor {
		marker = fullMarker
	}
	label := runewidth.FillRight(line.Label(), labelWidth) + " "
	segs := []view.Segment{
		{Text: marker, Style: view.StyleNormal, Pinned: true},
		{Text: label, Style: view.ActionStyle(line.Action().String()), Pinned: true},
	}
	switch {
	case line.HasHash():
		text := runewidth.FillRight(line.Hash(), fullHashWidth)
		if line.Content() != "" {
			text += " " + line.Content()
		}
		segs = append(segs, view.Segment{Text: text, Style: view.StyleNormal})
	case line.HasReference():
		segs = append(segs, r.referenceSegments(line)...)
	}
	return segs
}

func (r *Renderer) compactSegments(line todo.Line, cursor bool) []view.Segment {
	marker := compactMarkerNone
	if cursor {
		marker = compactMarker
	}
	flag := " "
	if line.Option() == todo.OptionKeepMessageWithEditor {
		flag = editorFlag
	}
	label := line.Action().Abbreviation() + flag
	if line.Action() == todo.ActionNoop {
		label = line.Action().String() + " "
	}
	segs := []view.Segment{
		{Text: marker, Style: view.StyleNormal, Pinned: true},
		{Text: label, Style: view.ActionStyle(line.Action().String()), Pinned: true},
	}
	switch {
	case line.HasHash():
		text := runewidth.Truncate(line.Hash(), compactHashWidth, "")
		if line.Content() != "" {
			text += " " + line.Content()
		}
		segs = append(segs, view.Segment{Text: text, Style: view.StyleNormal})
	case line.HasReference():
		segs = append(segs, r.referenceSegments(line)...)
	}
	return segs
}

func (r *Renderer) referenceSegments(line todo.Line) []view.Segment {
	content := line.Content()
	if r.highlighter == nil || line.Action() != todo.ActionExec {
		return []view.Segment{{Text: content, Style: view.StyleNormal}}
	}
	spans := r.highlighter.Highlight(content)
	if len(spans) == 0 {
		return []view.Segment{{Text: content, Style: view.StyleNormal}}
	}
	segs := make([]view.Segment, 0, len(spans))
	for _, s := range spans {
		if s.Start < 0 || s.End > len(content) || s.Start >= s.End {
			continue
		}
		style := view.StyleNormal
		if s.Kind != "" {
			style = view.SyntaxStyle(s.Kind)
		}
		segs = append(segs, view.Segment{Text: content[s.Start:s.End], Style: style})
	}
	return segs
}

// fit truncates non-pinned segments from the end until the row fits width.
// Pinned segments are never cut.
func fit(row view.Row, width int) view.Row {
	over := row.Width() - width
	if over <= 0 {
		return row
	}
	for i := len(row.Segments) - 1; i >= 0 && over > 0; i-- {
		seg := &row.Segments[i]
		if seg.Pinned {
			continue
		}
		w := seg.Width()
		if w <= over {
			over -= w
			seg.Text = ""
			continue
		}
		seg.Text = runewidth.Truncate(seg.Text, w-over, "")
		over = 0
	}
	segs := row.Segments[:0]
	for _, s := range row.Segments {
		if s.Text != "" {
			segs = append(segs, s)
		}
	}
	row.Segments = segs
	return row
}

// HelpLines returns the help overlay text for the given bindings, one
// "key  description" entry per line.
func HelpLines(entries [][2]string) []string {
	keyWidth := 0
	for _, e := range entries {
		if w := runewidth.StringWidth(e[0]); w > keyWidth {
			keyWidth = w
		}
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimRight(runewidth.FillRight(e[0], keyWidth)+"  "+e[1], " "))
	}
	return out
}

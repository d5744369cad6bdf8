package view

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Style is a theme lookup key. The display resolves it against the theme;
// it has no other meaning.
type Style string

const (
	StyleNormal   Style = "normal"
	StyleTitle    Style = "title"
	StyleHelp     Style = "help"
	StyleMessage  Style = "message"
	StyleSelected Style = "selected"

	// StyleActionPrefix + keyword styles an action label, e.g. "action.pick".
	StyleActionPrefix = "action."
	// StyleSyntaxPrefix + capture name styles highlighted exec commands.
	StyleSyntaxPrefix = "syntax."
)

// ActionStyle returns the style key for an action keyword.
func ActionStyle(keyword string) Style {
	return Style(StyleActionPrefix + keyword)
}

// SyntaxStyle returns the style key for a highlight capture.
func SyntaxStyle(capture string) Style {
	return Style(StyleSyntaxPrefix + capture)
}

// Pin weights. Rows whose label set is fixed width weigh more than rows a
// user can retarget.
const (
	PinWeightDynamic = 2
	PinWeightStatic  = 3
)

// Segment is a run of text drawn with one style. Pinned segments must stay
// visible; the rest is truncated first when a row does not fit.
type Segment struct {
	Text   string
	Style  Style
	Pinned bool
}

// Width is the segment's width in cells.
func (s Segment) Width() int {
	return runewidth.StringWidth(s.Text)
}

// Row is one rendered list line.
type Row struct {
	Segments  []Segment
	Selected  bool
	PinWeight int
}

// Text joins the segment texts.
func (r Row) Text() string {
	var b strings.Builder
	for _, s := range r.Segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Width is the row's width in cells.
func (r Row) Width() int {
	w := 0
	for _, s := range r.Segments {
		w += s.Width()
	}
	return w
}

// PinnedWidth is the width of the pinned segments.
func (r Row) PinnedWidth() int {
	w := 0
	for _, s := range r.Segments {
		if s.Pinned {
			w += s.Width()
		}
	}
	return w
}

// Data is everything the display needs for one frame.
type Data struct {
	Title string
	Help  string
	Rows  []Row
	// TooSmall replaces the list with Message.
	TooSmall bool
	Message  string
	// Status is an optional transient line, e.g. a confirmation prompt.
	Status string
}

// Lines returns the row texts, mostly for tests and logging.
func (d Data) Lines() []string {
	out := make([]string, len(d.Rows))
	for i, r := range d.Rows {
		out[i] = r.Text()
	}
	return out
}

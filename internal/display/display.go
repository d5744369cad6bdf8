// Package display draws view frames onto a tcell screen.
package display

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kobzarvs/qrebase/internal/config"
	"github.com/kobzarvs/qrebase/internal/view"
)

// Theme resolves view style keys to terminal styles.
type Theme struct {
	base     tcell.Style
	selected tcell.Style
	styles   map[view.Style]tcell.Style
}

func NewTheme(t config.Theme) Theme {
	fg := parseColor(t.Foreground, tcell.ColorDefault)
	bg := parseColor(t.Background, tcell.ColorDefault)
	base := tcell.StyleDefault.Foreground(fg).Background(bg)

	th := Theme{
		base: base,
		selected: base.
			Foreground(parseColor(t.SelectedForeground, fg)).
			Background(parseColor(t.SelectedBackground, tcell.ColorGray)),
		styles: make(map[view.Style]tcell.Style),
	}
	th.styles[view.StyleNormal] = base
	th.styles[view.StyleTitle] = base.
		Foreground(parseColor(t.TitleForeground, fg)).
		Background(parseColor(t.TitleBackground, bg)).
		Bold(true)
	th.styles[view.StyleHelp] = base.Foreground(parseColor(t.HelpForeground, fg))
	th.styles[view.StyleMessage] = base.Foreground(parseColor(t.MessageForeground, fg))
	th.styles[view.StyleSelected] = th.selected
	for kw, color := range t.ActionColors() {
		th.styles[view.ActionStyle(kw)] = base.Foreground(parseColor(color, fg))
	}
	for capture, color := range t.SyntaxColors() {
		th.styles[view.SyntaxStyle(capture)] = base.Foreground(parseColor(color, fg))
	}
	return th
}

// Style returns the terminal style for key. Unknown keys fall back to the
// base style; selected rows swap in the selection background.
func (t Theme) Style(key view.Style, selected bool) tcell.Style {
	st, ok := t.styles[key]
	if !ok {
		st = t.base
	}
	if !selected {
		return st
	}
	_, bg, _ := t.selected.Decompose()
	if key == view.StyleNormal || !ok {
		return t.selected
	}
	return st.Background(bg)
}

// Draw paints one frame: title bar, padding, list rows, padding and the
// help line. Status, when set, takes the left side of the help line.
func Draw(s tcell.Screen, th Theme, data view.Data) {
	w, h := s.Size()
	base := th.Style(view.StyleNormal, false)
	s.Clear()
	for y := 0; y < h; y++ {
		clearLine(s, y, w, base)
	}
	if h == 0 || w == 0 {
		s.Show()
		return
	}
	if data.TooSmall {
		drawText(s, 0, 0, w, data.Message, th.Style(view.StyleMessage, false))
		s.Show()
		return
	}

	title := th.Style(view.StyleTitle, false)
	clearLine(s, 0, w, title)
	drawText(s, 0, 0, w, data.Title, title)

	top := 2
	if len(data.Rows) == 0 && data.Message != "" && top < h {
		drawText(s, 0, top, w, data.Message, th.Style(view.StyleMessage, false))
	}
	for i, row := range data.Rows {
		y := top + i
		if y >= h-2 {
			break
		}
		drawRow(s, th, y, w, row)
	}

	if h > 1 {
		left := data.Status
		style := th.Style(view.StyleHelp, false)
		if left != "" {
			style = th.Style(view.StyleMessage, false)
		}
		drawText(s, 0, h-1, w, composeStatusLine(left, data.Help, w), style)
	}
	s.Show()
}

func drawRow(s tcell.Screen, th Theme, y, w int, row view.Row) {
	if row.Selected {
		clearLine(s, y, w, th.Style(view.StyleNormal, true))
	}
	x := 0
	for _, seg := range row.Segments {
		x = drawText(s, x, y, w-x, seg.Text, th.Style(seg.Style, row.Selected))
		if x >= w {
			return
		}
	}
}

// DrawHelp paints a centered box listing lines over the current frame.
func DrawHelp(s tcell.Screen, th Theme, title string, lines []string) {
	w, h := s.Size()
	innerWidth := runewidth.StringWidth(title) + 2
	for _, l := range lines {
		if lw := runewidth.StringWidth(l); lw > innerWidth {
			innerWidth = lw
		}
	}
	innerWidth += 2
	boxWidth := innerWidth + 2
	if boxWidth > w {
		boxWidth = w
		innerWidth = boxWidth - 2
	}
	boxHeight := len(lines) + 2
	if boxHeight > h {
		boxHeight = h
	}
	if boxWidth < 3 || boxHeight < 2 {
		return
	}
	x0 := (w - boxWidth) / 2
	y0 := (h - boxHeight) / 2

	border := th.Style(view.StyleTitle, false)
	item := th.Style(view.StyleNormal, false)
	for x := 0; x < boxWidth; x++ {
		top, bottom := '─', '─'
		if x == 0 {
			top, bottom = '┌', '└'
		} else if x == boxWidth-1 {
			top, bottom = '┐', '┘'
		}
		s.SetContent(x0+x, y0, top, nil, border)
		s.SetContent(x0+x, y0+boxHeight-1, bottom, nil, border)
	}
	for y := 1; y < boxHeight-1; y++ {
		s.SetContent(x0, y0+y, '│', nil, border)
		s.SetContent(x0+boxWidth-1, y0+y, '│', nil, border)
		for x := 1; x < boxWidth-1; x++ {
			s.SetContent(x0+x, y0+y, ' ', nil, item)
		}
		if idx := y - 1; idx < len(lines) {
			drawText(s, x0+2, y0+y, innerWidth-2, lines[idx], item)
		}
	}
	if title != "" && innerWidth > 2 {
		drawText(s, x0+1, y0, innerWidth, " "+title+" ", border)
	}
	s.Show()
}

// drawText writes text from x, clipped to limit cells, and returns the next
// free column.
func drawText(s tcell.Screen, x, y, limit int, text string, style tcell.Style) int {
	end := x + limit
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > end {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += rw
	}
	return x
}

func clearLine(s tcell.Screen, y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

func composeStatusLine(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	lw := runewidth.StringWidth(left)
	rw := runewidth.StringWidth(right)
	if lw+rw > width {
		right, rw = "", 0
		if lw > width {
			left = runewidth.Truncate(left, width, "")
			lw = runewidth.StringWidth(left)
		}
	}
	return left + strings.Repeat(" ", width-lw-rw) + right
}

func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		v, err := strconv.ParseUint(name[1:], 16, 32)
		if err != nil {
			return fallback
		}
		return tcell.NewHexColor(int32(v))
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

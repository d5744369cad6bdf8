// Package editor is the list-editing state machine: it turns commands into
// guarded edits of a todo file and records them in the edit history.
package editor

import (
	"strings"

	"github.com/atotto/clipboard"

	"github.com/kobzarvs/qrebase/internal/history"
	"github.com/kobzarvs/qrebase/internal/logger"
	"github.com/kobzarvs/qrebase/internal/render"
	"github.com/kobzarvs/qrebase/internal/selection"
	"github.com/kobzarvs/qrebase/internal/todo"
	"github.com/kobzarvs/qrebase/internal/view"
)

// Options tunes a List.
type Options struct {
	// UndoLimit caps the history; 0 is unlimited.
	UndoLimit int
	// PageStep is the page motion size; 0 means half the visible rows.
	PageStep int
	// Clipboard receives yanked hashes. Defaults to the system clipboard.
	Clipboard func(text string) error
	Renderer  *render.Renderer
}

// List owns the selection and history for one todo file.
type List struct {
	file      *todo.File
	history   *history.History
	sel       selection.Selection
	ctx       view.Context
	renderer  *render.Renderer
	pageStep  int
	clipboard func(string) error
}

func New(file *todo.File, ctx view.Context, opts Options) *List {
	l := &List{
		file:      file,
		history:   history.New(opts.UndoLimit),
		ctx:       ctx,
		renderer:  opts.Renderer,
		pageStep:  opts.PageStep,
		clipboard: opts.Clipboard,
	}
	if l.renderer == nil {
		l.renderer = render.New()
	}
	if l.clipboard == nil {
		l.clipboard = clipboard.WriteAll
	}
	return l
}

func (l *List) File() *todo.File               { return l.file }
func (l *List) Selection() selection.Selection { return l.sel }
func (l *List) Context() view.Context          { return l.ctx }
func (l *List) CanUndo() bool                  { return l.history.CanUndo() }
func (l *List) CanRedo() bool                  { return l.history.CanRedo() }

// Resize records the new viewport. The model is untouched.
func (l *List) Resize(width, height int) {
	l.ctx.Update(width, height)
}

// View renders the current frame.
func (l *List) View() view.Data {
	var data view.Data
	l.file.View(func(r todo.Reader) {
		data = l.renderer.Render(r, l.sel, l.ctx)
	})
	return data
}

// Handle applies one list command. App-level commands are ignored. Only
// the clipboard can fail.
func (l *List) Handle(cmd Command) error {
	logger.Debug("list command", "cmd", cmd.String(), "mode", l.sel.Mode.String(), "cursor", l.sel.Cursor)
	switch cmd {
	case CmdToggleVisualMode:
		l.sel.ToggleVisual()
	case CmdMoveUp:
		l.move(-1)
	case CmdMoveDown:
		l.move(1)
	case CmdPageUp:
		l.move(-l.page())
	case CmdPageDown:
		l.move(l.page())
	case CmdHome:
		l.sel.MoveTo(0, l.file.Len())
	case CmdEnd:
		l.sel.MoveTo(l.file.Len()-1, l.file.Len())
	case CmdActionPick:
		l.setAction(todo.ActionPick)
	case CmdActionDrop:
		l.setAction(todo.ActionDrop)
	case CmdActionEdit:
		l.setAction(todo.ActionEdit)
	case CmdActionFixup:
		l.setAction(todo.ActionFixup)
	case CmdActionReword:
		l.setAction(todo.ActionReword)
	case CmdActionSquash:
		l.setAction(todo.ActionSquash)
	case CmdActionBreak:
		l.toggleBreak()
	case CmdSwapSelectedUp:
		l.swap(true)
	case CmdSwapSelectedDown:
		l.swap(false)
	case CmdFixupKeepMessage:
		l.toggleOption(todo.OptionKeepMessage)
	case CmdFixupKeepMessageWithEditor:
		l.toggleOption(todo.OptionKeepMessageWithEditor)
	case CmdUndo:
		l.undo()
	case CmdRedo:
		l.redo()
	case CmdDelete:
		l.deleteSelected()
	case CmdYankHash:
		return l.yankHashes()
	}
	return nil
}

func (l *List) update(fn func(g *todo.Guard)) {
	_ = l.file.Update(func(g *todo.Guard) error {
		fn(g)
		return nil
	})
}

func (l *List) page() int {
	if l.pageStep > 0 {
		return l.pageStep
	}
	step := l.ctx.ContentHeight() / 2
	if step < 1 {
		step = 1
	}
	return step
}

func (l *List) move(delta int) {
	l.sel.MoveTo(l.sel.Cursor+delta, l.file.Len())
}

func (l *List) apply(op history.Operation) bool {
	var ok bool
	l.update(func(g *todo.Guard) {
		ok = l.history.Apply(g, op)
	})
	return ok
}

func (l *List) setAction(action todo.Action) {
	start, end := l.sel.Range()
	l.apply(history.Operation{
		Kind:   history.KindSetActions,
		Start:  start,
		End:    end,
		Action: action,
		Before: l.sel,
		After:  l.sel,
	})
}

func (l *List) toggleOption(option todo.Option) {
	start, end := l.sel.Range()
	l.apply(history.Operation{
		Kind:   history.KindToggleOption,
		Start:  start,
		End:    end,
		Option: option,
		Before: l.sel,
		After:  l.sel,
	})
}

func (l *List) swap(up bool) {
	n := l.file.Len()
	start, end := l.sel.Range()
	delta := 1
	if up {
		if start == 0 {
			return
		}
		delta = -1
	} else if end >= n-1 {
		return
	}
	after := l.sel
	after.Shift(delta, n)
	if l.apply(history.Operation{
		Kind:   history.KindMoveRange,
		Start:  start,
		End:    end,
		Up:     up,
		Before: l.sel,
		After:  after,
	}) {
		l.sel = after
	}
}

func (l *List) deleteSelected() {
	n := l.file.Len()
	start, end := l.sel.Range()
	remaining := n - (end - start + 1)
	if remaining < 1 {
		remaining = 1
	}
	after := selection.Selection{Cursor: start, Anchor: start}
	after.Clamp(remaining)
	if l.apply(history.Operation{
		Kind:   history.KindRemoveLines,
		Start:  start,
		End:    end,
		Before: l.sel,
		After:  after,
	}) {
		l.sel = after
	}
}

// toggleBreak inserts a break after the cursor line, or removes it when the
// cursor is on a break or the next line already is one. Visual mode ignores it.
func (l *List) toggleBreak() {
	if l.sel.Mode == selection.Visual {
		return
	}
	cursor := l.sel.Cursor
	var cur, next todo.Line
	var hasNext bool
	l.file.View(func(r todo.Reader) {
		cur, _ = r.Line(cursor)
		next, hasNext = r.Line(cursor + 1)
	})

	switch {
	case cur.Action() == todo.ActionBreak:
		remaining := l.file.Len() - 1
		if remaining < 1 {
			remaining = 1
		}
		after := l.sel
		after.Clamp(remaining)
		if l.apply(history.Operation{Kind: history.KindRemoveLines, Start: cursor, End: cursor, Before: l.sel, After: after}) {
			l.sel = after
		}
	case hasNext && next.Action() == todo.ActionBreak:
		l.apply(history.Operation{Kind: history.KindRemoveLines, Start: cursor + 1, End: cursor + 1, Before: l.sel, After: l.sel})
	default:
		l.apply(history.Operation{
			Kind:   history.KindInsertLine,
			Start:  cursor + 1,
			Lines:  []todo.Line{todo.NewBreak()},
			Before: l.sel,
			After:  l.sel,
		})
	}
}

func (l *List) undo() {
	var sel selection.Selection
	var ok bool
	l.update(func(g *todo.Guard) {
		sel, ok = l.history.Undo(g)
	})
	if ok {
		l.restore(sel)
	}
}

func (l *List) redo() {
	var sel selection.Selection
	var ok bool
	l.update(func(g *todo.Guard) {
		sel, ok = l.history.Redo(g)
	})
	if ok {
		l.restore(sel)
	}
}

func (l *List) restore(sel selection.Selection) {
	sel.Clamp(l.file.Len())
	l.sel = sel
}

// yankHashes copies the hashes in the active range, one per line.
func (l *List) yankHashes() error {
	start, end := l.sel.Range()
	var hashes []string
	l.file.View(func(r todo.Reader) {
		for _, line := range r.Slice(start, end) {
			if line.HasHash() {
				hashes = append(hashes, line.Hash())
			}
		}
	})
	if len(hashes) == 0 {
		return nil
	}
	return l.clipboard(strings.Join(hashes, "\n"))
}

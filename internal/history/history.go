// Package history keeps the undo/redo stacks of the list editor.
package history

import (
	"github.com/kobzarvs/qrebase/internal/selection"
	"github.com/kobzarvs/qrebase/internal/todo"
)

// Kind is the closed set of reversible edits.
type Kind int

const (
	// KindMoveRange moves [Start, End] one slot up or down.
	KindMoveRange Kind = iota
	// KindSetActions retargets [Start, End] to Action, or restores Lines
	// over the range when a snapshot is present.
	KindSetActions
	// KindToggleOption toggles Option on fixup lines in [Start, End], or
	// restores Lines when a snapshot is present.
	KindToggleOption
	// KindInsertLine inserts Lines at Start. Placeholder removes the noop
	// that stood in for an emptied file.
	KindInsertLine
	// KindRemoveLines removes [Start, End].
	KindRemoveLines
)

func (k Kind) String() string {
	switch k {
	case KindMoveRange:
		return "move-range"
	case KindSetActions:
		return "set-actions"
	case KindToggleOption:
		return "toggle-option"
	case KindInsertLine:
		return "insert-line"
	case KindRemoveLines:
		return "remove-lines"
	}
	return "unknown"
}

// Operation is one reversible edit. Before and After are the selections
// around the original edit and travel unchanged through every inversion.
type Operation struct {
	Kind        Kind
	Start       int
	End         int
	Up          bool
	Action      todo.Action
	Option      todo.Option
	Lines       []todo.Line
	Placeholder bool

	Before selection.Selection
	After  selection.Selection
}

// apply performs op on the guard and returns the operation that reverts it.
// ok is false when op changed nothing.
func (op Operation) apply(g *todo.Guard) (Operation, bool) {
	inv := Operation{Before: op.Before, After: op.After}
	switch op.Kind {
	case KindMoveRange:
		g.SwapRange(op.Start, op.End, op.Up)
		delta := 1
		if op.Up {
			delta = -1
		}
		inv.Kind = KindMoveRange
		inv.Start, inv.End, inv.Up = op.Start+delta, op.End+delta, !op.Up
		return inv, true
	case KindSetActions, KindToggleOption:
		inv.Kind = op.Kind
		inv.Start, inv.End = op.Start, op.End
		if op.Lines != nil {
			inv.End = op.Start + len(op.Lines) - 1
			inv.Lines = g.Slice(op.Start, inv.End)
			g.ReplaceLines(op.Start, op.Lines)
			return inv, true
		}
		var changed bool
		if op.Kind == KindSetActions {
			inv.Lines, changed = g.SetRangeAction(op.Start, op.End, op.Action)
		} else {
			inv.Lines, changed = g.ToggleRangeOption(op.Start, op.End, op.Option)
		}
		return inv, changed
	case KindInsertLine:
		if len(op.Lines) == 0 {
			return Operation{}, false
		}
		g.InsertLines(op.Start, op.Lines)
		if op.Placeholder {
			g.RemoveLines(op.Start+len(op.Lines), op.Start+len(op.Lines))
		}
		inv.Kind = KindRemoveLines
		inv.Start, inv.End = op.Start, op.Start+len(op.Lines)-1
		return inv, true
	case KindRemoveLines:
		removed, placeholder := g.RemoveLines(op.Start, op.End)
		inv.Kind = KindInsertLine
		inv.Start, inv.End = op.Start, op.End
		inv.Lines = removed
		inv.Placeholder = placeholder
		return inv, true
	}
	return Operation{}, false
}

// History holds the applied and undone stacks. Both stacks store the
// operation that reverses the edit they stand for.
type History struct {
	applied []Operation
	undone  []Operation
	limit   int
}

// New creates a history keeping at most limit undo steps; 0 means unlimited.
func New(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Apply performs op and records its inverse. It reports false, recording
// nothing, when op changed nothing.
func (h *History) Apply(g *todo.Guard, op Operation) bool {
	inv, ok := op.apply(g)
	if !ok {
		return false
	}
	h.Record(inv)
	return true
}

// Record pushes an already-inverted operation and clears the redo chain.
func (h *History) Record(inv Operation) {
	h.applied = append(h.applied, inv)
	h.undone = h.undone[:0]
	if h.limit > 0 && len(h.applied) > h.limit {
		drop := len(h.applied) - h.limit
		h.applied = append(h.applied[:0], h.applied[drop:]...)
	}
}

// Undo reverts the latest edit and returns the selection from before it.
func (h *History) Undo(g *todo.Guard) (selection.Selection, bool) {
	if len(h.applied) == 0 {
		return selection.Selection{}, false
	}
	idx := len(h.applied) - 1
	op := h.applied[idx]
	h.applied = h.applied[:idx]
	inv, _ := op.apply(g)
	h.undone = append(h.undone, inv)
	return op.Before, true
}

// Redo reapplies the latest undone edit and returns the selection from
// after it.
func (h *History) Redo(g *todo.Guard) (selection.Selection, bool) {
	if len(h.undone) == 0 {
		return selection.Selection{}, false
	}
	idx := len(h.undone) - 1
	op := h.undone[idx]
	h.undone = h.undone[:idx]
	inv, _ := op.apply(g)
	h.applied = append(h.applied, inv)
	return op.After, true
}

func (h *History) CanUndo() bool { return len(h.applied) > 0 }
func (h *History) CanRedo() bool { return len(h.undone) > 0 }

// Len is the number of undoable edits.
func (h *History) Len() int { return len(h.applied) }

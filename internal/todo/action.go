package todo

// Action is a single rebase instruction kind.
type Action int

const (
	ActionBreak Action = iota
	ActionDrop
	ActionEdit
	ActionExec
	ActionFixup
	ActionNoop
	ActionPick
	ActionReword
	ActionSquash
	ActionLabel
	ActionReset
	ActionMerge
	ActionUpdateRef
)

type actionInfo struct {
	keyword      string
	abbreviation string
	static       bool
}

var actionTable = [...]actionInfo{
	ActionBreak:     {"break", "b", true},
	ActionDrop:      {"drop", "d", false},
	ActionEdit:      {"edit", "e", false},
	ActionExec:      {"exec", "x", true},
	ActionFixup:     {"fixup", "f", false},
	ActionNoop:      {"noop", "n", true},
	ActionPick:      {"pick", "p", false},
	ActionReword:    {"reword", "r", false},
	ActionSquash:    {"squash", "s", false},
	ActionLabel:     {"label", "l", true},
	ActionReset:     {"reset", "t", true},
	ActionMerge:     {"merge", "m", true},
	ActionUpdateRef: {"update-ref", "u", true},
}

// Actions lists every action in declaration order.
func Actions() []Action {
	out := make([]Action, len(actionTable))
	for i := range actionTable {
		out[i] = Action(i)
	}
	return out
}

// ParseAction accepts either the keyword or the one-letter abbreviation.
func ParseAction(s string) (Action, error) {
	for i, info := range actionTable {
		if s == info.keyword || s == info.abbreviation {
			return Action(i), nil
		}
	}
	return 0, &ParseError{Kind: ErrInvalidAction, Token: s}
}

func (a Action) valid() bool {
	return a >= 0 && int(a) < len(actionTable)
}

func (a Action) String() string {
	if !a.valid() {
		return "unknown"
	}
	return actionTable[a].keyword
}

// Abbreviation returns the one-letter form git also accepts.
func (a Action) Abbreviation() string {
	if !a.valid() {
		return "?"
	}
	return actionTable[a].abbreviation
}

// IsStatic reports whether the user may not retarget the action.
func (a Action) IsStatic() bool {
	if !a.valid() {
		return true
	}
	return actionTable[a].static
}

// hasHash reports whether the line shape is "<action> <hash> [comment]".
func (a Action) hasHash() bool {
	switch a {
	case ActionDrop, ActionEdit, ActionFixup, ActionPick, ActionReword, ActionSquash:
		return true
	}
	return false
}

// hasReference reports whether the line shape is "<action> <reference-or-command>".
func (a Action) hasReference() bool {
	switch a {
	case ActionExec, ActionLabel, ActionReset, ActionMerge, ActionUpdateRef:
		return true
	}
	return false
}

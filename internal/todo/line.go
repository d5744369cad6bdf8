package todo

import "strings"

// Option is the message flag a fixup line may carry.
type Option int

const (
	OptionNone Option = iota
	// OptionKeepMessage uses the fixup commit's message ("-C").
	OptionKeepMessage
	// OptionKeepMessageWithEditor does the same but opens the editor ("-c").
	OptionKeepMessageWithEditor
)

func (o Option) String() string {
	switch o {
	case OptionKeepMessage:
		return "-C"
	case OptionKeepMessageWithEditor:
		return "-c"
	}
	return ""
}

func parseOption(tok string) (Option, bool) {
	switch tok {
	case "-C":
		return OptionKeepMessage, true
	case "-c":
		return OptionKeepMessageWithEditor, true
	}
	return OptionNone, false
}

// Line is one entry of a todo script.
type Line struct {
	action  Action
	hash    string
	content string
	option  Option
}

// NewLine builds a commit line ("<action> <hash> <comment>"). For actions
// that take a single reference or command, hash is ignored and content is
// used as that field.
func NewLine(action Action, hash, content string) Line {
	switch {
	case action.hasHash():
		return Line{action: action, hash: hash, content: content}
	case action.hasReference():
		return Line{action: action, content: content}
	}
	return Line{action: action}
}

// NewNoop returns the placeholder line used to keep a file non-empty.
func NewNoop() Line {
	return Line{action: ActionNoop}
}

// NewBreak returns a bare break line.
func NewBreak() Line {
	return Line{action: ActionBreak}
}

// ParseLine parses a single non-comment script line.
func ParseLine(raw string) (Line, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Line{}, &ParseError{Kind: ErrInvalidLine, Token: raw}
	}
	tok, rest := cutToken(trimmed)
	action, err := ParseAction(tok)
	if err != nil {
		return Line{}, err
	}

	switch {
	case action == ActionBreak || action == ActionNoop:
		if rest != "" {
			return Line{}, &ParseError{Kind: ErrInvalidLine, Token: raw}
		}
		return Line{action: action}, nil
	case action.hasReference():
		if rest == "" {
			return Line{}, &ParseError{Kind: ErrInvalidLine, Token: raw}
		}
		return Line{action: action, content: rest}, nil
	}

	line := Line{action: action}
	if action == ActionFixup && strings.HasPrefix(rest, "-") {
		var flag string
		flag, rest = cutToken(rest)
		opt, ok := parseOption(flag)
		if !ok {
			return Line{}, &ParseError{Kind: ErrInvalidLine, Token: raw}
		}
		line.option = opt
	}
	line.hash, line.content = cutToken(rest)
	if line.hash == "" {
		return Line{}, &ParseError{Kind: ErrInvalidLine, Token: raw}
	}
	return line, nil
}

// cutToken splits off the first whitespace-delimited token; the remainder
// keeps its inner whitespace.
func cutToken(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func (l Line) Action() Action  { return l.action }
func (l Line) Hash() string    { return l.hash }
func (l Line) Content() string { return l.content }
func (l Line) Option() Option  { return l.option }

// HasHash reports whether the line carries a commit hash field.
func (l Line) HasHash() bool { return l.action.hasHash() }

// HasReference reports whether the line carries a single reference or command.
func (l Line) HasReference() bool { return l.action.hasReference() }

// Label is the action keyword including a fixup option, e.g. "fixup -c".
func (l Line) Label() string {
	if l.action == ActionFixup && l.option != OptionNone {
		return l.action.String() + " " + l.option.String()
	}
	return l.action.String()
}

// SetAction retargets a non-static line. Static lines and no-op changes
// report false. Leaving fixup drops the option.
func (l *Line) SetAction(action Action) bool {
	if l.action.IsStatic() || action.IsStatic() || l.action == action {
		return false
	}
	l.action = action
	if action != ActionFixup {
		l.option = OptionNone
	}
	return true
}

// ToggleOption sets option on a fixup line, or clears it when the line
// already carries the same option. Non-fixup lines report false.
func (l *Line) ToggleOption(option Option) bool {
	if l.action != ActionFixup || option == OptionNone {
		return false
	}
	if l.option == option {
		l.option = OptionNone
	} else {
		l.option = option
	}
	return true
}

// String formats the line in script form; it is the inverse of ParseLine
// modulo whitespace.
func (l Line) String() string {
	switch {
	case l.action.hasReference():
		return l.action.String() + " " + l.content
	case l.action.hasHash():
		var b strings.Builder
		b.WriteString(l.Label())
		b.WriteByte(' ')
		b.WriteString(l.hash)
		if l.content != "" {
			b.WriteByte(' ')
			b.WriteString(l.content)
		}
		return b.String()
	}
	return l.action.String()
}

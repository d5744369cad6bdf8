package todo

import "fmt"

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	ErrInvalidAction ErrorKind = iota
	ErrInvalidLine
)

// ParseError is returned when a todo script cannot be loaded. Token holds
// the offending action token or the raw line, Line the 1-based script line
// when known.
type ParseError struct {
	Kind  ErrorKind
	Token string
	Line  int
}

func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case ErrInvalidAction:
		msg = fmt.Sprintf("invalid action: %q", e.Token)
	default:
		msg = fmt.Sprintf("invalid line: %q", e.Token)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

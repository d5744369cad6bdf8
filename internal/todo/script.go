package todo

import (
	"errors"
	"strings"
)

// DefaultCommentChar is git's default core.commentChar.
const DefaultCommentChar = "#"

// ParseScript parses a whole todo script. Blank lines and lines starting
// with commentChar are skipped. The first malformed line aborts parsing.
func ParseScript(text, commentChar string) ([]Line, error) {
	if commentChar == "" {
		commentChar = DefaultCommentChar
	}
	rawLines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]Line, 0, len(rawLines))
	for i, raw := range rawLines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, commentChar) {
			continue
		}
		line, err := ParseLine(trimmed)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = i + 1
			}
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// FormatScript serializes lines one per row with a trailing newline.
func FormatScript(lines []Line) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line.String())
		b.WriteByte('\n')
	}
	return b.String()
}

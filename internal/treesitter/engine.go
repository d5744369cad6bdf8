// Package treesitter highlights the shell commands carried by exec lines.
package treesitter

import (
	"context"
	"fmt"
	"sort"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
)

// HighlightSpan covers the byte range [Start, End) of a command. Kind is
// empty for unhighlighted text.
type HighlightSpan struct {
	Start int
	End   int
	Kind  string
}

const maxCached = 256

// Engine parses exec commands with the bash grammar. It is safe for
// concurrent use; results are cached per command string.
type Engine struct {
	mu     sync.Mutex
	parser *sitter.Parser
	query  *sitter.Query
	cache  map[string][]HighlightSpan
}

func New() (*Engine, error) {
	lang := bash.GetLanguage()
	query, err := sitter.NewQuery([]byte(bashHighlightQuery), lang)
	if err != nil {
		return nil, fmt.Errorf("compile bash query: %w", err)
	}
	p := sitter.NewParser()
	p.SetLanguage(lang)
	return &Engine{
		parser: p,
		query:  query,
		cache:  make(map[string][]HighlightSpan),
	}, nil
}

// Close releases the parser and query.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.parser != nil {
		e.parser.Close()
		e.parser = nil
	}
	if e.query != nil {
		e.query.Close()
		e.query = nil
	}
}

// Highlight splits cmd into contiguous spans that together cover it.
// Later captures win where captures overlap.
func (e *Engine) Highlight(cmd string) []HighlightSpan {
	if cmd == "" {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if spans, ok := e.cache[cmd]; ok {
		return spans
	}
	if e.parser == nil {
		return []HighlightSpan{{Start: 0, End: len(cmd)}}
	}

	source := []byte(cmd)
	tree, err := e.parser.ParseCtx(context.Background(), nil, source)
	if err != nil || tree == nil {
		return []HighlightSpan{{Start: 0, End: len(cmd)}}
	}
	defer tree.Close()

	kinds := make([]string, len(source))
	for _, c := range queryCaptures(e.query, tree, source) {
		for i := c.Start; i < c.End && i < len(kinds); i++ {
			kinds[i] = c.Kind
		}
	}
	spans := collapse(kinds)

	if len(e.cache) >= maxCached {
		e.cache = make(map[string][]HighlightSpan)
	}
	e.cache[cmd] = spans
	return spans
}

func queryCaptures(query *sitter.Query, tree *sitter.Tree, source []byte) []HighlightSpan {
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(query, tree.RootNode())

	var out []HighlightSpan
	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}
		match = cursor.FilterPredicates(match, source)
		if match == nil {
			continue
		}
		for _, capture := range match.Captures {
			node := capture.Node
			out = append(out, HighlightSpan{
				Start: int(node.StartByte()),
				End:   int(node.EndByte()),
				Kind:  query.CaptureNameForId(capture.Index),
			})
		}
	}
	// outer nodes first so nested captures overwrite them
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End > out[j].End
	})
	return out
}

func collapse(kinds []string) []HighlightSpan {
	var out []HighlightSpan
	start := 0
	for i := 1; i <= len(kinds); i++ {
		if i < len(kinds) && kinds[i] == kinds[start] {
			continue
		}
		out = append(out, HighlightSpan{Start: start, End: i, Kind: kinds[start]})
		start = i
	}
	return out
}

const bashHighlightQuery = `
((comment) @comment)
((string) @string)
((raw_string) @string)
((variable_name) @variable)
((command_name) @function)
[
  "if" "then" "else" "elif" "fi" "case" "esac" "for" "while"
  "do" "done" "in" "function"
] @keyword
["&&" "||" "|" ";" "&" "<" ">" ">>"] @operator
`

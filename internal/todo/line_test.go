package todo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineShapes(t *testing.T) {
	cases := []struct {
		raw     string
		action  Action
		hash    string
		content string
		option  Option
		text    string
	}{
		{"pick aaa c1", ActionPick, "aaa", "c1", OptionNone, "pick aaa c1"},
		{"p aaa c1", ActionPick, "aaa", "c1", OptionNone, "pick aaa c1"},
		{"drop bbb", ActionDrop, "bbb", "", OptionNone, "drop bbb"},
		{"fixup -C ccc comment 3", ActionFixup, "ccc", "comment 3", OptionKeepMessage, "fixup -C ccc comment 3"},
		{"f -c ccc comment", ActionFixup, "ccc", "comment", OptionKeepMessageWithEditor, "fixup -c ccc comment"},
		{"squash  ddd   spaced   comment", ActionSquash, "ddd", "spaced   comment", OptionNone, "squash ddd spaced   comment"},
		{"exec echo 'foo'", ActionExec, "", "echo 'foo'", OptionNone, "exec echo 'foo'"},
		{"x make test", ActionExec, "", "make test", OptionNone, "exec make test"},
		{"label onto", ActionLabel, "", "onto", OptionNone, "label onto"},
		{"reset onto", ActionReset, "", "onto", OptionNone, "reset onto"},
		{"merge -C abc topic # Merge branch", ActionMerge, "", "-C abc topic # Merge branch", OptionNone, "merge -C abc topic # Merge branch"},
		{"update-ref refs/heads/feature", ActionUpdateRef, "", "refs/heads/feature", OptionNone, "update-ref refs/heads/feature"},
		{"break", ActionBreak, "", "", OptionNone, "break"},
		{"  noop  ", ActionNoop, "", "", OptionNone, "noop"},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			line, err := ParseLine(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.action, line.Action())
			assert.Equal(t, tc.hash, line.Hash())
			assert.Equal(t, tc.content, line.Content())
			assert.Equal(t, tc.option, line.Option())
			assert.Equal(t, tc.text, line.String())

			again, err := ParseLine(line.String())
			require.NoError(t, err)
			assert.Equal(t, line, again)
		})
	}
}

func TestParseLineErrors(t *testing.T) {
	cases := []struct {
		raw   string
		kind  ErrorKind
		token string
	}{
		{"bogus aaa c1", ErrInvalidAction, "bogus"},
		{"pick", ErrInvalidLine, "pick"},
		{"fixup -x aaa", ErrInvalidLine, "fixup -x aaa"},
		{"exec", ErrInvalidLine, "exec"},
		{"break now", ErrInvalidLine, "break now"},
		{"   ", ErrInvalidLine, "   "},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			_, err := ParseLine(tc.raw)
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "err = %v", err)
			assert.Equal(t, tc.kind, pe.Kind)
			assert.Equal(t, tc.token, pe.Token)
		})
	}
}

func TestLineToggleOptionCycle(t *testing.T) {
	line := NewLine(ActionFixup, "aaa", "c1")
	require.True(t, line.ToggleOption(OptionKeepMessage))
	assert.Equal(t, OptionKeepMessage, line.Option())
	require.True(t, line.ToggleOption(OptionKeepMessage))
	assert.Equal(t, OptionNone, line.Option())
	require.True(t, line.ToggleOption(OptionKeepMessageWithEditor))
	assert.Equal(t, OptionKeepMessageWithEditor, line.Option())
	require.True(t, line.ToggleOption(OptionKeepMessageWithEditor))
	assert.Equal(t, OptionNone, line.Option())

	line.ToggleOption(OptionKeepMessage)
	line.ToggleOption(OptionKeepMessageWithEditor)
	assert.Equal(t, OptionKeepMessageWithEditor, line.Option())
}

func TestLineToggleOptionNonFixup(t *testing.T) {
	line := NewLine(ActionPick, "aaa", "c1")
	assert.False(t, line.ToggleOption(OptionKeepMessage))
	assert.Equal(t, OptionNone, line.Option())
}

func TestLineSetAction(t *testing.T) {
	line, err := ParseLine("fixup -c aaa c1")
	require.NoError(t, err)
	require.True(t, line.SetAction(ActionPick))
	assert.Equal(t, ActionPick, line.Action())
	assert.Equal(t, OptionNone, line.Option())
	assert.False(t, line.SetAction(ActionPick))

	brk := NewBreak()
	assert.False(t, brk.SetAction(ActionDrop))
	assert.Equal(t, ActionBreak, brk.Action())
}

func TestLineLabel(t *testing.T) {
	line, err := ParseLine("fixup -c aaa c1")
	require.NoError(t, err)
	assert.Equal(t, "fixup -c", line.Label())
	assert.Equal(t, "update-ref", NewLine(ActionUpdateRef, "", "ref").Label())
}

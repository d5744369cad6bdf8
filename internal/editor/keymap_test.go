package editor

import (
	"sort"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qrebase/internal/config"
)

func TestDefaultListKeysResolve(t *testing.T) {
	cfg := config.Default()
	km, err := NewKeyMap(cfg.Keymap.List)
	if err != nil {
		t.Fatalf("NewKeyMap: %v", err)
	}
	for _, key := range sortedKeys(cfg.Keymap.List) {
		t.Run(key, func(t *testing.T) {
			got := km.Lookup(eventForKeyString(t, key))
			want, _ := ParseCommand(cfg.Keymap.List[key])
			if got != want {
				t.Fatalf("Lookup(%q) = %s, want %s", key, got, want)
			}
		})
	}
}

func TestDefaultConfirmKeysResolve(t *testing.T) {
	km, err := NewKeyMap(config.Default().Keymap.Confirm)
	if err != nil {
		t.Fatalf("NewKeyMap: %v", err)
	}
	for key, want := range map[string]Command{"y": CmdYes, "Y": CmdYes, "n": CmdNo, "esc": CmdNo, "x": CmdNone} {
		if got := km.Lookup(eventForKeyString(t, key)); got != want {
			t.Fatalf("Lookup(%q) = %s, want %s", key, got, want)
		}
	}
}

func TestNewKeyMapUnknownCommand(t *testing.T) {
	km, err := NewKeyMap(map[string]string{"x": "explode", "p": "pick", "z": "none"})
	if err == nil || !strings.Contains(err.Error(), "x=explode") {
		t.Fatalf("err = %v, want unknown command x=explode", err)
	}
	if got := km.Lookup(eventForKeyString(t, "p")); got != CmdActionPick {
		t.Fatalf("valid bindings should survive, got %s", got)
	}
	if got := km.Lookup(eventForKeyString(t, "z")); got != CmdNone {
		t.Fatalf("none binding = %s", got)
	}
}

func TestKeyStringNames(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'j', 0), "j"},
		{tcell.NewEventKey(tcell.KeyRune, ' ', 0), "space"},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "alt+x"},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModAlt), "alt+up"},
		{tcell.NewEventKey(tcell.KeyBacktab, 0, 0), "shift+tab"},
		{tcell.NewEventKey(tcell.KeyPgDn, 0, 0), "pgdn"},
		{tcell.NewEventKey(tcell.KeyDelete, 0, 0), "del"},
		{tcell.NewEventKey(tcell.KeyEscape, 0, 0), "esc"},
		{tcell.NewEventKey(tcell.KeyCtrlZ, 0, 0), "ctrl+z"},
	}
	for _, tc := range cases {
		if got := KeyString(tc.ev); got != tc.want {
			t.Fatalf("KeyString = %q, want %q", got, tc.want)
		}
	}
}

func TestEntriesOrderedByCommand(t *testing.T) {
	km, err := NewKeyMap(map[string]string{"d": "drop", "p": "pick", "up": "move_up", "k": "move_up"})
	if err != nil {
		t.Fatalf("NewKeyMap: %v", err)
	}
	got := km.Entries()
	want := [][2]string{
		{"k", CmdMoveUp.Description()},
		{"up", CmdMoveUp.Description()},
		{"p", CmdActionPick.Description()},
		{"d", CmdActionDrop.Description()},
	}
	if len(got) != len(want) {
		t.Fatalf("entries = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCommandNamesRoundTrip(t *testing.T) {
	for c := CmdToggleVisualMode; c <= CmdNo; c++ {
		got, ok := ParseCommand(c.String())
		if !ok || got != c {
			t.Fatalf("ParseCommand(%q) = %v, %v", c.String(), got, ok)
		}
		if c.Description() == "" {
			t.Fatalf("%s has no description", c)
		}
	}
	if _, ok := ParseCommand("none"); ok {
		t.Fatalf("none must not parse")
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func eventForKeyString(t *testing.T, key string) *tcell.EventKey {
	t.Helper()
	parts := strings.Split(key, "+")
	base := parts[len(parts)-1]
	var mod tcell.ModMask
	for _, part := range parts[:len(parts)-1] {
		switch part {
		case "ctrl":
			mod |= tcell.ModCtrl
		case "alt":
			mod |= tcell.ModAlt
		case "shift":
			mod |= tcell.ModShift
		default:
			t.Fatalf("unknown modifier %q in %q", part, key)
		}
	}

	if mod&tcell.ModCtrl != 0 {
		if r := []rune(base); len(r) == 1 && r[0] >= 'a' && r[0] <= 'z' {
			return tcell.NewEventKey(tcell.KeyCtrlA+tcell.Key(r[0]-'a'), 0, 0)
		}
	}

	switch base {
	case "up":
		return tcell.NewEventKey(tcell.KeyUp, 0, mod)
	case "down":
		return tcell.NewEventKey(tcell.KeyDown, 0, mod)
	case "home":
		return tcell.NewEventKey(tcell.KeyHome, 0, mod)
	case "end":
		return tcell.NewEventKey(tcell.KeyEnd, 0, mod)
	case "pgup":
		return tcell.NewEventKey(tcell.KeyPgUp, 0, mod)
	case "pgdn":
		return tcell.NewEventKey(tcell.KeyPgDn, 0, mod)
	case "enter":
		return tcell.NewEventKey(tcell.KeyEnter, 0, mod)
	case "del":
		return tcell.NewEventKey(tcell.KeyDelete, 0, mod)
	case "esc":
		return tcell.NewEventKey(tcell.KeyEscape, 0, mod)
	case "space":
		return tcell.NewEventKey(tcell.KeyRune, ' ', mod)
	}

	if r := []rune(base); len(r) == 1 {
		return tcell.NewEventKey(tcell.KeyRune, r[0], mod)
	}

	t.Fatalf("unsupported key %q", key)
	return nil
}

package editor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// KeyMap resolves key events to commands.
type KeyMap struct {
	bindings map[string]Command
}

// NewKeyMap builds a keymap from key string -> command name pairs. Unknown
// command names are reported so a typo in the config is not silently lost.
func NewKeyMap(bindings map[string]string) (KeyMap, error) {
	km := KeyMap{bindings: make(map[string]Command, len(bindings))}
	var unknown []string
	for key, name := range bindings {
		if name == "" || name == "none" {
			continue
		}
		cmd, ok := ParseCommand(name)
		if !ok {
			unknown = append(unknown, fmt.Sprintf("%s=%s", key, name))
			continue
		}
		km.bindings[key] = cmd
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return km, fmt.Errorf("unknown commands in keymap: %s", strings.Join(unknown, ", "))
	}
	return km, nil
}

// Lookup returns the bound command, or CmdNone.
func (k KeyMap) Lookup(ev *tcell.EventKey) Command {
	key := KeyString(ev)
	if key == "" {
		return CmdNone
	}
	return k.bindings[key]
}

// Entries lists key/description pairs in command order, keys sorted
// within a command.
func (k KeyMap) Entries() [][2]string {
	keys := make([]string, 0, len(k.bindings))
	for key := range k.bindings {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := k.bindings[keys[i]], k.bindings[keys[j]]
		if ci != cj {
			return ci < cj
		}
		return keys[i] < keys[j]
	})
	out := make([][2]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, [2]string{key, k.bindings[key].Description()})
	}
	return out
}

// KeyString names a key event the way keymaps spell it: a bare rune,
// "space", "up", "pgdn", "ctrl+z", "alt+up".
func KeyString(ev *tcell.EventKey) string {
	mods := ev.Modifiers()
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		name := string(r)
		if r == ' ' {
			name = "space"
		}
		switch {
		case mods&tcell.ModCtrl != 0:
			return "ctrl+" + strings.ToLower(name)
		case mods&tcell.ModAlt != 0:
			return "alt+" + name
		}
		return name
	}
	if mods&tcell.ModAlt != 0 {
		switch ev.Key() {
		case tcell.KeyUp:
			return "alt+up"
		case tcell.KeyDown:
			return "alt+down"
		}
	}
	// Tab before ctrlKeyName since KeyTab == KeyCtrlI
	switch ev.Key() {
	case tcell.KeyTab:
		if mods&tcell.ModShift != 0 {
			return "shift+tab"
		}
		return "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	}
	if name := ctrlKeyName(ev.Key()); name != "" {
		return name
	}
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyPgUp:
		return "pgup"
	case tcell.KeyPgDn:
		return "pgdn"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyDelete:
		return "del"
	case tcell.KeyInsert:
		return "ins"
	}
	return ""
}

func ctrlKeyName(key tcell.Key) string {
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+int(key-tcell.KeyCtrlA)))
	}
	return ""
}

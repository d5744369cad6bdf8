package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Keymap maps key strings ("j", "ctrl+z", "pgup") to command names. List
// bindings are active while editing; Confirm bindings answer y/n prompts.
type Keymap struct {
	List    map[string]string `toml:"list"`
	Confirm map[string]string `toml:"confirm"`
}

type EditorOptions struct {
	// UndoLimit caps the undo stack; 0 is unlimited.
	UndoLimit int `toml:"undo-limit"`
	// PageStep overrides the page motion; 0 means half the visible list.
	PageStep      int    `toml:"page-step"`
	CommentChar   string `toml:"comment-char"`
	HighlightExec bool   `toml:"highlight-exec"`
}

type Theme struct {
	Theme              string `toml:"theme"`
	Foreground         string `toml:"foreground"`
	Background         string `toml:"background"`
	TitleForeground    string `toml:"title-foreground"`
	TitleBackground    string `toml:"title-background"`
	HelpForeground     string `toml:"help-foreground"`
	MessageForeground  string `toml:"message-foreground"`
	SelectedForeground string `toml:"selected-foreground"`
	SelectedBackground string `toml:"selected-background"`

	ActionBreak     string `toml:"action-break"`
	ActionDrop      string `toml:"action-drop"`
	ActionEdit      string `toml:"action-edit"`
	ActionExec      string `toml:"action-exec"`
	ActionFixup     string `toml:"action-fixup"`
	ActionNoop      string `toml:"action-noop"`
	ActionPick      string `toml:"action-pick"`
	ActionReword    string `toml:"action-reword"`
	ActionSquash    string `toml:"action-squash"`
	ActionLabel     string `toml:"action-label"`
	ActionReset     string `toml:"action-reset"`
	ActionMerge     string `toml:"action-merge"`
	ActionUpdateRef string `toml:"action-update-ref"`

	SyntaxKeyword  string `toml:"syntax-keyword"`
	SyntaxString   string `toml:"syntax-string"`
	SyntaxComment  string `toml:"syntax-comment"`
	SyntaxFunction string `toml:"syntax-function"`
	SyntaxOperator string `toml:"syntax-operator"`
	SyntaxVariable string `toml:"syntax-variable"`
}

type Config struct {
	Editor EditorOptions `toml:"editor"`
	Theme  Theme         `toml:"theme"`
	Keymap Keymap        `toml:"keymap"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			UndoLimit:     0,
			PageStep:      0,
			CommentChar:   "",
			HighlightExec: true,
		},
		Theme: Theme{
			Theme:              "",
			Foreground:         "#B3B1AD",
			Background:         "#0A0E14",
			TitleForeground:    "#0A0E14",
			TitleBackground:    "#E6B450",
			HelpForeground:     "#5C6773",
			MessageForeground:  "#F07178",
			SelectedForeground: "#B3B1AD",
			SelectedBackground: "#27425A",

			ActionBreak:     "#FFFFFF",
			ActionDrop:      "#F07178",
			ActionEdit:      "#59C2FF",
			ActionExec:      "#FFFFFF",
			ActionFixup:     "#D4BFFF",
			ActionNoop:      "#5C6773",
			ActionPick:      "#BAE67E",
			ActionReword:    "#FFD173",
			ActionSquash:    "#95E6CB",
			ActionLabel:     "#5C6773",
			ActionReset:     "#5C6773",
			ActionMerge:     "#5C6773",
			ActionUpdateRef: "#5C6773",

			SyntaxKeyword:  "#FFA759",
			SyntaxString:   "#BAE67E",
			SyntaxComment:  "#5C6773",
			SyntaxFunction: "#FFD173",
			SyntaxOperator: "#F29668",
			SyntaxVariable: "#B3B1AD",
		},
		Keymap: Keymap{
			List: map[string]string{
				"up":     "move_up",
				"down":   "move_down",
				"pgup":   "page_up",
				"pgdn":   "page_down",
				"home":   "home",
				"end":    "end",
				"v":      "toggle_visual",
				"k":      "swap_up",
				"j":      "swap_down",
				"p":      "pick",
				"d":      "drop",
				"e":      "edit",
				"f":      "fixup",
				"r":      "reword",
				"s":      "squash",
				"b":      "break",
				"u":      "fixup_keep_message",
				"U":      "fixup_keep_message_editor",
				"del":    "delete",
				"c":      "yank_hash",
				"ctrl+z": "undo",
				"ctrl+y": "redo",
				"w":      "rebase",
				"W":      "force_rebase",
				"q":      "abort",
				"Q":      "force_abort",
				"?":      "help",
			},
			Confirm: map[string]string{
				"y":   "yes",
				"Y":   "yes",
				"n":   "no",
				"N":   "no",
				"esc": "no",
			},
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	md, err := toml.Decode(string(data), &userCfg)
	if err != nil {
		return cfg, err
	}

	if userCfg.Editor.UndoLimit > 0 {
		cfg.Editor.UndoLimit = userCfg.Editor.UndoLimit
	}
	if userCfg.Editor.PageStep > 0 {
		cfg.Editor.PageStep = userCfg.Editor.PageStep
	}
	if userCfg.Editor.CommentChar != "" {
		cfg.Editor.CommentChar = userCfg.Editor.CommentChar
	}
	if md.IsDefined("editor", "highlight-exec") {
		cfg.Editor.HighlightExec = userCfg.Editor.HighlightExec
	}
	if userCfg.Theme.Theme != "" {
		cfg.Theme.Theme = userCfg.Theme.Theme
	}
	if cfg.Theme.Theme != "" {
		theme, err := LoadTheme(cfg.Theme.Theme)
		if err != nil {
			return cfg, err
		}
		mergeTheme(&cfg.Theme, theme)
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)
	for k, v := range userCfg.Keymap.List {
		cfg.Keymap.List[k] = v
	}
	for k, v := range userCfg.Keymap.Confirm {
		cfg.Keymap.Confirm[k] = v
	}

	return cfg, nil
}

// mergeTheme copies every color src sets onto dst.
func mergeTheme(dst *Theme, src Theme) {
	pairs := []struct {
		dst *string
		src string
	}{
		{&dst.Foreground, src.Foreground},
		{&dst.Background, src.Background},
		{&dst.TitleForeground, src.TitleForeground},
		{&dst.TitleBackground, src.TitleBackground},
		{&dst.HelpForeground, src.HelpForeground},
		{&dst.MessageForeground, src.MessageForeground},
		{&dst.SelectedForeground, src.SelectedForeground},
		{&dst.SelectedBackground, src.SelectedBackground},
		{&dst.ActionBreak, src.ActionBreak},
		{&dst.ActionDrop, src.ActionDrop},
		{&dst.ActionEdit, src.ActionEdit},
		{&dst.ActionExec, src.ActionExec},
		{&dst.ActionFixup, src.ActionFixup},
		{&dst.ActionNoop, src.ActionNoop},
		{&dst.ActionPick, src.ActionPick},
		{&dst.ActionReword, src.ActionReword},
		{&dst.ActionSquash, src.ActionSquash},
		{&dst.ActionLabel, src.ActionLabel},
		{&dst.ActionReset, src.ActionReset},
		{&dst.ActionMerge, src.ActionMerge},
		{&dst.ActionUpdateRef, src.ActionUpdateRef},
		{&dst.SyntaxKeyword, src.SyntaxKeyword},
		{&dst.SyntaxString, src.SyntaxString},
		{&dst.SyntaxComment, src.SyntaxComment},
		{&dst.SyntaxFunction, src.SyntaxFunction},
		{&dst.SyntaxOperator, src.SyntaxOperator},
		{&dst.SyntaxVariable, src.SyntaxVariable},
	}
	for _, p := range pairs {
		if p.src != "" {
			*p.dst = p.src
		}
	}
}

// ActionColors returns the label color per action keyword.
func (t Theme) ActionColors() map[string]string {
	return map[string]string{
		"break":      t.ActionBreak,
		"drop":       t.ActionDrop,
		"edit":       t.ActionEdit,
		"exec":       t.ActionExec,
		"fixup":      t.ActionFixup,
		"noop":       t.ActionNoop,
		"pick":       t.ActionPick,
		"reword":     t.ActionReword,
		"squash":     t.ActionSquash,
		"label":      t.ActionLabel,
		"reset":      t.ActionReset,
		"merge":      t.ActionMerge,
		"update-ref": t.ActionUpdateRef,
	}
}

// SyntaxColors returns the color per highlight capture name.
func (t Theme) SyntaxColors() map[string]string {
	return map[string]string{
		"keyword":  t.SyntaxKeyword,
		"string":   t.SyntaxString,
		"comment":  t.SyntaxComment,
		"function": t.SyntaxFunction,
		"operator": t.SyntaxOperator,
		"variable": t.SyntaxVariable,
	}
}

func ThemePath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theme", name+".toml"), nil
}

func LoadTheme(name string) (Theme, error) {
	path, err := ThemePath(name)
	if err != nil {
		return Theme{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var wrap struct {
		Theme *Theme `toml:"theme"`
	}
	if _, err := toml.Decode(string(data), &wrap); err == nil && wrap.Theme != nil {
		return *wrap.Theme, nil
	}
	var t Theme
	if _, err := toml.Decode(string(data), &t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("QREBASE_CONFIG_HOME"); v != "" {
		return filepath.Clean(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "qrebase"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "qrebase"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

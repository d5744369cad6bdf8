// Package app runs the interactive session: it owns the screen, routes key
// events to the list editor and writes the todo file on rebase or abort.
package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qrebase/internal/config"
	"github.com/kobzarvs/qrebase/internal/display"
	"github.com/kobzarvs/qrebase/internal/editor"
	"github.com/kobzarvs/qrebase/internal/logger"
	"github.com/kobzarvs/qrebase/internal/render"
	"github.com/kobzarvs/qrebase/internal/todo"
	"github.com/kobzarvs/qrebase/internal/view"
)

const (
	confirmRebase = "Are you sure you want to rebase (y/n)? "
	confirmAbort  = "Are you sure you want to abort (y/n)? "
	helpTitle     = "Help"
)

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeRebase
	OutcomeAbort
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRebase:
		return "rebase"
	case OutcomeAbort:
		return "abort"
	}
	return "none"
}

type Options struct {
	Config      config.Config
	Branch      string
	Highlighter render.Highlighter
	// Clipboard overrides the system clipboard, mostly for tests.
	Clipboard func(string) error
}

// App is the top-level runtime for one todo file.
type App struct {
	file        *todo.File
	list        *editor.List
	listKeys    editor.KeyMap
	confirmKeys editor.KeyMap
	theme       display.Theme
	helpLines   []string

	pending  editor.Command
	showHelp bool
	status   string
	outcome  Outcome
}

func New(file *todo.File, opts Options) (*App, error) {
	listKeys, err := editor.NewKeyMap(opts.Config.Keymap.List)
	if err != nil {
		return nil, fmt.Errorf("list keymap: %w", err)
	}
	confirmKeys, err := editor.NewKeyMap(opts.Config.Keymap.Confirm)
	if err != nil {
		return nil, fmt.Errorf("confirm keymap: %w", err)
	}

	renderOpts := []render.Option{render.WithBranch(opts.Branch)}
	if opts.Highlighter != nil {
		renderOpts = append(renderOpts, render.WithHighlighter(opts.Highlighter))
	}
	list := editor.New(file, view.NewContext(0, 0), editor.Options{
		UndoLimit: opts.Config.Editor.UndoLimit,
		PageStep:  opts.Config.Editor.PageStep,
		Clipboard: opts.Clipboard,
		Renderer:  render.New(renderOpts...),
	})
	return &App{
		file:        file,
		list:        list,
		listKeys:    listKeys,
		confirmKeys: confirmKeys,
		theme:       display.NewTheme(opts.Config.Theme),
		helpLines:   render.HelpLines(listKeys.Entries()),
	}, nil
}

// Run opens the terminal and blocks until the user rebases or aborts.
func (a *App) Run() (Outcome, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return OutcomeNone, fmt.Errorf("open screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return OutcomeNone, fmt.Errorf("init screen: %w", err)
	}
	defer s.Fini()
	return a.RunScreen(s)
}

// RunScreen drives an initialized screen. The caller keeps ownership of it.
func (a *App) RunScreen(s tcell.Screen) (Outcome, error) {
	w, h := s.Size()
	a.list.Resize(w, h)
	a.draw(s)
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return a.outcome, nil
		case *tcell.EventResize:
			w, h := ev.Size()
			a.list.Resize(w, h)
			s.Sync()
		case *tcell.EventKey:
			done, err := a.handleKey(ev)
			if err != nil {
				return a.outcome, err
			}
			if done {
				return a.outcome, nil
			}
		}
		a.draw(s)
	}
}

func (a *App) draw(s tcell.Screen) {
	data := a.list.View()
	data.Status = a.status
	display.Draw(s, a.theme, data)
	if a.showHelp && !data.TooSmall {
		display.DrawHelp(s, a.theme, helpTitle, a.helpLines)
	}
}

// handleKey reports done once the todo file has been written.
func (a *App) handleKey(ev *tcell.EventKey) (bool, error) {
	if a.showHelp {
		a.showHelp = false
		return false, nil
	}
	if a.pending != editor.CmdNone {
		pending := a.pending
		a.pending = editor.CmdNone
		a.status = ""
		if a.confirmKeys.Lookup(ev) != editor.CmdYes {
			logger.Debug("confirmation cancelled", "cmd", pending.String())
			return false, nil
		}
		return true, a.finish(pending)
	}

	a.status = ""
	cmd := a.listKeys.Lookup(ev)
	switch cmd {
	case editor.CmdNone:
		return false, nil
	case editor.CmdRebase:
		a.pending = editor.CmdRebase
		a.status = confirmRebase
	case editor.CmdAbort:
		a.pending = editor.CmdAbort
		a.status = confirmAbort
	case editor.CmdForceRebase:
		return true, a.finish(editor.CmdRebase)
	case editor.CmdForceAbort:
		return true, a.finish(editor.CmdAbort)
	case editor.CmdHelp:
		a.showHelp = true
	default:
		if err := a.list.Handle(cmd); err != nil {
			logger.Warn("command failed", "cmd", cmd.String(), "error", err)
			a.status = err.Error()
		}
	}
	return false, nil
}

func (a *App) finish(cmd editor.Command) error {
	switch cmd {
	case editor.CmdRebase:
		a.outcome = OutcomeRebase
		if err := a.file.Save(); err != nil {
			return fmt.Errorf("write todo file: %w", err)
		}
	case editor.CmdAbort:
		a.outcome = OutcomeAbort
		if err := a.file.SaveEmpty(); err != nil {
			return fmt.Errorf("clear todo file: %w", err)
		}
	}
	logger.Info("session finished", "outcome", a.outcome.String(), "path", a.file.Path(), "lines", a.file.Len())
	return nil
}

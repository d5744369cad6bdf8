package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/kobzarvs/qrebase/internal/app"
	"github.com/kobzarvs/qrebase/internal/config"
	"github.com/kobzarvs/qrebase/internal/gitinfo"
	"github.com/kobzarvs/qrebase/internal/logger"
	"github.com/kobzarvs/qrebase/internal/todo"
	"github.com/kobzarvs/qrebase/internal/treesitter"
)

// Populated at build time via -ldflags.
var version = "dev"

var errNotTerminal = errors.New("stdout is not a terminal")

func build() string {
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				return mv
			}
		}
	}
	return version
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "qrebase",
		Usage:     "Edit a git interactive rebase todo list",
		UsageText: "qrebase [--debug] <todo-file>",
		Description: `qrebase is meant to run as git's sequence editor:

    git config --global sequence.editor qrebase

Writing the list (w) continues the rebase; aborting (q) empties the todo
file so git abandons it.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "write debug entries to the log file",
				Sources: cli.EnvVars("QREBASE_DEBUG"),
			},
		},
		Action: run,
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "qrebase:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected one todo file argument, got %d", c.Args().Len())
	}
	path := c.Args().First()
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	if err := logger.Init(c.Bool("debug")); err != nil {
		fmt.Fprintln(os.Stderr, "qrebase: logging disabled:", err)
	}
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	commentChar := cfg.Editor.CommentChar
	if commentChar == "" {
		commentChar = gitinfo.CommentChar(path)
	}
	file, err := todo.Load(path, commentChar)
	if err != nil {
		logger.Error("load todo file", "path", path, "error", err)
		return err
	}

	branch := gitinfo.RebaseBranch(path)
	if branch == "" {
		branch = gitinfo.Branch(path)
	}
	opts := app.Options{Config: cfg, Branch: branch}
	if cfg.Editor.HighlightExec {
		engine, err := treesitter.New()
		if err != nil {
			logger.Warn("exec highlighting disabled", "error", err)
		} else {
			defer engine.Close()
			opts.Highlighter = engine
		}
	}

	a, err := app.New(file, opts)
	if err != nil {
		return err
	}
	logger.Info("session started", "path", path, "lines", file.Len(), "branch", branch)
	outcome, err := a.Run()
	if err != nil {
		logger.Error("session failed", "error", err)
		return err
	}
	logger.Debug("session outcome", "outcome", outcome.String())
	return nil
}

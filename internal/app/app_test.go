package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qrebase/internal/config"
	"github.com/kobzarvs/qrebase/internal/todo"
)

func writeTodo(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "git-rebase-todo")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write todo: %v", err)
	}
	return path
}

func newTestApp(t *testing.T, path string, clip func(string) error) *App {
	t.Helper()
	f, err := todo.Load(path, "#")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if clip == nil {
		clip = func(string) error { return nil }
	}
	a, err := New(f, Options{Config: config.Default(), Branch: "feature", Clipboard: clip})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(60, 12)
	return s
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(data)
}

func screenText(s tcell.SimulationScreen) string {
	cells, w, h := s.GetContents()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(c.Runes[0])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestForceRebaseWritesEdits(t *testing.T) {
	path := writeTodo(t, "# header\npick aaa c1\npick bbb c2\n")
	a := newTestApp(t, path, nil)
	s := newScreen(t)
	s.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'W', tcell.ModNone)

	outcome, err := a.RunScreen(s)
	if err != nil {
		t.Fatalf("RunScreen: %v", err)
	}
	if outcome != OutcomeRebase {
		t.Fatalf("outcome = %s, want rebase", outcome)
	}
	if got := readFile(t, path); got != "drop aaa c1\npick bbb c2\n" {
		t.Fatalf("todo = %q", got)
	}
}

func TestAbortAfterConfirmation(t *testing.T) {
	path := writeTodo(t, "pick aaa c1\n")
	a := newTestApp(t, path, nil)
	s := newScreen(t)
	for _, r := range "qnqy" {
		s.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}

	outcome, err := a.RunScreen(s)
	if err != nil {
		t.Fatalf("RunScreen: %v", err)
	}
	if outcome != OutcomeAbort {
		t.Fatalf("outcome = %s, want abort", outcome)
	}
	if got := readFile(t, path); got != "" {
		t.Fatalf("todo = %q, want empty", got)
	}
}

func TestRebasePromptCancelledByOtherKey(t *testing.T) {
	path := writeTodo(t, "pick aaa c1\n")
	a := newTestApp(t, path, nil)

	done, err := a.handleKey(key('w'))
	if done || err != nil {
		t.Fatalf("handleKey(w) = %v, %v", done, err)
	}
	if a.status != confirmRebase {
		t.Fatalf("status = %q", a.status)
	}
	// the cancelling key is swallowed, not applied to the list
	done, _ = a.handleKey(key('d'))
	if done || a.status != "" {
		t.Fatalf("prompt not cancelled: done=%v status=%q", done, a.status)
	}
	if got := a.file.Lines()[0].String(); got != "pick aaa c1" {
		t.Fatalf("line = %q", got)
	}
	if got := readFile(t, path); got != "pick aaa c1\n" {
		t.Fatalf("todo written early: %q", got)
	}
}

func TestStatusShownOnScreen(t *testing.T) {
	path := writeTodo(t, "pick aaa c1\n")
	a := newTestApp(t, path, nil)
	s := newScreen(t)
	w, h := s.Size()
	a.list.Resize(w, h)

	if _, err := a.handleKey(key('q')); err != nil {
		t.Fatalf("handleKey: %v", err)
	}
	a.draw(s)
	text := screenText(s)
	if !strings.Contains(text, strings.TrimSpace(confirmAbort)) {
		t.Fatalf("prompt missing:\n%s", text)
	}
	if !strings.Contains(text, "Git Interactive Rebase (feature)") {
		t.Fatalf("title missing:\n%s", text)
	}
}

func TestHelpOverlay(t *testing.T) {
	path := writeTodo(t, "pick aaa c1\n")
	a := newTestApp(t, path, nil)
	s := newScreen(t)
	s.SetSize(100, 40)
	w, h := s.Size()
	a.list.Resize(w, h)

	_, _ = a.handleKey(key('?'))
	a.draw(s)
	if text := screenText(s); !strings.Contains(text, "Set selected commits to be picked") {
		t.Fatalf("help missing:\n%s", text)
	}

	// any key closes the overlay without reaching the list
	_, _ = a.handleKey(key('d'))
	if a.showHelp {
		t.Fatalf("help still shown")
	}
	if got := a.file.Lines()[0].String(); got != "pick aaa c1" {
		t.Fatalf("line = %q", got)
	}
}

func TestClipboardErrorReported(t *testing.T) {
	path := writeTodo(t, "pick aaa c1\n")
	a := newTestApp(t, path, func(string) error { return errors.New("clipboard unavailable") })
	done, err := a.handleKey(key('c'))
	if done || err != nil {
		t.Fatalf("handleKey = %v, %v", done, err)
	}
	if a.status != "clipboard unavailable" {
		t.Fatalf("status = %q", a.status)
	}
	_, _ = a.handleKey(key('j'))
	if a.status != "" {
		t.Fatalf("status not cleared: %q", a.status)
	}
}

func TestNewRejectsBadKeymap(t *testing.T) {
	f := todo.New(nil)
	cfg := config.Default()
	cfg.Keymap.List["x"] = "explode"
	if _, err := New(f, Options{Config: cfg}); err == nil || !strings.Contains(err.Error(), "explode") {
		t.Fatalf("err = %v, want keymap error", err)
	}
}

func TestResizeToSmallWindow(t *testing.T) {
	path := writeTodo(t, "pick aaa c1\n")
	a := newTestApp(t, path, nil)
	s := newScreen(t)
	s.SetSize(18, 4)
	w, h := s.Size()
	a.list.Resize(w, h)
	a.draw(s)
	if text := screenText(s); !strings.Contains(text, "Window too small") {
		t.Fatalf("too small notice missing:\n%s", text)
	}
}

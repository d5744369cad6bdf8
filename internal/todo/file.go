package todo

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File owns the ordered lines of a todo script. Lines are only reachable
// through a Guard handed out by Update or View, which hold the file mutex
// for the duration of the callback.
type File struct {
	mu          sync.Mutex
	lines       []Line
	path        string
	commentChar string
}

// New creates an in-memory file. An empty input yields a single noop line.
func New(lines []Line) *File {
	f := &File{commentChar: DefaultCommentChar}
	f.lines = append(f.lines, lines...)
	if len(f.lines) == 0 {
		f.lines = []Line{NewNoop()}
	}
	return f
}

// Load reads and parses the script at path.
func Load(path, commentChar string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines, err := ParseScript(string(data), commentChar)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	f := New(lines)
	f.path = path
	if commentChar != "" {
		f.commentChar = commentChar
	}
	return f, nil
}

// Path returns the file the script was loaded from, if any.
func (f *File) Path() string {
	return f.path
}

// Update runs fn with exclusive access to the lines. The lock is released
// on every exit path, including a panic inside fn.
func (f *File) Update(fn func(g *Guard) error) error {
	f.mu.Lock()
	g := &Guard{file: f}
	defer func() {
		g.file = nil
		f.mu.Unlock()
	}()
	return fn(g)
}

// View runs fn with exclusive read access.
func (f *File) View(fn func(r Reader)) {
	f.mu.Lock()
	g := &Guard{file: f}
	defer func() {
		g.file = nil
		f.mu.Unlock()
	}()
	fn(g)
}

// Lines returns a copy of the current lines.
func (f *File) Lines() []Line {
	var out []Line
	f.View(func(r Reader) {
		out = r.Lines()
	})
	return out
}

// Len returns the number of lines.
func (f *File) Len() int {
	n := 0
	f.View(func(r Reader) {
		n = r.Len()
	})
	return n
}

// Save writes the script back to its path.
func (f *File) Save() error {
	return f.write(FormatScript(f.Lines()))
}

// SaveEmpty truncates the script on disk; git aborts a rebase whose todo
// list is empty.
func (f *File) SaveEmpty() error {
	return f.write("")
}

func (f *File) write(contents string) error {
	if f.path == "" {
		return fmt.Errorf("todo file has no path")
	}
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	mode := os.FileMode(0o644)
	if info, err := os.Stat(f.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if _, err := tmp.WriteString(contents); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

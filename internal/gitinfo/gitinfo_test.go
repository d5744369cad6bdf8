package gitinfo

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func gitAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, string(out))
	}
	return string(out)
}

func TestBranchAndRoot(t *testing.T) {
	if !gitAvailable() {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "symbolic-ref", "HEAD", "refs/heads/feature/one")

	if got := Branch(dir); got != "feature/one" {
		t.Fatalf("Branch = %q, want %q", got, "feature/one")
	}
	if root := Root(dir); root != dir {
		t.Fatalf("Root = %q, want %q", root, dir)
	}
}

func TestRootFromTodoInsideGitDir(t *testing.T) {
	if !gitAvailable() {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	runGit(t, dir, "init")
	rebaseDir := filepath.Join(dir, ".git", "rebase-merge")
	if err := os.MkdirAll(rebaseDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	todo := filepath.Join(rebaseDir, "git-rebase-todo")
	if err := os.WriteFile(todo, []byte("pick aaa c1\n"), 0o644); err != nil {
		t.Fatalf("write todo: %v", err)
	}
	if root := Root(todo); root != dir {
		t.Fatalf("Root = %q, want %q", root, dir)
	}
}

func TestRebaseBranch(t *testing.T) {
	dir := t.TempDir()
	todo := filepath.Join(dir, "git-rebase-todo")
	if got := RebaseBranch(todo); got != "" {
		t.Fatalf("RebaseBranch without head-name = %q", got)
	}
	if err := os.WriteFile(filepath.Join(dir, "head-name"), []byte("refs/heads/feature/x\n"), 0o644); err != nil {
		t.Fatalf("write head-name: %v", err)
	}
	if got := RebaseBranch(todo); got != "feature/x" {
		t.Fatalf("RebaseBranch = %q, want %q", got, "feature/x")
	}
	if err := os.WriteFile(filepath.Join(dir, "head-name"), []byte("detached HEAD\n"), 0o644); err != nil {
		t.Fatalf("write head-name: %v", err)
	}
	if got := RebaseBranch(todo); got != "" {
		t.Fatalf("RebaseBranch detached = %q", got)
	}
}

func TestCommentChar(t *testing.T) {
	if !gitAvailable() {
		t.Skip("git not available")
	}
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(t.TempDir(), "gitconfig"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	dir := t.TempDir()
	runGit(t, dir, "init")
	if got := CommentChar(dir); got != DefaultCommentChar {
		t.Fatalf("CommentChar unset = %q", got)
	}
	runGit(t, dir, "config", "core.commentChar", ";")
	if got := CommentChar(dir); got != ";" {
		t.Fatalf("CommentChar = %q, want %q", got, ";")
	}
	runGit(t, dir, "config", "core.commentChar", "auto")
	if got := CommentChar(dir); got != DefaultCommentChar {
		t.Fatalf("CommentChar auto = %q", got)
	}
}

func TestNotRepo(t *testing.T) {
	dir := t.TempDir()
	if got := Branch(dir); got != "" {
		t.Fatalf("Branch = %q, want empty", got)
	}
	if got := Root(dir); got != "" {
		t.Fatalf("Root = %q, want empty", got)
	}
}

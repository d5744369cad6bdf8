// Package gitinfo reads the bits of repository state the rebase editor shows
// or depends on. All lookups are best effort: failures yield defaults.
package gitinfo

import (
	"bufio"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultCommentChar is git's comment prefix when core.commentChar is unset.
const DefaultCommentChar = "#"

// Branch names the checked out branch, or "detached:<sha>".
func Branch(path string) string {
	gitDir, err := findGitDir(path)
	if err != nil || gitDir == "" {
		return ""
	}
	branch, err := readHead(gitDir)
	if err != nil {
		return ""
	}
	return branch
}

// RebaseBranch names the branch being rebased. git keeps it in head-name
// next to the todo file; HEAD itself is detached while a rebase runs.
func RebaseBranch(todoPath string) string {
	data, err := os.ReadFile(filepath.Join(filepath.Dir(todoPath), "head-name"))
	if err != nil {
		return ""
	}
	name := strings.TrimSpace(string(data))
	if name == "" || name == "detached HEAD" {
		return ""
	}
	return strings.TrimPrefix(name, "refs/heads/")
}

func Root(path string) string {
	gitDir, err := findGitDir(path)
	if err != nil || gitDir == "" {
		return ""
	}
	return filepath.Dir(gitDir)
}

// CommentChar returns core.commentChar for the repository containing path.
// "auto" and unset both map to DefaultCommentChar.
func CommentChar(path string) string {
	dir := Root(path)
	if dir == "" {
		dir = path
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			dir = filepath.Dir(path)
		}
	}
	out, err := exec.Command("git", "-C", dir, "config", "--get", "core.commentChar").Output()
	if err != nil {
		return DefaultCommentChar
	}
	value := strings.TrimSpace(string(out))
	if value == "" || value == "auto" {
		return DefaultCommentChar
	}
	return value
}

func findGitDir(path string) (string, error) {
	start := path
	info, err := os.Stat(start)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		start = filepath.Dir(start)
	}
	for {
		gitPath := filepath.Join(start, ".git")
		if info, err := os.Stat(gitPath); err == nil {
			if info.IsDir() {
				return gitPath, nil
			}
			if info.Mode().IsRegular() {
				data, err := os.ReadFile(gitPath)
				if err != nil {
					return "", err
				}
				line := strings.TrimSpace(string(data))
				const prefix = "gitdir:"
				if strings.HasPrefix(line, prefix) {
					dir := strings.TrimSpace(strings.TrimPrefix(line, prefix))
					if !filepath.IsAbs(dir) {
						dir = filepath.Join(start, dir)
					}
					return dir, nil
				}
			}
		}
		// the todo file sits inside the git dir itself
		if filepath.Base(start) == ".git" {
			return start, nil
		}
		parent := filepath.Dir(start)
		if parent == start {
			break
		}
		start = parent
	}
	return "", errors.New("git dir not found")
}

func readHead(gitDir string) (string, error) {
	f, err := os.Open(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", errors.New("empty HEAD")
	}
	line := strings.TrimSpace(scanner.Text())
	const refPrefix = "ref:"
	if strings.HasPrefix(line, refPrefix) {
		ref := strings.TrimSpace(strings.TrimPrefix(line, refPrefix))
		return strings.TrimPrefix(ref, "refs/heads/"), nil
	}
	if len(line) >= 7 {
		return "detached:" + line[:7], nil
	}
	return "detached", nil
}

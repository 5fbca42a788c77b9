package srtio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gofrs/flock"
)

// Join renders lines into a single blob: newline-joined with one trailing
// terminator when non-empty.
func Join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// WriteFile writes lines to path, or to stdout when path is empty.
func WriteFile(path string, lines []string) error {
	if path == "" {
		if _, err := io.WriteString(os.Stdout, Join(lines)); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(Join(lines)), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// RewriteInPlace replaces path with lines. A sidecar lock keeps concurrent
// runs from interleaving writes to the same file, and the content lands via
// rename so readers never observe a half-written subtitle.
func RewriteInPlace(path string, lines []string) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(Join(lines)), 0o644); err != nil {
		return fmt.Errorf("write temp output: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

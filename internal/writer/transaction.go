package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Transaction stages file writes and commits them together. If any write
// fails, files written so far are removed, so a scaffold either fully lands
// or leaves nothing behind.
type Transaction struct {
	staged    []stagedFile
	committed bool
}

type stagedFile struct {
	path    string
	content []byte
	mode    os.FileMode
}

// NewTransaction creates an empty transaction.
func NewTransaction() *Transaction {
	return &Transaction{}
}

// Stage adds a file write without touching disk.
func (t *Transaction) Stage(path string, content []byte, mode os.FileMode) {
	t.staged = append(t.staged, stagedFile{path: path, content: content, mode: mode})
}

// Commit writes all staged files, removing already-written ones on failure.
func (t *Transaction) Commit() error {
	if t.committed {
		return fmt.Errorf("transaction already committed")
	}

	written := make([]string, 0, len(t.staged))
	for _, f := range t.staged {
		if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
			t.remove(written)
			return fmt.Errorf("creating directory for %s: %w", f.path, err)
		}
		if err := os.WriteFile(f.path, f.content, f.mode); err != nil {
			t.remove(written)
			return fmt.Errorf("writing %s: %w", f.path, err)
		}
		written = append(written, f.path)
	}

	t.committed = true
	return nil
}

// Rollback removes any staged files that made it to disk. Safe to defer;
// it is a no-op after a successful Commit.
func (t *Transaction) Rollback() {
	if t.committed {
		return
	}
	var written []string
	for _, f := range t.staged {
		if _, err := os.Stat(f.path); err == nil {
			written = append(written, f.path)
		}
	}
	t.remove(written)
}

func (t *Transaction) remove(paths []string) {
	for _, p := range paths {
		os.Remove(p) // best effort
	}
}

package writer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTransactionCommit(t *testing.T) {
	tempDir := t.TempDir()

	tx := NewTransaction()
	tx.Stage(filepath.Join(tempDir, "server", "package.json"), []byte("{}"), 0644)
	tx.Stage(filepath.Join(tempDir, "README.md"), []byte("# hi"), 0644)

	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(tempDir, "server", "package.json"))
	if err != nil || string(content) != "{}" {
		t.Error("server/package.json not written correctly")
	}
	if _, err := os.Stat(filepath.Join(tempDir, "README.md")); err != nil {
		t.Error("README.md not written")
	}
}

func TestTransactionRollbackOnFailure(t *testing.T) {
	tempDir := t.TempDir()

	tx := NewTransaction()
	tx.Stage(filepath.Join(tempDir, "good.txt"), []byte("ok"), 0644)
	tx.Stage(filepath.Join(tempDir, "\x00bad", "file.txt"), []byte("nope"), 0644)

	if err := tx.Commit(); err == nil {
		t.Fatal("expected commit to fail")
	}

	if _, err := os.Stat(filepath.Join(tempDir, "good.txt")); !os.IsNotExist(err) {
		t.Error("good.txt should have been rolled back")
	}
}

func TestTransactionCannotCommitTwice(t *testing.T) {
	tempDir := t.TempDir()

	tx := NewTransaction()
	tx.Stage(filepath.Join(tempDir, "once.txt"), []byte("x"), 0644)

	if err := tx.Commit(); err != nil {
		t.Fatalf("first commit failed: %v", err)
	}
	if err := tx.Commit(); err == nil {
		t.Error("second commit should fail")
	}
}

func TestTransactionRollbackAfterCommitIsNoop(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "keep.txt")

	tx := NewTransaction()
	tx.Stage(path, []byte("keep"), 0644)

	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	tx.Rollback()

	if _, err := os.Stat(path); err != nil {
		t.Error("rollback after commit removed a committed file")
	}
}

func TestTransactionRollbackRemovesWritten(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "partial.txt")

	// Simulate a partial landing: the file exists but the transaction was
	// never committed.
	tx := NewTransaction()
	tx.Stage(path, []byte("partial"), 0644)
	if err := os.WriteFile(path, []byte("partial"), 0644); err != nil {
		t.Fatal(err)
	}

	tx.Rollback()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("rollback left the staged file behind")
	}
}

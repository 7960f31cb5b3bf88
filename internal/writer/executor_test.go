package writer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestExecuteWritesFiles(t *testing.T) {
	tempDir := t.TempDir()

	ops := []Operation{
		&MkdirOp{Path: filepath.Join(tempDir, "src", "models")},
		&WriteFileOp{Path: filepath.Join(tempDir, "src", "app.js"), Content: []byte("console.log('hi')\n"), Mode: 0644},
	}

	if err := Execute(context.Background(), ops, Options{}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(tempDir, "src", "models"))
	if err != nil || !info.IsDir() {
		t.Error("src/models not created")
	}
	content, err := os.ReadFile(filepath.Join(tempDir, "src", "app.js"))
	if err != nil || string(content) != "console.log('hi')\n" {
		t.Error("src/app.js not written correctly")
	}
}

func TestExecuteDryRunTouchesNothing(t *testing.T) {
	tempDir := t.TempDir()
	var out bytes.Buffer

	ops := []Operation{
		&MkdirOp{Path: filepath.Join(tempDir, "src")},
		&WriteFileOp{Path: filepath.Join(tempDir, "app.js"), Content: []byte("x"), Mode: 0644},
	}

	if err := Execute(context.Background(), ops, Options{DryRun: true, Out: &out}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tempDir, "src")); !os.IsNotExist(err) {
		t.Error("dry run created a directory")
	}
	if _, err := os.Stat(filepath.Join(tempDir, "app.js")); !os.IsNotExist(err) {
		t.Error("dry run wrote a file")
	}
	if !bytes.Contains(out.Bytes(), []byte("[dry run]")) {
		t.Errorf("expected dry run report, got %q", out.String())
	}
}

func TestExecuteConflictAbortsBeforeWriting(t *testing.T) {
	tempDir := t.TempDir()

	existing := filepath.Join(tempDir, "taken.txt")
	if err := os.WriteFile(existing, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	ops := []Operation{
		&WriteFileOp{Path: filepath.Join(tempDir, "new.txt"), Content: []byte("new"), Mode: 0644},
		&WriteFileOp{Path: existing, Content: []byte("overwrite"), Mode: 0644},
	}

	if err := Execute(context.Background(), ops, Options{}); err == nil {
		t.Fatal("expected a conflict error")
	}

	// Validation runs before execution, so the first file never landed.
	if _, err := os.Stat(filepath.Join(tempDir, "new.txt")); !os.IsNotExist(err) {
		t.Error("operation executed despite failed validation")
	}
	content, _ := os.ReadFile(existing)
	if string(content) != "old" {
		t.Error("existing file was overwritten")
	}
}

func TestExecuteForceOverwrites(t *testing.T) {
	tempDir := t.TempDir()

	existing := filepath.Join(tempDir, "taken.txt")
	if err := os.WriteFile(existing, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	ops := []Operation{
		&WriteFileOp{Path: existing, Content: []byte("new"), Mode: 0644},
	}
	if err := Execute(context.Background(), ops, Options{Force: true}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	content, _ := os.ReadFile(existing)
	if string(content) != "new" {
		t.Error("force did not overwrite")
	}
}

func TestWriteFileOpRejectsNilContent(t *testing.T) {
	op := &WriteFileOp{Path: "anywhere.txt", Content: nil, Mode: 0644}
	if err := op.Validate(context.Background(), false); err == nil {
		t.Error("expected nil content to fail validation")
	}
}

func TestMkdirOpValidate(t *testing.T) {
	tempDir := t.TempDir()

	file := filepath.Join(tempDir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := (&MkdirOp{Path: file}).Validate(context.Background(), false); err == nil {
		t.Error("expected error for path occupied by a file")
	}
	if err := (&MkdirOp{Path: ""}).Validate(context.Background(), false); err == nil {
		t.Error("expected error for empty path")
	}
	// Existing directory is fine; MkdirAll is idempotent.
	if err := (&MkdirOp{Path: tempDir}).Validate(context.Background(), false); err != nil {
		t.Errorf("existing directory should validate: %v", err)
	}
}

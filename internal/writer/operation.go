// Package writer materializes a Project Plan on disk. It follows a
// validate-then-execute discipline: every operation is checked before any
// byte is written, and a transaction can roll back partial writes.
package writer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation is a single filesystem action that can be validated before it
// runs.
//
// Validate checks whether the operation would succeed; force skips
// already-exists conflicts. Execute performs it and should only run after
// Validate passed. Description is a short human-readable summary.
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// WriteFileOp creates a file, making parent directories as needed.
type WriteFileOp struct {
	Path    string
	Content []byte
	Mode    fs.FileMode
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	if op.Content == nil {
		return fmt.Errorf("nil content for %s", op.Path)
	}
	if !force {
		if _, err := os.Stat(op.Path); err == nil {
			return fmt.Errorf("file already exists: %s", op.Path)
		}
	}
	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(op.Path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("create %s (%d bytes)", op.Path, len(op.Content))
}

// MkdirOp creates a directory and any missing parents. Used for directories
// a plan marks as kept even when empty.
type MkdirOp struct {
	Path string
}

func (op *MkdirOp) Validate(ctx context.Context, force bool) error {
	if op.Path == "" {
		return fmt.Errorf("empty directory path")
	}
	if info, err := os.Stat(op.Path); err == nil && !info.IsDir() {
		return fmt.Errorf("%s exists and is not a directory", op.Path)
	}
	return nil
}

func (op *MkdirOp) Execute(ctx context.Context) error {
	return os.MkdirAll(op.Path, 0o755)
}

func (op *MkdirOp) Description() string {
	return fmt.Sprintf("create %s/", op.Path)
}

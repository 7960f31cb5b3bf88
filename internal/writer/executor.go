package writer

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Options configures Execute.
type Options struct {
	DryRun bool
	Force  bool
	Out    io.Writer // defaults to os.Stdout
}

// Validate checks every operation without executing any. Callers that
// execute through a Transaction use this for the up-front conflict check.
func Validate(ctx context.Context, ops []Operation, force bool) error {
	for _, op := range ops {
		if err := op.Validate(ctx, force); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}
	return nil
}

// Execute validates every operation, then runs them in order. With DryRun
// it only reports what would happen. Validation failures abort before any
// operation executes, so a bad plan never leaves partial state.
func Execute(ctx context.Context, ops []Operation, opts Options) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if err := Validate(ctx, ops, opts.Force); err != nil {
		return err
	}

	for _, op := range ops {
		if opts.DryRun {
			fmt.Fprintf(opts.Out, "[dry run] %s\n", op.Description())
			continue
		}
		if err := op.Execute(ctx); err != nil {
			return fmt.Errorf("%s: %w", op.Description(), err)
		}
	}
	return nil
}

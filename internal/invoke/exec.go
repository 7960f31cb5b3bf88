// Package invoke runs the external tools a scaffold needs: package
// managers, git, and docker. The core never calls this package; failures
// here can leave partial state and are surfaced as-is to the caller.
package invoke

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Executor runs external commands.
type Executor struct {
	stdout io.Writer
	stderr io.Writer
	dir    string
	env    []string

	// commandFunc is swapped out in tests.
	commandFunc func(name string, args ...string) *exec.Cmd
}

// Options configures an Executor.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Dir    string   // working directory
	Env    []string // extra environment variables
}

// NewExecutor creates an executor. A nil opts uses stdout/stderr and the
// current directory.
func NewExecutor(opts *Options) *Executor {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &Executor{
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
		dir:         opts.Dir,
		env:         opts.Env,
		commandFunc: exec.Command,
	}
}

// Run executes a command, streaming its output. The context cancels the
// process.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	cmd := e.commandFunc(name, args...)
	if e.dir != "" {
		cmd.Dir = e.dir
	}
	if len(e.env) > 0 {
		cmd.Env = append(os.Environ(), e.env...)
	}
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%s not found; install it and make sure it is on your PATH", name)
		}
		return fmt.Errorf("starting %s: %w", name, err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			cmd.Process.Kill()
		}
		return fmt.Errorf("%s cancelled: %w", name, ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%s failed: %w", name, err)
		}
		return nil
	}
}

// RunWithSpinner runs a command behind a progress spinner, discarding its
// output. Meant for long package-manager installs where streaming output
// is noise.
func (e *Executor) RunWithSpinner(ctx context.Context, message, name string, args ...string) error {
	quiet := &Executor{
		stdout:      io.Discard,
		stderr:      io.Discard,
		dir:         e.dir,
		env:         e.env,
		commandFunc: e.commandFunc,
	}

	done := make(chan error, 1)
	go func() { done <- quiet.Run(ctx, name, args...) }()

	m := newSpinnerModel(message)
	p := tea.NewProgram(m, tea.WithOutput(e.stderr))
	go func() {
		_, _ = p.Run()
	}()

	err := <-done
	p.Send(spinnerDoneMsg{err: err})
	time.Sleep(50 * time.Millisecond) // let the final frame render
	p.Quit()
	return err
}

// Installed reports whether a tool is on PATH. The resolver uses this as
// its capability probe for Python package-manager detection.
func Installed(tool string) bool {
	_, err := exec.LookPath(command(tool))
	return err == nil
}

// command adds the Windows launcher suffix for the JS package managers,
// which install as .cmd shims there.
func command(tool string) string {
	if runtime.GOOS == "windows" {
		switch tool {
		case "npm", "npx", "yarn", "pnpm":
			return tool + ".cmd"
		}
	}
	return tool
}

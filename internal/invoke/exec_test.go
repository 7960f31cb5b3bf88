package invoke

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCommand reroutes execution to TestHelperProcess in this binary.
func mockCommand(name string, args ...string) *exec.Cmd {
	cs := []string{"-test.run=TestHelperProcess", "--", name}
	cs = append(cs, args...)
	cmd := exec.Command(os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

// TestHelperProcess is the mock command body; it only runs when exec'd by
// mockCommand.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "no command specified")
		os.Exit(1)
	}

	switch args[0] {
	case "echo":
		fmt.Println(strings.Join(args[1:], " "))
		os.Exit(0)
	case "sleep":
		time.Sleep(10 * time.Second)
		os.Exit(0)
	case "fail":
		fmt.Fprintln(os.Stderr, "error occurred")
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		os.Exit(1)
	}
}

func TestRunStreamsOutput(t *testing.T) {
	var out bytes.Buffer
	e := NewExecutor(&Options{Stdout: &out, Stderr: &out})
	e.commandFunc = mockCommand

	err := e.Run(context.Background(), "echo", "hello", "world")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out.String())
}

func TestRunReportsFailure(t *testing.T) {
	var out bytes.Buffer
	e := NewExecutor(&Options{Stdout: &out, Stderr: &out})
	e.commandFunc = mockCommand

	err := e.Run(context.Background(), "fail")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fail failed")
}

func TestRunCancelled(t *testing.T) {
	e := NewExecutor(&Options{Stdout: new(bytes.Buffer), Stderr: new(bytes.Buffer)})
	e.commandFunc = mockCommand

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := e.Run(ctx, "sleep")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunNotFound(t *testing.T) {
	e := NewExecutor(nil)

	err := e.Run(context.Background(), "definitely-not-a-real-tool-xyz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestNewExecutorDefaults(t *testing.T) {
	e := NewExecutor(nil)
	require.NotNil(t, e)
	assert.Equal(t, os.Stdout, e.stdout)
	assert.Equal(t, os.Stderr, e.stderr)
	assert.Empty(t, e.dir)
}

// Package output provides styled terminal output for the CLI.
//
// All user-facing messages go through this package so the tool speaks with
// one voice. Styling is done with lipgloss but callers never see it.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
	writer      io.Writer = os.Stdout
)

// SetVerbose enables or disables verbose output.
// Called by the CLI when --verbose is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// SetWriter redirects all output, used by tests.
func SetWriter(w io.Writer) {
	writer = w
}

// Success prints a completed-operation message in green.
//
// Example:
//
//	output.Success("Created project: my-app")
func Success(msg string) {
	fmt.Fprintln(writer, successStyle.Render("✅ "+msg))
}

// Error prints a failure message in red.
func Error(msg string) {
	fmt.Fprintln(writer, errorStyle.Render("❌ "+msg))
}

// Warn prints a warning in yellow for conditions that don't abort the run.
func Warn(msg string) {
	fmt.Fprintln(writer, warnStyle.Render("⚠️  "+msg))
}

// Info prints a status update or explanation in cyan.
func Info(msg string) {
	fmt.Fprintln(writer, infoStyle.Render("ℹ️  "+msg))
}

// Step prints an indented actionable step in gray.
//
// Example:
//
//	output.Step("cd my-app")
//	output.Step("npm run dev")
func Step(msg string) {
	fmt.Fprintln(writer, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message only when verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(writer, stepStyle.Render("🔍 "+msg))
	}
}

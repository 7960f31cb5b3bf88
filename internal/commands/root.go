package commands

import (
	creator "github.com/harkoussomar/enhanced-project-creator"
	"github.com/harkoussomar/enhanced-project-creator/internal/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the epc CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "epc",
		Short: "Scaffold full-stack, backend, or frontend projects",
		Long: `epc generates ready-to-run project skeletons from a catalog of
frameworks, databases, and tooling.

Pick a backend (Express, NestJS, FastAPI, Django, Flask), a frontend
(React, Vue, Svelte, Angular), a database, and epc wires them together:
• Directory skeletons and boilerplate per framework
• Manifests with pinned dependency versions
• Optional TypeScript, Docker, and git initialization

Example:
  epc new my-app --backend fastapi --frontend react --database postgresql`,
		Version: creator.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}

package main

import (
	"os"

	"github.com/harkoussomar/enhanced-project-creator/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.NewCmd())
	rootCmd.AddCommand(commands.PlanCmd())
	rootCmd.AddCommand(commands.OptionsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

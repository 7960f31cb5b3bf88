package commands

import (
	"fmt"
	"strings"

	"github.com/harkoussomar/enhanced-project-creator/internal/catalog"
	"github.com/harkoussomar/enhanced-project-creator/internal/output"
	"github.com/spf13/cobra"
)

// OptionsCmd creates and returns the 'options' command: list what the
// catalog offers, filtered by choices already made.
func OptionsCmd() *cobra.Command {
	var (
		backend  string
		frontend string
		database string
		pm       string
	)

	cmd := &cobra.Command{
		Use:   "options [category]",
		Short: "List available catalog options",
		Long: `Lists the options the catalog offers per category. With choices given
as flags, only options compatible with those choices appear.

Examples:
  epc options
  epc options state-mgmt --frontend vue
  epc options package-manager --backend django`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()

			chosen := make(map[catalog.Category]string)
			set := func(c catalog.Category, v string) {
				if v != "" {
					chosen[c] = v
				}
			}
			set(catalog.BackendFramework, backend)
			set(catalog.FrontendFramework, frontend)
			set(catalog.Database, database)
			set(catalog.PackageManager, pm)

			cats := catalog.Categories
			if len(args) == 1 {
				c := catalog.Category(args[0])
				if !validCategory(c) {
					return fmt.Errorf("unknown category %q (one of: %s)", args[0], categoryList())
				}
				cats = []catalog.Category{c}
			}

			for _, c := range cats {
				opts := cat.OptionsFor(c, chosen)
				if len(opts) == 0 {
					continue
				}
				output.Info(string(c))
				output.Step(strings.Join(opts, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&backend, "backend", "", "Filter by backend framework")
	cmd.Flags().StringVar(&frontend, "frontend", "", "Filter by frontend framework")
	cmd.Flags().StringVar(&database, "database", "", "Filter by database")
	cmd.Flags().StringVar(&pm, "pm", "", "Filter by package manager")

	return cmd
}

func validCategory(c catalog.Category) bool {
	for _, known := range catalog.Categories {
		if c == known {
			return true
		}
	}
	return false
}

func categoryList() string {
	names := make([]string, len(catalog.Categories))
	for i, c := range catalog.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

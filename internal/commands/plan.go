package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ddddddO/gtree"
	"github.com/harkoussomar/enhanced-project-creator/internal/catalog"
	"github.com/harkoussomar/enhanced-project-creator/internal/compose"
	"github.com/harkoussomar/enhanced-project-creator/internal/invoke"
	"github.com/harkoussomar/enhanced-project-creator/internal/output"
	"github.com/harkoussomar/enhanced-project-creator/internal/resolve"
	"github.com/spf13/cobra"
)

// PlanCmd creates and returns the 'plan' command: resolve and compose
// without touching disk, then print the resulting tree.
func PlanCmd() *cobra.Command {
	var (
		projectType string
		backend     string
		frontend    string
		language    string
		database    string
		css         string
		state       string
		pm          string
		typescript  bool
		docker      bool
		deps        []string
	)

	cmd := &cobra.Command{
		Use:   "plan [project-name]",
		Short: "Preview the files a selection would generate",
		Long: `Resolves a selection exactly like 'new' and prints the directory tree
it would create, without writing anything.

Example:
  epc plan my-app --backend fastapi --database mongodb`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			raw := resolve.RawAnswers{
				ProjectName:     name,
				ProjectType:     projectType,
				BackendLanguage: language,
				TypeScript:      typescript,
				Categories:      categories(backend, frontend, database, css, state, pm),
				CustomDeps:      deps,
				Docker:          docker,
			}

			cat := catalog.Default()
			sel, err := resolve.NewResolver(cat, invoke.Installed).Resolve(raw)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			plan, err := compose.NewComposer(cat).Compose(sel)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			printSelection(sel)
			return printPlanTree(cmd, plan)
		},
	}

	cmd.Flags().StringVarP(&projectType, "type", "t", "", "Project type: fullstack, backend-only, frontend-only")
	cmd.Flags().StringVar(&backend, "backend", "", "Backend framework")
	cmd.Flags().StringVar(&frontend, "frontend", "", "Frontend framework")
	cmd.Flags().StringVar(&language, "language", "", "Backend language")
	cmd.Flags().StringVar(&database, "database", "", "Database")
	cmd.Flags().StringVar(&css, "css", "", "Styling")
	cmd.Flags().StringVar(&state, "state", "", "State management")
	cmd.Flags().StringVar(&pm, "pm", "", "Package manager")
	cmd.Flags().BoolVar(&typescript, "typescript", false, "Use TypeScript for the client tier")
	cmd.Flags().BoolVar(&docker, "docker", false, "Include Docker config in the plan")
	cmd.Flags().StringSliceVar(&deps, "deps", nil, "Extra dependencies, name or name@constraint")

	return cmd
}

func printSelection(sel *resolve.Selection) {
	output.Info(fmt.Sprintf("%s (%s)", sel.ProjectName(), sel.Type()))
	for _, cat := range catalog.Categories {
		if v := sel.Option(cat); v != "" {
			output.Step(fmt.Sprintf("%s: %s", cat, v))
		}
	}
}

// printPlanTree renders the plan's paths as a tree. Files and directories
// merge into one sorted listing so siblings appear together.
func printPlanTree(cmd *cobra.Command, plan *compose.Plan) error {
	paths := make([]string, 0, len(plan.Dirs())+len(plan.Files()))
	for _, d := range plan.Dirs() {
		paths = append(paths, d.Path)
	}
	for _, f := range plan.Files() {
		paths = append(paths, f.Path)
	}
	sort.Strings(paths)

	root := gtree.NewRoot(plan.ProjectName)
	nodes := map[string]*gtree.Node{"": root}
	for _, p := range paths {
		parent := root
		if i := strings.LastIndex(p, "/"); i >= 0 {
			parent = nodes[p[:i]]
		}
		if _, ok := nodes[p]; ok {
			continue
		}
		nodes[p] = parent.Add(p[strings.LastIndex(p, "/")+1:])
	}

	return gtree.OutputProgrammably(cmd.OutOrStdout(), root)
}

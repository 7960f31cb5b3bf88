package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/harkoussomar/enhanced-project-creator/internal/catalog"
	"github.com/harkoussomar/enhanced-project-creator/internal/config"
	"github.com/harkoussomar/enhanced-project-creator/internal/invoke"
	"github.com/harkoussomar/enhanced-project-creator/internal/output"
	"github.com/harkoussomar/enhanced-project-creator/internal/project"
	"github.com/harkoussomar/enhanced-project-creator/internal/resolve"
	"github.com/spf13/cobra"
)

// NewCmd creates and returns the 'new' command for scaffolding projects
func NewCmd() *cobra.Command {
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
		gitInit     bool
		docker      bool
		deps        []string
		dryRun      bool
		force       bool
		skipInstall bool
	)

	cat := catalog.Default()

	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Create a new project",
		Long: `Creates a new project from your selections. Unspecified choices fall
back to catalog defaults (Express or FastAPI backend, React frontend) or
to your epc.yml config.

Examples:
  epc new my-app
  epc new my-api --type backend-only --backend django --database postgresql
  epc new my-site --type frontend-only --frontend svelte --typescript`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			defaults, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			applyConfigDefaults(cmd, defaults, &projectType, &backend, &frontend,
				&language, &database, &pm, &typescript, &gitInit, &docker)

			raw := resolve.RawAnswers{
				ProjectName:     name,
				ProjectType:     projectType,
				BackendLanguage: language,
				TypeScript:      typescript,
				Categories:      categories(backend, frontend, database, css, state, pm),
				CustomDeps:      deps,
				GitInit:         gitInit,
				Docker:          docker,
			}

			sel, err := resolve.NewResolver(cat, invoke.Installed).Resolve(raw)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Verbose(fmt.Sprintf("resolved selection: %v", sel.Options()))

			scaffolder := project.NewScaffolder(cat)
			opts := project.Options{DryRun: dryRun, Force: force, SkipInstall: skipInstall}
			if err := scaffolder.Scaffold(cmd.Context(), sel, opts); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			if dryRun {
				return nil
			}

			output.Success(fmt.Sprintf("Created project: %s", sel.ProjectName()))
			output.Info("Next steps:")
			output.Step(fmt.Sprintf("cd %s", sel.ProjectName()))
			printRunHints(sel)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectType, "type", "t", "", "Project type: fullstack, backend-only, frontend-only")
	cmd.Flags().StringVar(&backend, "backend", "", "Backend framework: "+optionUsage(cat, catalog.BackendFramework, false))
	cmd.Flags().StringVar(&frontend, "frontend", "", "Frontend framework: "+optionUsage(cat, catalog.FrontendFramework, false))
	cmd.Flags().StringVar(&language, "language", "", "Backend language: javascript, typescript, python")
	cmd.Flags().StringVar(&database, "database", "", "Database: "+optionUsage(cat, catalog.Database, true))
	cmd.Flags().StringVar(&css, "css", "", "Styling: "+optionUsage(cat, catalog.CSS, true))
	cmd.Flags().StringVar(&state, "state", "", "State management: "+optionUsage(cat, catalog.StateMgmt, true))
	cmd.Flags().StringVar(&pm, "pm", "", "Package manager: "+optionUsage(cat, catalog.PackageManager, false))
	cmd.Flags().BoolVar(&typescript, "typescript", false, "Use TypeScript for the client tier")
	cmd.Flags().BoolVar(&gitInit, "git", true, "Initialize a git repository")
	cmd.Flags().BoolVar(&docker, "docker", false, "Generate Docker config and build the image")
	cmd.Flags().StringSliceVar(&deps, "deps", nil, "Extra dependencies, name or name@constraint")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print planned files without writing them")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing project directory")
	cmd.Flags().BoolVar(&skipInstall, "skip-install", false, "Skip running the package manager")

	return cmd
}

// optionUsage lists a category's registered options for flag help, so the
// help text always matches what the resolver accepts.
func optionUsage(cat *catalog.Catalog, category catalog.Category, optional bool) string {
	names := cat.OptionsFor(category, nil)
	if optional {
		names = append(names, catalog.None)
	}
	return strings.Join(names, ", ")
}

// categories collects the per-category flags, dropping empties so the
// resolver sees only what the user actually chose.
func categories(backend, frontend, database, css, state, pm string) map[catalog.Category]string {
	m := make(map[catalog.Category]string)
	set := func(cat catalog.Category, v string) {
		if v != "" {
			m[cat] = v
		}
	}
	set(catalog.BackendFramework, backend)
	set(catalog.FrontendFramework, frontend)
	set(catalog.Database, database)
	set(catalog.CSS, css)
	set(catalog.StateMgmt, state)
	set(catalog.PackageManager, pm)
	return m
}

// applyConfigDefaults fills flags the user did not set from epc.yml.
func applyConfigDefaults(cmd *cobra.Command, d *config.Defaults,
	projectType, backend, frontend, language, database, pm *string,
	typescript, gitInit, docker *bool) {
	fill := func(flag string, dst *string, val string) {
		if !cmd.Flags().Changed(flag) && *dst == "" {
			*dst = val
		}
	}
	fill("type", projectType, d.ProjectType)
	fill("backend", backend, d.Backend)
	fill("frontend", frontend, d.Frontend)
	fill("language", language, d.Language)
	fill("database", database, d.Database)
	fill("pm", pm, d.PackageManager)
	if !cmd.Flags().Changed("typescript") {
		*typescript = d.TypeScript
	}
	if !cmd.Flags().Changed("git") {
		*gitInit = d.GitInit
	}
	if !cmd.Flags().Changed("docker") {
		*docker = d.Docker
	}
}

func printRunHints(sel *resolve.Selection) {
	if sel.HasServer() {
		switch sel.Option(catalog.BackendFramework) {
		case "express", "nest":
			output.Step(fmt.Sprintf("cd server && %s run dev", sel.Option(catalog.PackageManager)))
		case "fastapi":
			output.Step("cd server && uvicorn app.main:app --reload")
		case "django":
			output.Step("cd server && python manage.py runserver")
		case "flask":
			output.Step("cd server && flask run")
		}
	}
	if sel.HasClient() {
		if sel.Option(catalog.FrontendFramework) == "angular" {
			output.Step("cd client && ng serve")
		} else {
			output.Step(fmt.Sprintf("cd client && %s run dev", sel.ClientPM()))
		}
	}
}

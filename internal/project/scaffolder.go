package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harkoussomar/enhanced-project-creator/internal/catalog"
	"github.com/harkoussomar/enhanced-project-creator/internal/compose"
	"github.com/harkoussomar/enhanced-project-creator/internal/invoke"
	"github.com/harkoussomar/enhanced-project-creator/internal/output"
	"github.com/harkoussomar/enhanced-project-creator/internal/render"
	"github.com/harkoussomar/enhanced-project-creator/internal/resolve"
	"github.com/harkoussomar/enhanced-project-creator/internal/writer"
)

// Options control a scaffold run.
type Options struct {
	DryRun      bool
	Force       bool
	SkipInstall bool
	Root        string // parent directory for the project; defaults to "."
}

// Scaffolder turns a resolved selection into a project on disk: compose
// the plan, render its fragments, write everything, then run the
// post-generation tools (package manager, git, docker).
type Scaffolder struct {
	cat      *catalog.Catalog
	renderer *render.Renderer
}

// NewScaffolder creates a scaffolder over a catalog.
func NewScaffolder(cat *catalog.Catalog) *Scaffolder {
	return &Scaffolder{
		cat:      cat,
		renderer: render.New(),
	}
}

// Scaffold generates the project described by sel.
func (s *Scaffolder) Scaffold(ctx context.Context, sel *resolve.Selection, opts Options) error {
	plan, err := compose.NewComposer(s.cat).Compose(sel)
	if err != nil {
		return err
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	projectDir := filepath.Join(root, sel.ProjectName())

	if !opts.Force && !opts.DryRun {
		if _, err := os.Stat(projectDir); err == nil {
			return fmt.Errorf("directory %s already exists (use --force to overwrite)", projectDir)
		}
	}

	ops, err := s.operations(plan, projectDir)
	if err != nil {
		return err
	}

	output.Verbose(fmt.Sprintf("writing %d files into %s", len(plan.Files()), projectDir))
	if opts.DryRun {
		return writer.Execute(ctx, ops, writer.Options{DryRun: true, Force: opts.Force})
	}
	if err := s.materialize(ctx, ops, opts.Force); err != nil {
		return err
	}

	return s.postGenerate(ctx, sel, projectDir, opts)
}

// materialize validates every operation, creates the directories, then
// commits all file writes in one transaction so a failed scaffold leaves
// no half-written project.
func (s *Scaffolder) materialize(ctx context.Context, ops []writer.Operation, force bool) error {
	if err := writer.Validate(ctx, ops, force); err != nil {
		return err
	}

	tx := writer.NewTransaction()
	for _, op := range ops {
		switch op := op.(type) {
		case *writer.MkdirOp:
			if err := op.Execute(ctx); err != nil {
				return err
			}
		case *writer.WriteFileOp:
			tx.Stage(op.Path, op.Content, op.Mode)
		}
	}
	return tx.Commit()
}

// operations renders the plan into writer operations: explicit mkdirs so
// empty skeleton directories materialize, then one write per file.
func (s *Scaffolder) operations(plan *compose.Plan, projectDir string) ([]writer.Operation, error) {
	var ops []writer.Operation
	ops = append(ops, &writer.MkdirOp{Path: projectDir})
	for _, d := range plan.Dirs() {
		ops = append(ops, &writer.MkdirOp{Path: filepath.Join(projectDir, d.Path)})
	}

	for _, f := range plan.Files() {
		content := f.Content
		if content == nil {
			body, err := s.cat.Fragment(f.Fragment)
			if err != nil {
				return nil, err
			}
			content, err = s.renderer.Render(f.Fragment, body, f.Context)
			if err != nil {
				return nil, fmt.Errorf("rendering %s: %w", f.Path, err)
			}
		}
		ops = append(ops, &writer.WriteFileOp{
			Path:    filepath.Join(projectDir, f.Path),
			Content: content,
			Mode:    0644,
		})
	}
	return ops, nil
}

func (s *Scaffolder) postGenerate(ctx context.Context, sel *resolve.Selection, projectDir string, opts Options) error {
	if !opts.SkipInstall {
		if err := s.install(ctx, sel, projectDir); err != nil {
			return err
		}
	}

	if sel.GitInit() {
		if err := invoke.GitInit(ctx, projectDir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		output.Success("Initialized git repository")
	}

	if sel.Docker() {
		if !invoke.Installed("docker") {
			output.Warn("docker not found, skipping image build")
			return nil
		}
		tag := render.Snake(sel.ProjectName())
		if err := invoke.DockerBuild(ctx, projectDir, tag); err != nil {
			return fmt.Errorf("docker build: %w", err)
		}
		output.Success(fmt.Sprintf("Built Docker image %s", tag))
	}

	return nil
}

// install runs the package manager in each tier that has a manifest.
func (s *Scaffolder) install(ctx context.Context, sel *resolve.Selection, projectDir string) error {
	if sel.HasServer() {
		manager := sel.Option(catalog.PackageManager)
		if err := invoke.InstallTier(ctx, filepath.Join(projectDir, "server"), manager); err != nil {
			return fmt.Errorf("installing server dependencies: %w", err)
		}
	}
	if sel.HasClient() {
		if err := invoke.InstallTier(ctx, filepath.Join(projectDir, "client"), sel.ClientPM()); err != nil {
			return fmt.Errorf("installing client dependencies: %w", err)
		}
	}
	return nil
}

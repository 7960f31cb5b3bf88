// Package compose expands a resolved Selection into a Project Plan: an
// ordered in-memory tree of directories and files, each file carrying a
// template fragment id and substitution context (or pre-synthesized bytes
// for manifests). Composition is pure and deterministic; nothing here
// touches the filesystem.
package compose

import (
	"fmt"
	"path"

	"github.com/harkoussomar/enhanced-project-creator/internal/catalog"
)

// DirNode is a directory in the plan. Keep marks directories that must be
// materialized even when no file lands inside them (e.g. public/,
// assets/images/).
type DirNode struct {
	Path string
	Keep bool
}

// FileNode is a file in the plan. Either Fragment names a template to
// render with Context, or Content carries synthesized bytes (manifests,
// docker-compose); never both.
type FileNode struct {
	Path     string
	Fragment string
	Context  map[string]any
	Content  []byte
}

// Plan is the composer's output: directories ordered parents-first, files
// with unique paths. Consumers (renderer, writer) only read it.
type Plan struct {
	ProjectName string

	dirs  []DirNode
	files []FileNode
	paths map[string]struct{}
}

// NewPlan creates an empty plan for a project.
func NewPlan(projectName string) *Plan {
	return &Plan{
		ProjectName: projectName,
		paths:       make(map[string]struct{}),
	}
}

// AddDir records a directory, inserting missing parents first. Re-adding an
// existing directory only upgrades its Keep flag.
func (p *Plan) AddDir(dirPath string, keep bool) {
	if dirPath == "" || dirPath == "." {
		return
	}
	if parent := path.Dir(dirPath); parent != "." {
		p.AddDir(parent, false)
	}
	for i := range p.dirs {
		if p.dirs[i].Path == dirPath {
			p.dirs[i].Keep = p.dirs[i].Keep || keep
			return
		}
	}
	p.dirs = append(p.dirs, DirNode{Path: dirPath, Keep: keep})
}

// AddFile records a file, inserting its parent directories first. Duplicate
// paths are a composition bug and rejected outright.
func (p *Plan) AddFile(f FileNode) error {
	if _, dup := p.paths[f.Path]; dup {
		return fmt.Errorf("duplicate path in plan: %s", f.Path)
	}
	if parent := path.Dir(f.Path); parent != "." {
		p.AddDir(parent, false)
	}
	p.paths[f.Path] = struct{}{}
	p.files = append(p.files, f)
	return nil
}

// Dirs returns the directory nodes, parents before children.
func (p *Plan) Dirs() []DirNode { return p.dirs }

// Files returns the file nodes in composition order.
func (p *Plan) Files() []FileNode { return p.files }

// DependencyConflictError reports two dependency specs with the same name
// but different version constraints landing in one manifest.
type DependencyConflictError struct {
	Name string
	A, B catalog.Dependency
}

func (e *DependencyConflictError) Error() string {
	return fmt.Sprintf("dependency conflict for %q: constraint %q vs %q",
		e.Name, e.A.Constraint, e.B.Constraint)
}

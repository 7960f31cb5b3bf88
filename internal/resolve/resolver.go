// Package resolve turns a sparse set of user answers into a fully-resolved,
// internally-consistent Selection, or rejects it with an error naming the
// offending options.
package resolve

import (
	"fmt"
	"strings"

	"github.com/harkoussomar/enhanced-project-creator/internal/catalog"
	"github.com/harkoussomar/enhanced-project-creator/internal/output"
)

// maxIterations caps requirement fixed-point resolution. Real catalogs
// converge in one or two passes; the cap bounds mis-authored ones.
const maxIterations = 10

// CapabilityProbe reports whether an external tool is installed. The
// resolver uses it to pick a Python package manager; it never runs the tool.
type CapabilityProbe func(tool string) bool

// pythonManagers is the deterministic detection precedence.
var pythonManagers = []string{"poetry", "conda"}

// jsManagers are the package managers that can install the client tier.
var jsManagers = map[string]bool{"npm": true, "yarn": true, "pnpm": true}

// Resolver validates raw answers against the catalog and fills defaults.
type Resolver struct {
	cat   *catalog.Catalog
	probe CapabilityProbe
}

// NewResolver creates a resolver. probe may be nil, in which case no Python
// manager is ever detected and pip is the fallback.
func NewResolver(cat *catalog.Catalog, probe CapabilityProbe) *Resolver {
	if probe == nil {
		probe = func(string) bool { return false }
	}
	return &Resolver{cat: cat, probe: probe}
}

// Resolve produces an immutable Selection from raw answers. No side effects;
// all catalog and compatibility violations are reported before anything
// touches the filesystem.
func (r *Resolver) Resolve(raw RawAnswers) (*Selection, error) {
	sel := &Selection{
		projectName:      strings.TrimSpace(raw.ProjectName),
		clientTypeScript: raw.TypeScript,
		gitInit:          raw.GitInit,
		docker:           raw.Docker,
		options:          make(map[catalog.Category]string),
	}
	if sel.projectName == "" {
		sel.projectName = "my-app"
	}

	var err error
	if sel.projectType, err = parseProjectType(raw.ProjectType); err != nil {
		return nil, err
	}
	if sel.backendLanguage, err = parseBackendLanguage(raw.BackendLanguage, sel.projectType); err != nil {
		return nil, err
	}
	if sel.backendLanguage == catalog.TypeScript && sel.projectType == FullStack {
		// A TypeScript backend implies a TypeScript client.
		sel.clientTypeScript = true
	}

	// Validate user-specified options and note which categories the user
	// pinned: requirement resolution may override defaults, never pins.
	userSet := make(map[catalog.Category]bool)
	for cat, opt := range raw.Categories {
		opt = strings.ToLower(strings.TrimSpace(opt))
		if opt == "" {
			continue
		}
		if err := r.validateChoice(cat, opt, sel); err != nil {
			return nil, err
		}
		sel.options[cat] = opt
		userSet[cat] = true
	}

	r.applyDefaults(sel)

	if err := r.fixpoint(sel, userSet); err != nil {
		return nil, err
	}

	sel.clientPM = clientManager(sel)

	if sel.customDeps, err = parseCustomDeps(raw.CustomDeps, sel); err != nil {
		return nil, err
	}

	return sel, nil
}

func parseProjectType(s string) (ProjectType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fullstack", "full-stack":
		return FullStack, nil
	case "backend-only", "backend":
		return BackendOnly, nil
	case "frontend-only", "frontend":
		return FrontendOnly, nil
	default:
		return "", fmt.Errorf("unknown project type %q (want fullstack, backend-only, or frontend-only)", s)
	}
}

func parseBackendLanguage(s string, pt ProjectType) (catalog.Language, error) {
	if pt == FrontendOnly {
		if s != "" {
			return "", fmt.Errorf("backend language %q has no place in a frontend-only project", s)
		}
		return "", nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "javascript", "js":
		return catalog.JavaScript, nil
	case "typescript", "ts":
		return catalog.TypeScript, nil
	case "python", "py":
		return catalog.Python, nil
	default:
		return "", fmt.Errorf("unknown backend language %q (want javascript, typescript, or python)", s)
	}
}

// validateChoice checks a single user answer: the option must exist, belong
// to the category it was given for, and the category must apply to the
// project type.
func (r *Resolver) validateChoice(cat catalog.Category, opt string, sel *Selection) error {
	switch cat {
	case catalog.BackendFramework, catalog.Database:
		if !sel.HasServer() {
			return fmt.Errorf("%s %q has no place in a %s project", cat, opt, sel.projectType)
		}
	case catalog.FrontendFramework, catalog.CSS, catalog.StateMgmt:
		if !sel.HasClient() {
			return fmt.Errorf("%s %q has no place in a %s project", cat, opt, sel.projectType)
		}
	}
	if opt == catalog.None {
		return nil
	}
	info, err := r.cat.Option(opt)
	if err != nil {
		return err
	}
	if info.Category != cat {
		return fmt.Errorf("option %q belongs to category %q, not %q", opt, info.Category, cat)
	}
	return nil
}

// applyDefaults fills every applicable category the user left unspecified.
func (r *Resolver) applyDefaults(sel *Selection) {
	def := func(cat catalog.Category, value string) {
		if sel.options[cat] == "" {
			sel.options[cat] = value
			output.Verbose(fmt.Sprintf("defaulting %s to %q", cat, value))
		}
	}

	if sel.HasServer() {
		if sel.backendLanguage == catalog.Python {
			def(catalog.BackendFramework, "fastapi")
		} else {
			def(catalog.BackendFramework, "express")
		}
		def(catalog.Database, catalog.None)
	}
	if sel.HasClient() {
		def(catalog.FrontendFramework, "react")
		def(catalog.CSS, catalog.None)
		def(catalog.StateMgmt, catalog.None)
	}

	if sel.options[catalog.PackageManager] == "" {
		if sel.HasServer() && sel.backendLanguage == catalog.Python {
			sel.options[catalog.PackageManager] = r.detectPythonManager()
		} else {
			sel.options[catalog.PackageManager] = "npm"
		}
		output.Verbose(fmt.Sprintf("defaulting package-manager to %q", sel.options[catalog.PackageManager]))
	}
}

// detectPythonManager probes installed tools in a fixed precedence order and
// falls back to pip.
func (r *Resolver) detectPythonManager() string {
	for _, pm := range pythonManagers {
		if r.probe(pm) {
			return pm
		}
	}
	return "pip"
}

// fixpoint re-checks pairwise compatibility until no auto-selection changes
// the selection, capped at maxIterations. autoBy records which option's
// requirement filled each category: once filled, the value is as firm as a
// user pin, so two options pulling one category in different directions
// surface as an incompatibility naming both instead of looping to the cap.
func (r *Resolver) fixpoint(sel *Selection, userSet map[catalog.Category]bool) error {
	autoBy := make(map[catalog.Category]string)
	for i := 0; i < maxIterations; i++ {
		changed, err := r.checkOnce(sel, userSet, autoBy)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
	}
	return &ResolutionCycleError{Iterations: maxIterations}
}

func (r *Resolver) checkOnce(sel *Selection, userSet map[catalog.Category]bool, autoBy map[catalog.Category]string) (bool, error) {
	changed := false
	for _, cat := range catalog.Categories {
		opt := sel.options[cat]
		if opt == "" || opt == catalog.None {
			continue
		}
		peers, err := r.cat.Peers(opt)
		if err != nil {
			return false, err
		}

		required := make(map[catalog.Category][]string)
		for _, p := range peers {
			switch p.Relation {
			case catalog.Excludes:
				if sel.options[p.Category] == p.Option {
					return false, &IncompatibleSelectionError{Option: opt, Peer: p.Option}
				}
			case catalog.Requires:
				required[p.Category] = append(required[p.Category], p.Option)
			}
		}

		for _, rcat := range catalog.Categories {
			choices, ok := required[rcat]
			if !ok {
				continue
			}
			current := sel.options[rcat]
			if contains(choices, current) {
				continue
			}
			if current != "" && current != catalog.None {
				if userSet[rcat] {
					// The user pinned a value the requirement cannot accept.
					return false, &IncompatibleSelectionError{Option: opt, Peer: current}
				}
				if by, ok := autoBy[rcat]; ok && by != opt {
					// Another option's requirement already claimed this
					// category; the two options cannot coexist.
					return false, &IncompatibleSelectionError{Option: opt, Peer: by}
				}
			}
			if len(choices) == 1 {
				sel.options[rcat] = choices[0]
				autoBy[rcat] = opt
				output.Verbose(fmt.Sprintf("%q requires %s %q, selecting it", opt, rcat, choices[0]))
				changed = true
				continue
			}
			return false, &AmbiguousRequirementError{Option: opt, Category: rcat, Choices: choices}
		}
	}
	return changed, nil
}

// clientManager picks the JS package manager for the client tier. When the
// primary manager is a Python one the client falls back to npm.
func clientManager(sel *Selection) string {
	if !sel.HasClient() {
		return ""
	}
	if pm := sel.options[catalog.PackageManager]; jsManagers[pm] {
		return pm
	}
	return "npm"
}

// parseCustomDeps splits "name@constraint" specs. Custom dependencies are
// user-asserted and bypass compatibility checking entirely; they only need
// a well-formed name.
func parseCustomDeps(specs []string, sel *Selection) ([]catalog.Dependency, error) {
	manifest := catalog.ManifestNode
	if sel.HasServer() && sel.backendLanguage == catalog.Python {
		manifest = catalog.ManifestPython
	}

	var deps []catalog.Dependency
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		name, constraint := spec, ""
		// Scoped npm packages start with '@'; split on the last '@'.
		if at := strings.LastIndex(spec, "@"); at > 0 {
			name, constraint = spec[:at], spec[at+1:]
		}
		if name == "" {
			return nil, fmt.Errorf("malformed custom dependency %q", spec)
		}
		deps = append(deps, catalog.Dependency{
			Name:       name,
			Constraint: constraint,
			Manifest:   manifest,
		})
	}
	return deps, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

package compose

import (
	"strings"

	"github.com/harkoussomar/enhanced-project-creator/internal/catalog"
	"github.com/harkoussomar/enhanced-project-creator/internal/resolve"
)

// serverPorts maps each backend framework to the port its boilerplate
// listens on; used for the vite proxy and docker-compose wiring.
var serverPorts = map[string]int{
	"express": 5000,
	"nest":    3000,
	"fastapi": 8000,
	"django":  8000,
	"flask":   5000,
}

// Composer deterministically expands a resolved Selection into a Plan.
type Composer struct {
	cat *catalog.Catalog
}

// NewComposer creates a composer over a catalog.
func NewComposer(cat *catalog.Catalog) *Composer {
	return &Composer{cat: cat}
}

// Compose builds the Project Plan for a selection. Identical selections
// always yield byte-identical plans for a given catalog.
func (c *Composer) Compose(sel *resolve.Selection) (*Plan, error) {
	plan := NewPlan(sel.ProjectName())

	if sel.HasServer() {
		if err := c.composeTier(plan, sel, "server"); err != nil {
			return nil, err
		}
	}
	if sel.HasClient() {
		if err := c.composeTier(plan, sel, "client"); err != nil {
			return nil, err
		}
	}
	if err := c.composeRoot(plan, sel); err != nil {
		return nil, err
	}
	return plan, nil
}

// tierOption returns the framework option and catalog category driving a
// tier's skeleton.
func tierOption(sel *resolve.Selection, tier string) (catalog.Category, string) {
	if tier == "server" {
		return catalog.BackendFramework, sel.Option(catalog.BackendFramework)
	}
	return catalog.FrontendFramework, sel.Option(catalog.FrontendFramework)
}

func tierFacts(sel *resolve.Selection, tier string) catalog.Facts {
	if tier == "server" {
		return sel.ServerFacts()
	}
	return sel.ClientFacts()
}

func (c *Composer) composeTier(plan *Plan, sel *resolve.Selection, tier string) error {
	category, framework := tierOption(sel, tier)
	facts := tierFacts(sel, tier)
	ctx := c.context(sel, facts)

	for _, entry := range c.cat.Skeleton(category, framework) {
		if entry.When != nil && !entry.When(facts) {
			continue
		}
		rel := strings.ReplaceAll(entry.Path, "{{project}}", snake(sel.ProjectName()))
		full := tier + "/" + rel
		if entry.Fragment == "" {
			plan.AddDir(full, entry.Keep)
			continue
		}
		if err := plan.AddFile(FileNode{Path: full, Fragment: entry.Fragment, Context: ctx}); err != nil {
			return err
		}
	}

	return c.composeManifest(plan, sel, tier, facts)
}

// composeManifest aggregates every dependency spec for a tier into one
// ordered, de-duplicated list and synthesizes the manifest file. First
// registration wins on exact duplicates; conflicting constraints abort.
func (c *Composer) composeManifest(plan *Plan, sel *resolve.Selection, tier string, facts catalog.Facts) error {
	_, framework := tierOption(sel, tier)

	var all []catalog.Dependency
	collect := func(option string) error {
		if option == "" || option == catalog.None {
			return nil
		}
		deps, err := c.cat.DependenciesFor(option, facts)
		if err != nil {
			return err
		}
		all = append(all, deps...)
		return nil
	}

	if err := collect(framework); err != nil {
		return err
	}
	if tier == "server" {
		if err := collect(sel.Option(catalog.Database)); err != nil {
			return err
		}
	} else {
		if err := collect(sel.Option(catalog.CSS)); err != nil {
			return err
		}
		if err := collect(sel.Option(catalog.StateMgmt)); err != nil {
			return err
		}
	}

	// Custom dependencies land in the primary tier: server when the project
	// has one, client otherwise. They are user-asserted and merged as-is.
	if tier == "server" || !sel.HasServer() {
		all = append(all, sel.CustomDeps()...)
	}

	deps, err := dedupe(all)
	if err != nil {
		return err
	}

	name, content, err := c.synthesize(sel, tier, facts, deps)
	if err != nil {
		return err
	}
	return plan.AddFile(FileNode{Path: tier + "/" + name, Content: content})
}

// dedupe keeps each dependency name once, first registration winning.
// Same-name specs with different constraints are a conflict, not a choice.
func dedupe(deps []catalog.Dependency) ([]catalog.Dependency, error) {
	seen := make(map[string]catalog.Dependency)
	var out []catalog.Dependency
	for _, d := range deps {
		prev, ok := seen[d.Name]
		if !ok {
			seen[d.Name] = d
			out = append(out, d)
			continue
		}
		if prev.Constraint != d.Constraint {
			return nil, &DependencyConflictError{Name: d.Name, A: prev, B: d}
		}
	}
	return out, nil
}

func (c *Composer) composeRoot(plan *Plan, sel *resolve.Selection) error {
	ctx := c.context(sel, rootFacts(sel))

	if err := plan.AddFile(FileNode{Path: "README.md", Fragment: "readme", Context: ctx}); err != nil {
		return err
	}
	if sel.GitInit() {
		if err := plan.AddFile(FileNode{Path: ".gitignore", Fragment: "gitignore", Context: ctx}); err != nil {
			return err
		}
	}
	if sel.Docker() {
		fragment := "dockerfile_backend"
		switch sel.Type() {
		case resolve.FullStack:
			fragment = "dockerfile_fullstack"
		case resolve.FrontendOnly:
			fragment = "dockerfile_frontend"
		}
		if err := plan.AddFile(FileNode{Path: "Dockerfile", Fragment: fragment, Context: ctx}); err != nil {
			return err
		}
		if db := sel.Option(catalog.Database); db != "" && db != catalog.None {
			content, err := composeFileContent(sel)
			if err != nil {
				return err
			}
			if err := plan.AddFile(FileNode{Path: "docker-compose.yml", Content: content}); err != nil {
				return err
			}
		}
	}
	return nil
}

// rootFacts picks the facts for root-level files: the server tier's when it
// exists, the client's otherwise.
func rootFacts(sel *resolve.Selection) catalog.Facts {
	if sel.HasServer() {
		return sel.ServerFacts()
	}
	return sel.ClientFacts()
}

// context builds the substitution context shared by a tier's file nodes:
// the project name plus every resolved option relevant to the tier.
func (c *Composer) context(sel *resolve.Selection, facts catalog.Facts) map[string]any {
	serverFramework := sel.Option(catalog.BackendFramework)
	serverLanguage := ""
	if sel.HasServer() {
		if sel.BackendLanguage() == catalog.Python {
			serverLanguage = "python"
		} else {
			serverLanguage = "javascript"
		}
	}

	return map[string]any{
		"ProjectName":     sel.ProjectName(),
		"TypeScript":      facts.TypeScript,
		"Database":        orNone(sel.Option(catalog.Database)),
		"Frontend":        orNone(sel.Option(catalog.FrontendFramework)),
		"CSS":             orNone(sel.Option(catalog.CSS)),
		"StateMgmt":       orNone(sel.Option(catalog.StateMgmt)),
		"HasServer":       sel.HasServer(),
		"HasClient":       sel.HasClient(),
		"ServerFramework": serverFramework,
		"ServerLanguage":  serverLanguage,
		"ServerPort":      serverPorts[serverFramework],
		"PackageManager":  sel.Option(catalog.PackageManager),
		"InstallHint":     installHint(sel),
	}
}

func orNone(s string) string {
	if s == "" {
		return catalog.None
	}
	return s
}

// installHint is the command a developer runs to install the primary tier.
func installHint(sel *resolve.Selection) string {
	switch sel.Option(catalog.PackageManager) {
	case "yarn":
		return "yarn"
	case "pnpm":
		return "pnpm install"
	case "pip":
		return "pip install -r requirements.txt"
	case "poetry":
		return "poetry install"
	case "conda":
		return "conda env create -f environment.yml"
	default:
		return "npm install"
	}
}

// snake converts a project name to its filesystem-safe snake form, the way
// database names and Django package directories want it.
func snake(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "-", "_")
}

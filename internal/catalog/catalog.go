// Package catalog is the static source of truth for selectable options:
// which frameworks, databases, styling and state-management libraries exist,
// which combinations are legal, and what each choice pulls in (dependencies,
// directory skeletons, template fragments).
//
// The catalog is pure lookup. It performs no I/O and holds no per-run state;
// resolution and composition logic lives in the resolve and compose packages.
package catalog

import (
	"fmt"
	"sort"
)

// Category is the axis an option belongs to.
type Category string

const (
	BackendFramework  Category = "backend-framework"
	FrontendFramework Category = "frontend-framework"
	Database          Category = "database"
	CSS               Category = "css"
	StateMgmt         Category = "state-mgmt"
	PackageManager    Category = "package-manager"
)

// Categories lists all option categories in a stable order.
var Categories = []Category{
	BackendFramework,
	FrontendFramework,
	Database,
	CSS,
	StateMgmt,
	PackageManager,
}

// None is the explicit empty choice for a category. It participates in no
// compatibility relation.
const None = "none"

// Language identifies the implementation language of a tier.
type Language string

const (
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	Python     Language = "python"
)

// Relation describes how an option relates to a peer in another category.
type Relation int

const (
	// Neutral options coexist without constraints.
	Neutral Relation = iota
	// Requires means the peer must be chosen. Multiple Requires peers in the
	// same category form a one-of set.
	Requires
	// Excludes means the peer must not be chosen.
	Excludes
)

// Peer is a (category, option) pair another option constrains.
type Peer struct {
	Category Category
	Option   string
	Relation Relation
}

// Manifest identifies which dependency manifest family a dependency targets.
// The concrete filename (package.json, requirements.txt, pyproject.toml,
// environment.yml) is decided during composition from the resolved package
// manager.
type Manifest string

const (
	ManifestNode   Manifest = "node"
	ManifestPython Manifest = "python"
)

// Dependency is a single package to install: name, version constraint, the
// manifest it belongs to, and whether it is a dev-only dependency.
type Dependency struct {
	Name       string
	Constraint string
	Manifest   Manifest
	Dev        bool
}

// Facts carries the resolved choices relevant to one tier. It is what
// context-sensitive lookups (dependencies, skeleton predicates) see; they
// never see a Selection directly, which keeps this package a leaf.
type Facts struct {
	ProjectName    string
	Language       Language
	TypeScript     bool
	Frontend       string
	Database       string
	CSS            string
	StateMgmt      string
	PackageManager string
}

// Predicate decides whether a skeleton entry applies for the given facts.
// A nil predicate always applies.
type Predicate func(Facts) bool

// SkeletonEntry is one row of a framework's directory skeleton: a path
// template, an inclusion predicate, and an optional template fragment. An
// entry with no fragment is a directory; Keep marks directories that must be
// materialized even when no file lands inside them.
type SkeletonEntry struct {
	Path     string
	Fragment string
	When     Predicate
	Keep     bool
}

// OptionInfo is the data record for one selectable option. Adding a
// framework means adding one of these plus a skeleton, never new code paths.
type OptionInfo struct {
	Category Category

	// Peers lists compatibility constraints against other categories.
	// Unlisted peers are Neutral.
	Peers []Peer

	// Deps are always pulled in when the option is chosen.
	Deps []Dependency

	// LangDeps vary by tier language (database drivers differ between Node
	// and Python). TypeScript resolves to the JavaScript entry.
	LangDeps map[Language][]Dependency

	// PeerDeps are extra dependencies keyed by the chosen frontend framework
	// (e.g. bootstrap pulls react-bootstrap under React, bootstrap-vue under
	// Vue).
	PeerDeps map[string][]Dependency

	// TSDeps are added when the TypeScript flag is set.
	TSDeps []Dependency
}

// UnknownOptionError reports a catalog lookup miss.
type UnknownOptionError struct {
	Option   string
	Category Category // empty when the identifier is unknown in any category
}

func (e *UnknownOptionError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("unknown option %q in category %q", e.Option, e.Category)
	}
	return fmt.Sprintf("unknown option %q", e.Option)
}

// Catalog is a queryable registry of options and skeletons.
type Catalog struct {
	options   map[string]OptionInfo
	skeletons map[skeletonKey][]SkeletonEntry
}

type skeletonKey struct {
	category Category
	option   string
}

// New builds a catalog from explicit tables. Tests use this to construct
// small or deliberately broken catalogs.
func New(options map[string]OptionInfo) *Catalog {
	return &Catalog{
		options:   options,
		skeletons: make(map[skeletonKey][]SkeletonEntry),
	}
}

// Default returns the built-in catalog with every supported framework,
// database, styling library, state-management library, and package manager.
func Default() *Catalog {
	c := New(registry)
	for k, entries := range skeletons {
		c.skeletons[k] = entries
	}
	return c
}

// RegisterSkeleton attaches a directory skeleton to a (category, option)
// pair, replacing any existing one.
func (c *Catalog) RegisterSkeleton(category Category, option string, entries []SkeletonEntry) {
	c.skeletons[skeletonKey{category, option}] = entries
}

// Option looks up a single option by identifier.
func (c *Catalog) Option(name string) (OptionInfo, error) {
	info, ok := c.options[name]
	if !ok {
		return OptionInfo{}, &UnknownOptionError{Option: name}
	}
	return info, nil
}

// Peers returns the compatibility constraints of an option.
func (c *Catalog) Peers(name string) ([]Peer, error) {
	info, err := c.Option(name)
	if err != nil {
		return nil, err
	}
	return info.Peers, nil
}

// OptionsFor returns the identifiers valid for a category given the choices
// made so far, sorted for determinism. An option is filtered out when any of
// its constraints, or any chosen option's constraints against it, would be
// violated.
func (c *Catalog) OptionsFor(category Category, chosen map[Category]string) []string {
	var names []string
	for name, info := range c.options {
		if info.Category != category {
			continue
		}
		if c.admissible(name, info, chosen) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) admissible(name string, info OptionInfo, chosen map[Category]string) bool {
	required := make(map[Category][]string)
	for _, p := range info.Peers {
		switch p.Relation {
		case Excludes:
			if chosen[p.Category] == p.Option {
				return false
			}
		case Requires:
			required[p.Category] = append(required[p.Category], p.Option)
		}
	}
	for cat, opts := range required {
		current := chosen[cat]
		if current == "" || current == None {
			continue // nothing chosen yet, still admissible
		}
		if !contains(opts, current) {
			return false
		}
	}
	// Constraints pointing back at this option from already-chosen peers.
	for _, picked := range chosen {
		if picked == "" || picked == None {
			continue
		}
		other, ok := c.options[picked]
		if !ok {
			continue
		}
		for _, p := range other.Peers {
			if p.Relation == Excludes && p.Category == info.Category && p.Option == name {
				return false
			}
		}
	}
	return true
}

// DependenciesFor resolves the dependency specs implied by one option under
// the given facts. Order is stable: unconditional deps, language-specific
// deps, frontend-specific deps, then TypeScript additions.
func (c *Catalog) DependenciesFor(name string, facts Facts) ([]Dependency, error) {
	info, err := c.Option(name)
	if err != nil {
		return nil, err
	}

	deps := append([]Dependency(nil), info.Deps...)
	if info.LangDeps != nil {
		lang := facts.Language
		if lang == TypeScript {
			lang = JavaScript
		}
		deps = append(deps, info.LangDeps[lang]...)
	}
	if info.PeerDeps != nil {
		deps = append(deps, info.PeerDeps[facts.Frontend]...)
	}
	if facts.TypeScript {
		deps = append(deps, info.TSDeps...)
	}
	return deps, nil
}

// Skeleton returns the directory skeleton registered for an option, or nil
// when the option carries none (databases and package managers don't).
func (c *Catalog) Skeleton(category Category, option string) []SkeletonEntry {
	return c.skeletons[skeletonKey{category, option}]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

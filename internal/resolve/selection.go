package resolve

import (
	"github.com/harkoussomar/enhanced-project-creator/internal/catalog"
)

// ProjectType determines which tiers a project has.
type ProjectType string

const (
	FullStack    ProjectType = "fullstack"
	BackendOnly  ProjectType = "backend-only"
	FrontendOnly ProjectType = "frontend-only"
)

// RawAnswers is the unvalidated input to the resolver, as collected by the
// CLI flags (or any other prompt layer). Empty strings mean "unspecified".
type RawAnswers struct {
	ProjectName     string
	ProjectType     string
	BackendLanguage string
	TypeScript      bool // applies to the client tier
	Categories      map[catalog.Category]string
	CustomDeps      []string // "name" or "name@constraint"
	GitInit         bool
	Docker          bool
}

// Selection is the fully-resolved, validated set of choices for one project.
// It is immutable once the resolver returns it; the composer only reads.
type Selection struct {
	projectName      string
	projectType      ProjectType
	backendLanguage  catalog.Language
	clientTypeScript bool
	clientPM         string
	gitInit          bool
	docker           bool

	options    map[catalog.Category]string
	customDeps []catalog.Dependency
}

func (s *Selection) ProjectName() string { return s.projectName }
func (s *Selection) Type() ProjectType   { return s.projectType }
func (s *Selection) GitInit() bool       { return s.gitInit }
func (s *Selection) Docker() bool        { return s.docker }

// BackendLanguage is the server tier's language; empty for frontend-only
// projects.
func (s *Selection) BackendLanguage() catalog.Language { return s.backendLanguage }

// ClientPM is the JavaScript package manager used for the client tier. It
// equals Option(PackageManager) when that is a JS manager, and defaults to
// npm when the project's primary manager is a Python one.
func (s *Selection) ClientPM() string { return s.clientPM }

// Option returns the resolved choice for a category ("none" when explicitly
// empty, "" when the category does not apply to this project type).
func (s *Selection) Option(cat catalog.Category) string {
	return s.options[cat]
}

// Options returns a copy of the full category mapping.
func (s *Selection) Options() map[catalog.Category]string {
	out := make(map[catalog.Category]string, len(s.options))
	for k, v := range s.options {
		out[k] = v
	}
	return out
}

// CustomDeps returns a copy of the user-asserted extra dependencies.
func (s *Selection) CustomDeps() []catalog.Dependency {
	return append([]catalog.Dependency(nil), s.customDeps...)
}

// HasServer reports whether the project has a server tier.
func (s *Selection) HasServer() bool {
	return s.projectType == FullStack || s.projectType == BackendOnly
}

// HasClient reports whether the project has a client tier.
func (s *Selection) HasClient() bool {
	return s.projectType == FullStack || s.projectType == FrontendOnly
}

// ServerFacts projects the selection onto the server tier for catalog
// lookups.
func (s *Selection) ServerFacts() catalog.Facts {
	return catalog.Facts{
		ProjectName:    s.projectName,
		Language:       s.backendLanguage,
		TypeScript:     s.backendLanguage == catalog.TypeScript,
		Database:       s.options[catalog.Database],
		PackageManager: s.options[catalog.PackageManager],
	}
}

// ClientFacts projects the selection onto the client tier.
func (s *Selection) ClientFacts() catalog.Facts {
	lang := catalog.JavaScript
	if s.clientTypeScript {
		lang = catalog.TypeScript
	}
	return catalog.Facts{
		ProjectName:    s.projectName,
		Language:       lang,
		TypeScript:     s.clientTypeScript,
		Frontend:       s.options[catalog.FrontendFramework],
		Database:       s.options[catalog.Database],
		CSS:            s.options[catalog.CSS],
		StateMgmt:      s.options[catalog.StateMgmt],
		PackageManager: s.clientPM,
	}
}

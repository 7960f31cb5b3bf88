package resolve

import (
	"testing"

	"github.com/harkoussomar/enhanced-project-creator/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	r := NewResolver(catalog.Default(), nil)

	sel, err := r.Resolve(RawAnswers{})
	require.NoError(t, err)

	assert.Equal(t, "my-app", sel.ProjectName())
	assert.Equal(t, FullStack, sel.Type())
	assert.Equal(t, "express", sel.Option(catalog.BackendFramework))
	assert.Equal(t, "react", sel.Option(catalog.FrontendFramework))
	assert.Equal(t, catalog.None, sel.Option(catalog.Database))
	assert.Equal(t, catalog.None, sel.Option(catalog.CSS))
	assert.Equal(t, catalog.None, sel.Option(catalog.StateMgmt))
	assert.Equal(t, "npm", sel.Option(catalog.PackageManager))
	assert.Equal(t, "npm", sel.ClientPM())
	assert.True(t, sel.HasServer())
	assert.True(t, sel.HasClient())
}

func TestResolvePythonDefaults(t *testing.T) {
	r := NewResolver(catalog.Default(), nil)

	sel, err := r.Resolve(RawAnswers{BackendLanguage: "python"})
	require.NoError(t, err)

	assert.Equal(t, "fastapi", sel.Option(catalog.BackendFramework))
	// No probe: pip is the fallback manager.
	assert.Equal(t, "pip", sel.Option(catalog.PackageManager))
	// The client tier still installs with a JS manager.
	assert.Equal(t, "npm", sel.ClientPM())
}

func TestResolvePythonManagerDetection(t *testing.T) {
	tests := []struct {
		name      string
		installed map[string]bool
		want      string
	}{
		{"poetry wins", map[string]bool{"poetry": true, "conda": true}, "poetry"},
		{"conda second", map[string]bool{"conda": true}, "conda"},
		{"pip fallback", nil, "pip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := func(tool string) bool { return tt.installed[tool] }
			r := NewResolver(catalog.Default(), probe)

			sel, err := r.Resolve(RawAnswers{BackendLanguage: "python"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, sel.Option(catalog.PackageManager))
		})
	}
}

func TestResolveUserPinBeatsDetection(t *testing.T) {
	probe := func(string) bool { return true } // everything installed
	r := NewResolver(catalog.Default(), probe)

	sel, err := r.Resolve(RawAnswers{
		BackendLanguage: "python",
		Categories:      map[catalog.Category]string{catalog.PackageManager: "conda"},
	})
	require.NoError(t, err)
	assert.Equal(t, "conda", sel.Option(catalog.PackageManager))
}

func TestResolveProjectTypes(t *testing.T) {
	r := NewResolver(catalog.Default(), nil)

	tests := []struct {
		input     string
		want      ProjectType
		hasServer bool
		hasClient bool
	}{
		{"fullstack", FullStack, true, true},
		{"full-stack", FullStack, true, true},
		{"backend-only", BackendOnly, true, false},
		{"backend", BackendOnly, true, false},
		{"frontend-only", FrontendOnly, false, true},
		{"", FullStack, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sel, err := r.Resolve(RawAnswers{ProjectType: tt.input})
			require.NoError(t, err)
			assert.Equal(t, tt.want, sel.Type())
			assert.Equal(t, tt.hasServer, sel.HasServer())
			assert.Equal(t, tt.hasClient, sel.HasClient())
		})
	}

	_, err := r.Resolve(RawAnswers{ProjectType: "mobile"})
	assert.Error(t, err)
}

func TestResolveRejectsIrrelevantChoices(t *testing.T) {
	r := NewResolver(catalog.Default(), nil)

	_, err := r.Resolve(RawAnswers{
		ProjectType: "frontend-only",
		Categories:  map[catalog.Category]string{catalog.Database: "mongodb"},
	})
	assert.Error(t, err)

	_, err = r.Resolve(RawAnswers{
		ProjectType: "backend-only",
		Categories:  map[catalog.Category]string{catalog.CSS: "tailwind"},
	})
	assert.Error(t, err)

	_, err = r.Resolve(RawAnswers{ProjectType: "frontend-only", BackendLanguage: "python"})
	assert.Error(t, err)
}

func TestResolveUnknownOption(t *testing.T) {
	r := NewResolver(catalog.Default(), nil)

	_, err := r.Resolve(RawAnswers{
		Categories: map[catalog.Category]string{catalog.BackendFramework: "rails"},
	})
	var unknown *catalog.UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "rails", unknown.Option)
}

func TestResolveCategoryMismatch(t *testing.T) {
	r := NewResolver(catalog.Default(), nil)

	_, err := r.Resolve(RawAnswers{
		Categories: map[catalog.Category]string{catalog.Database: "react"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "belongs to category")
}

func TestResolveIncompatiblePins(t *testing.T) {
	r := NewResolver(catalog.Default(), nil)

	// redux requires react; the user pinned angular.
	_, err := r.Resolve(RawAnswers{
		Categories: map[catalog.Category]string{
			catalog.FrontendFramework: "angular",
			catalog.StateMgmt:         "redux",
		},
	})
	var incompatible *IncompatibleSelectionError
	require.ErrorAs(t, err, &incompatible)

	// npm excludes python backends.
	_, err = r.Resolve(RawAnswers{
		BackendLanguage: "python",
		Categories: map[catalog.Category]string{
			catalog.BackendFramework: "django",
			catalog.PackageManager:   "npm",
		},
	})
	require.ErrorAs(t, err, &incompatible)
}

func TestResolveRequirementOverridesDefault(t *testing.T) {
	r := NewResolver(catalog.Default(), nil)

	// vuex requires vue. The frontend defaulted to react, which a
	// requirement may override because the user never pinned it.
	sel, err := r.Resolve(RawAnswers{
		Categories: map[catalog.Category]string{catalog.StateMgmt: "vuex"},
	})
	require.NoError(t, err)
	assert.Equal(t, "vue", sel.Option(catalog.FrontendFramework))
}

func TestResolveAmbiguousRequirement(t *testing.T) {
	r := NewResolver(catalog.Default(), nil)

	// poetry requires a Python backend, but with a JavaScript backend
	// language the default is express and three candidates remain.
	_, err := r.Resolve(RawAnswers{
		Categories: map[catalog.Category]string{catalog.PackageManager: "poetry"},
	})
	var ambiguous *AmbiguousRequirementError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, catalog.BackendFramework, ambiguous.Category)
	assert.Len(t, ambiguous.Choices, 3)
}

func TestResolveConflictingAutoRequirements(t *testing.T) {
	r := NewResolver(catalog.Default(), nil)

	// vuetify pulls the defaulted frontend to vue, then redux demands
	// react back. Neither frontend value is user-pinned, but the first
	// requirement's claim stands and the error names the two options.
	_, err := r.Resolve(RawAnswers{
		Categories: map[catalog.Category]string{
			catalog.CSS:       "vuetify",
			catalog.StateMgmt: "redux",
		},
	})
	var incompatible *IncompatibleSelectionError
	require.ErrorAs(t, err, &incompatible)
	assert.Equal(t, "redux", incompatible.Option)
	assert.Equal(t, "vuetify", incompatible.Peer)
}

func TestResolveRequirementChainConflict(t *testing.T) {
	// A catalog whose requirements tug one category in two directions.
	// The pinned frontend claims CSS c1; the state library it drags in
	// demands c2. Resolution stops at the contradiction instead of
	// flip-flopping to the iteration cap.
	cat := catalog.New(map[string]catalog.OptionInfo{
		"alpha": {
			Category: catalog.FrontendFramework,
			Peers: []catalog.Peer{
				{Category: catalog.CSS, Option: "c1", Relation: catalog.Requires},
			},
		},
		"c1": {
			Category: catalog.CSS,
			Peers: []catalog.Peer{
				{Category: catalog.StateMgmt, Option: "s1", Relation: catalog.Requires},
			},
		},
		"c2": {Category: catalog.CSS},
		"s1": {
			Category: catalog.StateMgmt,
			Peers: []catalog.Peer{
				{Category: catalog.CSS, Option: "c2", Relation: catalog.Requires},
			},
		},
		"react":   {Category: catalog.FrontendFramework},
		"express": {Category: catalog.BackendFramework},
		"npm":     {Category: catalog.PackageManager},
	})
	r := NewResolver(cat, nil)

	_, err := r.Resolve(RawAnswers{
		Categories: map[catalog.Category]string{catalog.FrontendFramework: "alpha"},
	})
	var incompatible *IncompatibleSelectionError
	require.ErrorAs(t, err, &incompatible)
	assert.Equal(t, "s1", incompatible.Option)
	assert.Equal(t, "alpha", incompatible.Peer)
}

func TestResolveTypeScriptBackendImpliesClient(t *testing.T) {
	r := NewResolver(catalog.Default(), nil)

	sel, err := r.Resolve(RawAnswers{BackendLanguage: "typescript"})
	require.NoError(t, err)
	assert.True(t, sel.ClientFacts().TypeScript)
	assert.True(t, sel.ServerFacts().TypeScript)
}

func TestParseCustomDeps(t *testing.T) {
	r := NewResolver(catalog.Default(), nil)

	sel, err := r.Resolve(RawAnswers{
		CustomDeps: []string{"lodash", "zod@^3.23.0", "@tanstack/react-query@^5.0.0", " ", ""},
	})
	require.NoError(t, err)

	deps := sel.CustomDeps()
	require.Len(t, deps, 3)
	assert.Equal(t, catalog.Dependency{Name: "lodash", Manifest: catalog.ManifestNode}, deps[0])
	assert.Equal(t, "zod", deps[1].Name)
	assert.Equal(t, "^3.23.0", deps[1].Constraint)
	// Scoped packages split on the last '@'.
	assert.Equal(t, "@tanstack/react-query", deps[2].Name)
	assert.Equal(t, "^5.0.0", deps[2].Constraint)
}

func TestParseCustomDepsPythonManifest(t *testing.T) {
	r := NewResolver(catalog.Default(), nil)

	sel, err := r.Resolve(RawAnswers{
		BackendLanguage: "python",
		CustomDeps:      []string{"httpx>=0.27.0"},
	})
	require.NoError(t, err)

	deps := sel.CustomDeps()
	require.Len(t, deps, 1)
	assert.Equal(t, catalog.ManifestPython, deps[0].Manifest)
}

package commands

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/harkoussomar/enhanced-project-creator/internal/catalog"
	"github.com/harkoussomar/enhanced-project-creator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	output.SetWriter(&buf)
	t.Cleanup(func() { output.SetWriter(os.Stdout) })
	return &buf
}

func TestPlanCmdPrintsTree(t *testing.T) {
	status := captureOutput(t)

	cmd := PlanCmd()
	var tree bytes.Buffer
	cmd.SetOut(&tree)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"my-app", "--backend", "fastapi", "--language", "python", "--database", "mongodb", "--pm", "pip"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, status.String(), "my-app")
	assert.Contains(t, status.String(), "fastapi")

	got := tree.String()
	assert.Contains(t, got, "my-app")
	assert.Contains(t, got, "server")
	assert.Contains(t, got, "client")
	assert.Contains(t, got, "main.py")
	assert.Contains(t, got, "requirements.txt")
}

func TestOptionsCmdListsCategories(t *testing.T) {
	buf := captureOutput(t)

	cmd := OptionsCmd()
	cmd.SetOut(io.Discard)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	got := buf.String()
	assert.Contains(t, got, "backend-framework")
	assert.Contains(t, got, "express")
	assert.Contains(t, got, "package-manager")
}

func TestOptionsCmdFilters(t *testing.T) {
	buf := captureOutput(t)

	cmd := OptionsCmd()
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"state-mgmt", "--frontend", "vue"})
	require.NoError(t, cmd.Execute())

	got := buf.String()
	assert.Contains(t, got, "pinia")
	assert.Contains(t, got, "vuex")
	assert.NotContains(t, got, "redux")
}

func TestOptionsCmdUnknownCategory(t *testing.T) {
	cmd := OptionsCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"flavour"})
	assert.Error(t, cmd.Execute())
}

func TestCategoriesHelper(t *testing.T) {
	m := categories("express", "", "mongodb", "", "", "npm")
	assert.Len(t, m, 3)
	assert.Equal(t, "express", m["backend-framework"])
	assert.Equal(t, "mongodb", m["database"])
	assert.Equal(t, "npm", m["package-manager"])
}

func TestNewCmdFlagHelpMatchesCatalog(t *testing.T) {
	cat := catalog.Default()
	cmd := NewCmd()

	flags := map[string]catalog.Category{
		"backend":  catalog.BackendFramework,
		"frontend": catalog.FrontendFramework,
		"database": catalog.Database,
		"css":      catalog.CSS,
		"state":    catalog.StateMgmt,
		"pm":       catalog.PackageManager,
	}

	for name, category := range flags {
		f := cmd.Flags().Lookup(name)
		require.NotNil(t, f, name)

		_, list, ok := strings.Cut(f.Usage, ": ")
		require.True(t, ok, "usage for --%s lists no options", name)

		advertised := strings.Split(list, ", ")
		for _, opt := range advertised {
			if opt == catalog.None {
				continue
			}
			info, err := cat.Option(opt)
			require.NoError(t, err, "--%s advertises %q", name, opt)
			assert.Equal(t, category, info.Category)
		}
		// Every registered option is advertised.
		for _, opt := range cat.OptionsFor(category, nil) {
			assert.Contains(t, advertised, opt, "--%s omits %q", name, opt)
		}
	}
}

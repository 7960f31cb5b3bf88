package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := New()

	got, err := r.Render("greeting", "Hello {{.Name}}!", map[string]any{"Name": "World"})
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", string(got))
}

func TestRenderFuncs(t *testing.T) {
	r := New()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"snake", `{{snake .Name}}`, "my_cool_app"},
		{"pascal", `{{pascal .Name}}`, "MyCoolApp"},
		{"camel", `{{camel .Name}}`, "myCoolApp"},
		{"upper", `{{upper .Name}}`, "MY-COOL-APP"},
		{"quote", `{{quote .Name}}`, `"my-cool-app"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.name, tt.body, map[string]any{"Name": "my-cool-app"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestRenderMissingKeyFails(t *testing.T) {
	r := New()

	_, err := r.Render("bad", "{{.Missing}}", map[string]any{"Name": "x"})
	assert.Error(t, err)
}

func TestRenderParseErrorNamesFragment(t *testing.T) {
	r := New()

	_, err := r.Render("broken", "{{.Unclosed", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"broken"`)
}

func TestRenderCachesByID(t *testing.T) {
	r := New()

	first, err := r.Render("cached", "v={{.V}}", map[string]any{"V": 1})
	require.NoError(t, err)
	assert.Equal(t, "v=1", string(first))

	// Same id, different body: the cached parse wins.
	second, err := r.Render("cached", "ignored", map[string]any{"V": 2})
	require.NoError(t, err)
	assert.Equal(t, "v=2", string(second))
}

func TestNameHelpers(t *testing.T) {
	assert.Equal(t, "my_app", Snake("My-App"))
	assert.Equal(t, "my_app", Snake("my app"))
	assert.Equal(t, "MyApp", Pascal("my_app"))
	assert.Equal(t, "myApp", Camel("my-app"))
	assert.Equal(t, "", Camel(""))
}

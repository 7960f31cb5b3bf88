// Package render expands template fragments into file bytes. Fragment
// bodies come from the catalog and are opaque to everything upstream; only
// this package interprets them.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"text/template"
	"unicode"
)

// Renderer parses and caches template fragments. Safe for concurrent use.
type Renderer struct {
	funcMap template.FuncMap
	cache   map[string]*template.Template
	mu      sync.RWMutex
}

// New creates a renderer with the built-in helper functions.
func New() *Renderer {
	return &Renderer{
		funcMap: template.FuncMap{
			"snake":  Snake,
			"pascal": Pascal,
			"camel":  Camel,
			"upper":  strings.ToUpper,
			"lower":  strings.ToLower,
			"quote":  func(s string) string { return fmt.Sprintf("%q", s) },
		},
		cache: make(map[string]*template.Template),
	}
}

// Render expands a fragment body with the given data. The fragment id keys
// the parse cache, so each body is parsed once per renderer.
func (r *Renderer) Render(id, body string, data any) ([]byte, error) {
	r.mu.RLock()
	tmpl, ok := r.cache[id]
	r.mu.RUnlock()

	if !ok {
		var err error
		tmpl, err = template.New(id).Funcs(r.funcMap).Option("missingkey=error").Parse(body)
		if err != nil {
			return nil, fmt.Errorf("parsing fragment %q: %w", id, err)
		}
		r.mu.Lock()
		r.cache[id] = tmpl
		r.mu.Unlock()
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering fragment %q: %w", id, err)
	}
	return buf.Bytes(), nil
}

// Snake lowercases a name and folds dashes and spaces to underscores:
// my-app → my_app.
func Snake(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}

// Pascal converts kebab-case or snake_case to PascalCase: my-app → MyApp.
func Pascal(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}
	return b.String()
}

// Camel converts kebab-case or snake_case to camelCase: my-app → myApp.
func Camel(s string) string {
	p := Pascal(s)
	if p == "" {
		return ""
	}
	return strings.ToLower(p[:1]) + p[1:]
}

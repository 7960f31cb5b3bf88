package catalog

import (
	"embed"
	"fmt"

	"github.com/lithammer/dedent"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// inline holds the small fragments that don't warrant their own file. Bodies
// are templates; the render package expands them with the file's
// substitution context.
var inline = map[string]string{
	"py_init":        "",
	"angular_styles": "",

	"env_node": dedent.Dedent(`
		PORT=5000
		{{- if eq .Database "mongodb"}}
		MONGO_URI=mongodb://localhost:27017/{{.ProjectName}}
		{{- else if eq .Database "postgresql"}}
		POSTGRESQL_HOST=localhost
		POSTGRESQL_PORT=5432
		POSTGRESQL_USER=root
		POSTGRESQL_PASSWORD=password
		POSTGRESQL_DATABASE={{snake .ProjectName}}
		{{- else if eq .Database "mysql"}}
		MYSQL_HOST=localhost
		MYSQL_PORT=3306
		MYSQL_USER=root
		MYSQL_PASSWORD=password
		MYSQL_DATABASE={{snake .ProjectName}}
		{{- end}}
	`)[1:],

	"env_python": dedent.Dedent(`
		PORT=8000
		SECRET_KEY=change_me
		{{- if eq .Database "mongodb"}}
		MONGO_URI=mongodb://localhost:27017/{{.ProjectName}}
		{{- else if eq .Database "postgresql"}}
		POSTGRESQL_HOST=localhost
		POSTGRESQL_PORT=5432
		POSTGRESQL_USER=root
		POSTGRESQL_PASSWORD=password
		POSTGRESQL_DATABASE={{snake .ProjectName}}
		{{- else if eq .Database "mysql"}}
		MYSQL_HOST=localhost
		MYSQL_PORT=3306
		MYSQL_USER=root
		MYSQL_PASSWORD=password
		MYSQL_DATABASE={{snake .ProjectName}}
		{{- end}}
	`)[1:],

	"env_nest": "PORT=3000\n",

	"gitignore": dedent.Dedent(`
		node_modules/
		dist/
		env/
		venv/
		.env
		__pycache__/
		*.pyc
		.DS_Store
	`)[1:],

	"tsconfig": dedent.Dedent(`
		{
		  "compilerOptions": {
		    "target": "ES2020",
		    "module": "NodeNext",
		    "moduleResolution": "NodeNext",
		    "outDir": "./dist",
		    "rootDir": "./src",
		    "strict": true,
		    "esModuleInterop": true,
		    "skipLibCheck": true,
		    "forceConsistentCasingInFileNames": true
		  },
		  "include": ["src/**/*"]
		}
	`)[1:],

	"tsconfig_client": dedent.Dedent(`
		{
		  "compilerOptions": {
		    "target": "ES2022",
		    "module": "ESNext",
		    "moduleResolution": "bundler",
		    "jsx": "react-jsx",
		    "strict": true,
		    "skipLibCheck": true,
		    "noEmit": true
		  },
		  "include": ["src"]
		}
	`)[1:],
}

// Fragment returns the template body registered under id. Fragment bodies
// are opaque to the resolver and composer; only the renderer interprets
// them.
func (c *Catalog) Fragment(id string) (string, error) {
	if body, ok := inline[id]; ok {
		return body, nil
	}
	data, err := templateFS.ReadFile("templates/" + id + ".tmpl")
	if err != nil {
		return "", fmt.Errorf("unknown template fragment %q", id)
	}
	return string(data), nil
}

// HasFragment reports whether a fragment id is registered. Used by catalog
// integrity tests to keep skeletons and templates in sync.
func (c *Catalog) HasFragment(id string) bool {
	_, err := c.Fragment(id)
	return err == nil
}

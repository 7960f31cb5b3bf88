package compose

import (
	"fmt"
	"strings"

	"github.com/harkoussomar/enhanced-project-creator/internal/catalog"
	"github.com/harkoussomar/enhanced-project-creator/internal/resolve"
)

// synthesize produces a tier's manifest file. Manifests are built directly
// rather than templated so the dependency list stays the single source of
// truth; output is byte-deterministic.
func (c *Composer) synthesize(sel *resolve.Selection, tier string, facts catalog.Facts, deps []catalog.Dependency) (string, []byte, error) {
	if tier == "client" || facts.Language != catalog.Python {
		_, framework := tierOption(sel, tier)
		name := fmt.Sprintf("%s-%s", sel.ProjectName(), tier)
		return "package.json", packageJSON(name, framework, facts.TypeScript, deps), nil
	}

	switch sel.Option(catalog.PackageManager) {
	case "poetry":
		return "pyproject.toml", pyproject(sel.ProjectName(), deps), nil
	case "conda":
		content, err := environmentYML(sel.ProjectName(), deps)
		return "environment.yml", content, err
	default:
		return "requirements.txt", requirements(deps), nil
	}
}

// packageJSON writes a package.json by hand so dependency order follows
// first registration instead of a map's whim.
func packageJSON(name, framework string, ts bool, deps []catalog.Dependency) []byte {
	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  \"name\": %q,\n", name)
	b.WriteString("  \"version\": \"0.1.0\",\n")
	b.WriteString("  \"private\": true,\n")
	b.WriteString("  \"type\": \"module\",\n")

	b.WriteString("  \"scripts\": {\n")
	scripts := scriptsFor(framework, ts)
	for i, s := range scripts {
		comma := ","
		if i == len(scripts)-1 {
			comma = ""
		}
		fmt.Fprintf(&b, "    %q: %q%s\n", s[0], s[1], comma)
	}
	b.WriteString("  },\n")

	writeDeps := func(key string, dev bool, trailingComma bool) {
		var filtered []catalog.Dependency
		for _, d := range deps {
			if d.Dev == dev {
				filtered = append(filtered, d)
			}
		}
		fmt.Fprintf(&b, "  %q: {\n", key)
		for i, d := range filtered {
			comma := ","
			if i == len(filtered)-1 {
				comma = ""
			}
			constraint := d.Constraint
			if constraint == "" {
				constraint = "latest"
			}
			fmt.Fprintf(&b, "    %q: %q%s\n", d.Name, constraint, comma)
		}
		if trailingComma {
			b.WriteString("  },\n")
		} else {
			b.WriteString("  }\n")
		}
	}
	writeDeps("dependencies", false, true)
	writeDeps("devDependencies", true, false)

	b.WriteString("}\n")
	return []byte(b.String())
}

// scriptsFor returns the npm scripts for a framework as ordered pairs.
func scriptsFor(framework string, ts bool) [][2]string {
	switch framework {
	case "express":
		if ts {
			return [][2]string{
				{"start", "node dist/app.js"},
				{"dev", "nodemon --watch src --exec ts-node src/app.ts"},
				{"build", "tsc"},
			}
		}
		return [][2]string{
			{"start", "node src/app.js"},
			{"dev", "nodemon src/app.js"},
		}
	case "nest":
		return [][2]string{
			{"start", "nest start"},
			{"dev", "nest start --watch"},
			{"build", "nest build"},
		}
	case "angular":
		return [][2]string{
			{"start", "ng serve"},
			{"build", "ng build"},
		}
	case "vue":
		if ts {
			return [][2]string{
				{"dev", "vite"},
				{"build", "vue-tsc -b && vite build"},
				{"preview", "vite preview"},
			}
		}
		return viteScripts()
	case "react", "svelte":
		if ts {
			return [][2]string{
				{"dev", "vite"},
				{"build", "tsc -b && vite build"},
				{"preview", "vite preview"},
			}
		}
		return viteScripts()
	default:
		return [][2]string{{"start", "node index.js"}}
	}
}

func viteScripts() [][2]string {
	return [][2]string{
		{"dev", "vite"},
		{"build", "vite build"},
		{"preview", "vite preview"},
	}
}

// requirements writes a flat pip requirements file, runtime deps first,
// dev tools under a marker comment.
func requirements(deps []catalog.Dependency) []byte {
	var b strings.Builder
	for _, d := range deps {
		if !d.Dev {
			b.WriteString(d.Name + d.Constraint + "\n")
		}
	}
	wroteHeader := false
	for _, d := range deps {
		if d.Dev {
			if !wroteHeader {
				b.WriteString("\n# dev\n")
				wroteHeader = true
			}
			b.WriteString(d.Name + d.Constraint + "\n")
		}
	}
	return []byte(b.String())
}

// pyproject writes a poetry project file.
func pyproject(project string, deps []catalog.Dependency) []byte {
	var b strings.Builder
	b.WriteString("[tool.poetry]\n")
	fmt.Fprintf(&b, "name = %q\n", snake(project))
	b.WriteString("version = \"0.1.0\"\n")
	fmt.Fprintf(&b, "description = %q\n", project)
	b.WriteString("\n[tool.poetry.dependencies]\n")
	b.WriteString("python = \"^3.12\"\n")
	for _, d := range deps {
		if !d.Dev {
			fmt.Fprintf(&b, "%s = %q\n", d.Name, constraintOr(d, "*"))
		}
	}
	b.WriteString("\n[tool.poetry.group.dev.dependencies]\n")
	for _, d := range deps {
		if d.Dev {
			fmt.Fprintf(&b, "%s = %q\n", d.Name, constraintOr(d, "*"))
		}
	}
	b.WriteString("\n[build-system]\n")
	b.WriteString("requires = [\"poetry-core\"]\n")
	b.WriteString("build-backend = \"poetry.core.masonry.api\"\n")
	return []byte(b.String())
}

func constraintOr(d catalog.Dependency, fallback string) string {
	if d.Constraint == "" {
		return fallback
	}
	return d.Constraint
}

// environmentYML writes a conda environment file. Runtime deps install from
// conda channels, dev tools through pip, matching how the original tool
// split the two installs.
func environmentYML(project string, deps []catalog.Dependency) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "name: %s\n", snake(project))
	b.WriteString("channels:\n  - defaults\n  - conda-forge\ndependencies:\n")
	b.WriteString("  - python=3.12\n")
	for _, d := range deps {
		if !d.Dev {
			fmt.Fprintf(&b, "  - %s%s\n", d.Name, d.Constraint)
		}
	}
	b.WriteString("  - pip\n  - pip:\n")
	for _, d := range deps {
		if d.Dev {
			fmt.Fprintf(&b, "      - %s%s\n", d.Name, d.Constraint)
		}
	}
	return []byte(b.String()), nil
}

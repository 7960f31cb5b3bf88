package compose

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/harkoussomar/enhanced-project-creator/internal/catalog"
	"github.com/harkoussomar/enhanced-project-creator/internal/resolve"
)

type composeService struct {
	Build       string   `yaml:"build,omitempty"`
	Image       string   `yaml:"image,omitempty"`
	Ports       []string `yaml:"ports,omitempty"`
	Environment []string `yaml:"environment,omitempty"`
	Volumes     []string `yaml:"volumes,omitempty"`
}

type composeDoc struct {
	Services map[string]composeService `yaml:"services"`
	Volumes  map[string]struct{}       `yaml:"volumes,omitempty"`
}

// composeFileContent synthesizes docker-compose.yml for a selection with a
// database. yaml.Marshal sorts map keys, so output is deterministic.
func composeFileContent(sel *resolve.Selection) ([]byte, error) {
	port := serverPorts[sel.Option(catalog.BackendFramework)]
	if port == 0 {
		port = 8000
	}

	doc := composeDoc{
		Services: map[string]composeService{
			"app": {
				Build:       ".",
				Ports:       []string{fmt.Sprintf("%d:%d", port, port)},
				Environment: []string{fmt.Sprintf("PORT=%d", port)},
			},
		},
	}

	dbName := snake(sel.ProjectName())
	switch sel.Option(catalog.Database) {
	case "postgresql":
		doc.Services["postgres"] = composeService{
			Image: "postgres:16",
			Environment: []string{
				"POSTGRES_USER=root",
				"POSTGRES_PASSWORD=password",
				"POSTGRES_DB=" + dbName,
			},
			Ports:   []string{"5432:5432"},
			Volumes: []string{"postgres_data:/var/lib/postgresql/data"},
		}
		doc.Volumes = map[string]struct{}{"postgres_data": {}}
	case "mongodb":
		doc.Services["mongo"] = composeService{
			Image:   "mongo:8",
			Ports:   []string{"27017:27017"},
			Volumes: []string{"mongo_data:/data/db"},
		}
		doc.Volumes = map[string]struct{}{"mongo_data": {}}
	case "mysql":
		doc.Services["mysql"] = composeService{
			Image: "mysql:9",
			Environment: []string{
				"MYSQL_ROOT_PASSWORD=password",
				"MYSQL_DATABASE=" + dbName,
			},
			Ports:   []string{"3306:3306"},
			Volumes: []string{"mysql_data:/var/lib/mysql"},
		}
		doc.Volumes = map[string]struct{}{"mysql_data": {}}
	}

	return yaml.Marshal(doc)
}

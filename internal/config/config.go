package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Defaults are user-level answers applied when the corresponding flag is
// not given. They load from epc.yml in the working directory, falling back
// to ~/.config/epc/epc.yml.
type Defaults struct {
	ProjectType    string
	Backend        string
	Frontend       string
	Language       string
	TypeScript     bool
	Database       string
	PackageManager string
	GitInit        bool
	Docker         bool
}

// Load reads defaults if a config file exists. A missing file is not an
// error; the zero value means "no defaults configured".
func Load() (*Defaults, error) {
	v := viper.New()
	v.SetConfigName("epc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "epc"))
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("EPC")

	v.SetDefault("defaults.git", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return &Defaults{GitInit: true}, nil
		}
		return nil, err
	}

	return &Defaults{
		ProjectType:    v.GetString("defaults.type"),
		Backend:        v.GetString("defaults.backend"),
		Frontend:       v.GetString("defaults.frontend"),
		Language:       v.GetString("defaults.language"),
		TypeScript:     v.GetBool("defaults.typescript"),
		Database:       v.GetString("defaults.database"),
		PackageManager: v.GetString("defaults.package_manager"),
		GitInit:        v.GetBool("defaults.git"),
		Docker:         v.GetBool("defaults.docker"),
	}, nil
}

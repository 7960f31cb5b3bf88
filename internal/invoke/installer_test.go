package invoke

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallCommands(t *testing.T) {
	tests := []struct {
		manager  string
		wantName string
		wantArgs []string
	}{
		{"npm", "npm", []string{"install"}},
		{"yarn", "yarn", []string{"install"}},
		{"pnpm", "pnpm", []string{"install"}},
		{"pip", "pip", []string{"install", "-r", "requirements.txt"}},
		{"poetry", "poetry", []string{"install"}},
		{"conda", "conda", []string{"env", "create", "-f", "environment.yml"}},
	}

	for _, tt := range tests {
		t.Run(tt.manager, func(t *testing.T) {
			cmds := InstallCommands(tt.manager)
			require.Len(t, cmds, 1)
			if runtime.GOOS != "windows" {
				assert.Equal(t, tt.wantName, cmds[0].Name)
			}
			assert.Equal(t, tt.wantArgs, cmds[0].Args)
		})
	}
}

func TestInstallCommandsUnknownManager(t *testing.T) {
	assert.Nil(t, InstallCommands("cargo"))
}

func TestCommandString(t *testing.T) {
	c := Command{Name: "npm", Args: []string{"install", "--save-dev"}}
	assert.Equal(t, "npm install --save-dev", c.String())
}

func TestCommandWindowsSuffix(t *testing.T) {
	got := command("npm")
	if runtime.GOOS == "windows" {
		assert.Equal(t, "npm.cmd", got)
	} else {
		assert.Equal(t, "npm", got)
	}
	// Non-JS tools never get the suffix.
	assert.Equal(t, "git", command("git"))
}

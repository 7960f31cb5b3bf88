package invoke

import (
	"context"
	"fmt"

	"github.com/harkoussomar/enhanced-project-creator/internal/output"
)

// Command is one external invocation: program name plus arguments.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	s := c.Name
	for _, a := range c.Args {
		s += " " + a
	}
	return s
}

// InstallCommands builds the package-manager invocations that install a
// tier's dependencies from its already-written manifest. Installing from
// the manifest keeps it byte-identical to what the composer produced;
// passing package names on the command line would let the manager rewrite
// it.
func InstallCommands(manager string) []Command {
	switch manager {
	case "npm", "yarn", "pnpm":
		return []Command{{Name: command(manager), Args: []string{"install"}}}
	case "pip":
		return []Command{{Name: command("pip"), Args: []string{"install", "-r", "requirements.txt"}}}
	case "poetry":
		return []Command{{Name: "poetry", Args: []string{"install"}}}
	case "conda":
		return []Command{{Name: "conda", Args: []string{"env", "create", "-f", "environment.yml"}}}
	default:
		return nil
	}
}

// InstallTier runs a tier's install commands inside its directory.
func InstallTier(ctx context.Context, dir, manager string) error {
	cmds := InstallCommands(manager)
	if len(cmds) == 0 {
		return fmt.Errorf("no install procedure for package manager %q", manager)
	}
	e := NewExecutor(&Options{Dir: dir})
	for _, c := range cmds {
		output.Verbose(fmt.Sprintf("running %s in %s", c, dir))
		if err := e.RunWithSpinner(ctx, fmt.Sprintf("Installing dependencies (%s)", manager), c.Name, c.Args...); err != nil {
			return err
		}
	}
	return nil
}

// GitInit initializes a repository at the project root.
func GitInit(ctx context.Context, dir string) error {
	e := NewExecutor(&Options{Dir: dir})
	return e.Run(ctx, "git", "init")
}

// DockerBuild builds the generated Dockerfile, tagged with the project
// name.
func DockerBuild(ctx context.Context, dir, tag string) error {
	e := NewExecutor(&Options{Dir: dir})
	return e.RunWithSpinner(ctx, "Building Docker image", "docker", "build", "-t", tag, ".")
}

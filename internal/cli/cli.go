// Package cli provides the command-line interface for the tempo tool.
// It implements a modular command system with support for subcommands,
// help text, and version information. The CLI uses a registry pattern
// to register available commands and route execution based on user input.
//
// Commands are implemented in the commands subpackage and registered
// during CLI initialization for clean separation of concerns.
package cli

import (
	"fmt"

	"tempo/internal/config"
	"tempo/pkg/version"
)

// Command represents a CLI command
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// CLI represents the command-line interface
type CLI struct {
	config   *config.Config
	commands map[string]Command
	order    []string
}

// New creates a new CLI instance
func New(cfg *config.Config) *CLI {
	c := &CLI{config: cfg, commands: make(map[string]Command)}
	c.registerCommands()
	return c
}

func (c *CLI) register(cmd Command) {
	c.commands[cmd.Name()] = cmd
	c.order = append(c.order, cmd.Name())
}

// registerCommands registers all available commands
func (c *CLI) registerCommands() {
	c.register(NewRunCommand(c.config))
	c.register(NewCompareCommand())
	c.register(NewReportCommand())
}

// Run executes the CLI with given arguments
func (c *CLI) Run(args []string) error {
	if len(args) < 2 {
		c.printUsage()
		return nil
	}
	switch args[1] {
	case "help", "--help", "-h":
		c.printUsage()
		return nil
	case "version", "--version":
		fmt.Printf("tempo %s\n", version.Version)
		return nil
	default:
		if cmd, ok := c.commands[args[1]]; ok {
			return cmd.Run(args[2:])
		}
		c.printUsage()
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func (c *CLI) printUsage() {
	fmt.Println("Usage: tempo <command> [args]")
	fmt.Println("Commands:")
	for _, name := range c.order {
		fmt.Printf("  %-8s %s\n", name, c.commands[name].Description())
	}
	fmt.Println("  version  Show version")
	fmt.Println("  help     Show this help")
}

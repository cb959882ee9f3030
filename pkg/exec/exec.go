// Package exec provides command execution utilities for tempo. Measured
// shell commands go through the Commander interface so tests can substitute
// a mock without spawning processes.
package exec

import (
	"io"
	"os/exec"
)

// Commander provides an interface for command execution that can be mocked in tests.
type Commander interface {
	Command(name string, args ...string) *exec.Cmd
}

// DefaultCommander implements Commander using the standard exec.Command.
type DefaultCommander struct{}

// Command creates a new exec.Cmd using the standard library exec.Command.
func (DefaultCommander) Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

// Global instance that can be overridden in tests
var Default Commander = DefaultCommander{}

// Command is a convenience function that delegates to the global Commander instance.
func Command(name string, args ...string) *exec.Cmd {
	return Default.Command(name, args...)
}

// Silent returns an exec.Cmd with stdout and stderr discarded. Benchmarked
// commands must not write to the caller's terminal mid-measurement.
func Silent(name string, args ...string) *exec.Cmd {
	cmd := Command(name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd
}

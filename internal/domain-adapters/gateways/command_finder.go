package gateways

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// groupEntrypoint is the file declaring a command group's own options
const groupEntrypoint = "cli.rs"

// CommandFinder locates command source files that may carry visibility annotations
type CommandFinder struct{}

// NewCommandFinder creates a new command finder
func NewCommandFinder() *CommandFinder {
	return &CommandFinder{}
}

// FindCommandSources returns the regular files directly inside commandsDir,
// in name order, followed by the entrypoint of each command group
func (f *CommandFinder) FindCommandSources(commandsDir string, groups []string) ([]string, error) {
	entries, err := os.ReadDir(commandsDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read commands directory %s", commandsDir)
	}

	var sources []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		sources = append(sources, filepath.Join(commandsDir, entry.Name()))
	}

	for _, group := range groups {
		path := filepath.Join(commandsDir, group, groupEntrypoint)
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "command group %s", group)
		}
		if !info.Mode().IsRegular() {
			return nil, errors.Errorf("command group %s: %s is not a file", group, path)
		}
		sources = append(sources, path)
	}

	return sources, nil
}

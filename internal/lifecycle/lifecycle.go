// Package lifecycle runs host commands as a sequence of lifecycle events and
// fires the hooks plugins registered for them. Each event E of command C
// fires "before:C:E", "C:E" and "after:C:E" in that order.
package lifecycle

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/renato0307/versioninfo/internal/logging"
)

// Hook is a function bound to a lifecycle event
type Hook func(ctx context.Context) (any, error)

// Command is a host command with its lifecycle events and subcommands
type Command struct {
	Commands        map[string]*Command
	LifecycleEvents []string
	Usage           string
}

// Plugin contributes commands and hooks to the host
type Plugin interface {
	Commands() map[string]*Command
	Hooks() map[string]Hook
	Name() string
}

// HookResult is the outcome of one fired hook
type HookResult struct {
	Event  string
	Plugin string
	Value  any
}

type registeredHook struct {
	hook   Hook
	plugin string
}

// Manager holds the command tree and the registered hooks
type Manager struct {
	commands map[string]*Command
	hooks    map[string][]registeredHook
	plugins  []string
}

// NewManager creates a manager with the built-in commands
func NewManager() *Manager {
	return &Manager{
		commands: BuiltinCommands(),
		hooks:    make(map[string][]registeredHook),
	}
}

// BuiltinCommands returns the host's own command tree
func BuiltinCommands() map[string]*Command {
	return map[string]*Command{
		"deploy": {
			LifecycleEvents: []string{"initialize", "package", "deploy", "finalize"},
			Usage:           "Deploy the service",
			Commands: map[string]*Command{
				"function": {
					LifecycleEvents: []string{"initialize", "packageFunction", "deploy"},
					Usage:           "Deploy a single function",
				},
			},
		},
		"offline": {
			LifecycleEvents: []string{},
			Usage:           "Emulate the service locally",
			Commands: map[string]*Command{
				"start": {
					LifecycleEvents: []string{"init", "ready", "end"},
					Usage:           "Start the local emulation",
				},
			},
		},
	}
}

// AddPlugin merges the plugin's commands into the tree and registers its hooks.
// Events a plugin declares on an existing command run before that command's
// own events.
func (m *Manager) AddPlugin(p Plugin) error {
	name := p.Name()
	if slices.Contains(m.plugins, name) {
		return fmt.Errorf("plugin %s already registered", name)
	}

	mergeCommands(m.commands, p.Commands())

	for event, hook := range p.Hooks() {
		if hook == nil {
			return fmt.Errorf("plugin %s: nil hook for %s", name, event)
		}
		m.hooks[event] = append(m.hooks[event], registeredHook{hook: hook, plugin: name})
	}

	m.plugins = append(m.plugins, name)
	logging.Logger.Debug("Plugin registered", "plugin", name, "hooks", len(p.Hooks()))
	return nil
}

func mergeCommands(dst, src map[string]*Command) {
	for name, cmd := range src {
		existing, ok := dst[name]
		if !ok {
			dst[name] = cloneCommand(cmd)
			continue
		}

		var added []string
		for _, event := range cmd.LifecycleEvents {
			if !slices.Contains(existing.LifecycleEvents, event) {
				added = append(added, event)
			}
		}
		existing.LifecycleEvents = append(added, existing.LifecycleEvents...)

		if len(cmd.Commands) > 0 {
			if existing.Commands == nil {
				existing.Commands = make(map[string]*Command)
			}
			mergeCommands(existing.Commands, cmd.Commands)
		}
	}
}

func cloneCommand(cmd *Command) *Command {
	out := &Command{
		LifecycleEvents: slices.Clone(cmd.LifecycleEvents),
		Usage:           cmd.Usage,
	}
	if len(cmd.Commands) > 0 {
		out.Commands = make(map[string]*Command, len(cmd.Commands))
		for name, sub := range cmd.Commands {
			out.Commands[name] = cloneCommand(sub)
		}
	}
	return out
}

// Lookup finds a command by its path, e.g. "offline:start" or "deploy"
func (m *Manager) Lookup(path string) (*Command, error) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	commands := m.commands
	var cmd *Command
	for i, part := range parts {
		next, ok := commands[part]
		if !ok {
			return nil, fmt.Errorf("unknown command %q", strings.Join(parts[:i+1], ":"))
		}
		cmd = next
		commands = next.Commands
	}
	return cmd, nil
}

// Events returns the fully qualified hook names a command fires, in order
func (m *Manager) Events(path string) ([]string, error) {
	cmd, err := m.Lookup(path)
	if err != nil {
		return nil, err
	}

	prefix := strings.Join(splitPath(path), ":")
	events := make([]string, 0, len(cmd.LifecycleEvents)*3)
	for _, event := range cmd.LifecycleEvents {
		qualified := prefix + ":" + event
		events = append(events, "before:"+qualified, qualified, "after:"+qualified)
	}
	return events, nil
}

// Run fires every hook bound to the command's events in order and stops at
// the first failing hook
func (m *Manager) Run(ctx context.Context, path string) ([]HookResult, error) {
	events, err := m.Events(path)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Running command", "command", path, "events", len(events))

	var results []HookResult
	for _, event := range events {
		for _, registered := range m.hooks[event] {
			if err := ctx.Err(); err != nil {
				return results, err
			}

			logging.Logger.Debug("Firing hook", "event", event, "plugin", registered.plugin)
			value, err := registered.hook(ctx)
			if err != nil {
				return results, fmt.Errorf("hook %s of plugin %s: %w", event, registered.plugin, err)
			}
			results = append(results, HookResult{Event: event, Plugin: registered.plugin, Value: value})
		}
	}
	return results, nil
}

// CommandPaths lists every command path in the tree, sorted
func (m *Manager) CommandPaths() []string {
	var paths []string
	var walk func(prefix string, commands map[string]*Command)
	walk = func(prefix string, commands map[string]*Command) {
		for name, cmd := range commands {
			path := name
			if prefix != "" {
				path = prefix + ":" + name
			}
			paths = append(paths, path)
			walk(path, cmd.Commands)
		}
	}
	walk("", m.commands)
	sort.Strings(paths)
	return paths
}

// splitPath accepts both "offline:start" and "offline start"
func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == ':' || r == ' '
	})
}

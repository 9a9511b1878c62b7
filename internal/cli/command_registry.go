package cli

import (
	"context"

	"task-entry/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	// Register all commands
	registry.Register("add", NewAddCommand(app))
	registry.Register("list", NewListCommand(app))
	registry.Register("open", NewOpenCommand(app))
	registry.Register("set", NewSetCommand(app))
	registry.Register("attach", NewAttachCommand(app))
	registry.Register("remove", NewRemoveCommand(app))
	registry.Register("submit", NewSubmitCommand(app))
	registry.Register("unrated", NewUnratedCommand(app))
	registry.Register("edit", NewEditCommand(app))
	registry.Register("whoami", NewWhoamiCommand(app))
	registry.Register("leads", NewLeadsCommand(app))
	registry.Register("exit", NewExitCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(ctx, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	return "usage: te add or te list or te open <n> or te set <n> <field> <value> or te attach <n> <path> or te remove <n> or te submit or te unrated or te edit <date> or te whoami or te leads or te exit"
}

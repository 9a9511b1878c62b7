package cli

import (
	"context"
	"strconv"

	"task-entry/internal/domain"
	"task-entry/internal/errors"
	"task-entry/internal/form"
)

// OpenCommand handles the open command, toggling which entry is expanded
type OpenCommand struct {
	form         *form.Manager
	errorHandler *ErrorHandler
	out          printer
}

// NewOpenCommand creates a new open command handler
func NewOpenCommand(app *App) *OpenCommand {
	return &OpenCommand{
		form:         app.form,
		errorHandler: NewErrorHandler(),
		out:          newPrinter(app.out),
	}
}

// Execute runs the open command
func (c *OpenCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "open", "usage: te open <n>")
	}

	entry, err := entryAtPosition(ctx, c.form, args[0])
	if err != nil {
		return c.errorHandler.Handle("open entry", err)
	}

	if err := c.form.ToggleExpand(ctx, entry.ID); err != nil {
		return c.errorHandler.Handle("open entry", err)
	}

	if entry.Expanded {
		c.out.Printf("Collapsed entry %s\n", args[0])
	} else {
		c.out.Printf("Expanded entry %s\n", args[0])
	}
	return nil
}

// entryAtPosition resolves a one-based form position to its draft entry
func entryAtPosition(ctx context.Context, manager *form.Manager, arg string) (domain.TaskEntry, error) {
	position, err := strconv.Atoi(arg)
	if err != nil {
		return domain.TaskEntry{}, errors.NewInvalidInputError("entry", arg, "entry number must be an integer")
	}

	entries, err := manager.Entries(ctx)
	if err != nil {
		return domain.TaskEntry{}, err
	}
	if position < 1 || position > len(entries) {
		return domain.TaskEntry{}, errors.NewNotFoundError("entry", arg)
	}
	return entries[position-1], nil
}

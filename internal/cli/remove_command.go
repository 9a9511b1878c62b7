package cli

import (
	"context"

	"task-entry/internal/errors"
	"task-entry/internal/form"
)

// RemoveCommand handles the remove command
type RemoveCommand struct {
	form         *form.Manager
	errorHandler *ErrorHandler
	out          printer
}

// NewRemoveCommand creates a new remove command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{
		form:         app.form,
		errorHandler: NewErrorHandler(),
		out:          newPrinter(app.out),
	}
}

// Execute runs the remove command
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "remove", "usage: te remove <n>")
	}

	entry, err := entryAtPosition(ctx, c.form, args[0])
	if err != nil {
		return c.errorHandler.Handle("remove entry", err)
	}

	removed, err := c.form.RemoveEntry(ctx, entry.ID)
	if err != nil {
		return c.errorHandler.Handle("remove entry", err)
	}

	if removed {
		c.out.Printf("Removed entry %s\n", args[0])
	} else {
		c.out.Println("Removal cancelled")
	}
	return nil
}

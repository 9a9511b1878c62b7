package cli

import (
	"context"
	"strings"

	"task-entry/internal/errors"
	"task-entry/internal/form"
)

// SetCommand handles the set command for editing draft fields
type SetCommand struct {
	form         *form.Manager
	errorHandler *ErrorHandler
	out          printer
}

// NewSetCommand creates a new set command handler
func NewSetCommand(app *App) *SetCommand {
	return &SetCommand{
		form:         app.form,
		errorHandler: NewErrorHandler(),
		out:          newPrinter(app.out),
	}
}

// Execute runs the set command
func (c *SetCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.NewInvalidInputError("command", "set", "usage: te set <n> <field> <value>")
	}

	entry, err := entryAtPosition(ctx, c.form, args[0])
	if err != nil {
		return c.errorHandler.Handle("set field", err)
	}

	field := args[1]
	value := strings.Join(args[2:], " ")

	if err := c.form.SetField(ctx, entry.ID, field, value); err != nil {
		return c.errorHandler.Handle("set field", err)
	}

	c.out.Printf("Set %s on entry %s\n", field, args[0])
	return nil
}

package cli

import (
	"context"

	"task-entry/internal/errors"
	"task-entry/internal/form"
)

// AttachCommand handles the attach command
type AttachCommand struct {
	form         *form.Manager
	errorHandler *ErrorHandler
	out          printer
}

// NewAttachCommand creates a new attach command handler
func NewAttachCommand(app *App) *AttachCommand {
	return &AttachCommand{
		form:         app.form,
		errorHandler: NewErrorHandler(),
		out:          newPrinter(app.out),
	}
}

// Execute runs the attach command
func (c *AttachCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "attach", "usage: te attach <n> <path> or te attach <n> --clear")
	}

	entry, err := entryAtPosition(ctx, c.form, args[0])
	if err != nil {
		return c.errorHandler.Handle("attach file", err)
	}

	if args[1] == "--clear" {
		if err := c.form.ClearAttachment(ctx, entry.ID); err != nil {
			return c.errorHandler.Handle("clear attachment", err)
		}
		c.out.Printf("Cleared attachment on entry %s\n", args[0])
		return nil
	}

	if err := c.form.AttachFile(ctx, entry.ID, args[1]); err != nil {
		return c.errorHandler.Handle("attach file", err)
	}

	c.out.Printf("Attached %s to entry %s\n", args[1], args[0])
	return nil
}

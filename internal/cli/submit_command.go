package cli

import (
	"context"

	"task-entry/internal/errors"
)

// SubmitCommand handles the submit command
type SubmitCommand struct {
	app          *App
	errorHandler *ErrorHandler
	out          printer
}

// NewSubmitCommand creates a new submit command handler
func NewSubmitCommand(app *App) *SubmitCommand {
	return &SubmitCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
		out:          newPrinter(app.out),
	}
}

// Execute runs the submit command
func (c *SubmitCommand) Execute(ctx context.Context, args []string) error {
	identity, err := c.app.Identity(ctx)
	if err != nil {
		return c.errorHandler.Handle("resolve employee", err)
	}
	if !identity.Resolved() {
		return errors.NewInvalidInputError("employee", "", "no employee id set; use --employee-id")
	}

	if err := c.app.form.Submit(ctx, identity); err != nil {
		return c.errorHandler.Handle("submit entries", err)
	}
	return nil
}

package cli

import (
	"context"
)

// ExitCommand handles the exit command, confirming before clearing the
// stored session
type ExitCommand struct {
	app          *App
	errorHandler *ErrorHandler
	out          printer
}

// NewExitCommand creates a new exit command handler
func NewExitCommand(app *App) *ExitCommand {
	return &ExitCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
		out:          newPrinter(app.out),
	}
}

// Execute runs the exit command
func (c *ExitCommand) Execute(ctx context.Context, args []string) error {
	if !c.app.notifier.Confirm("Are you sure you want to exit?") {
		c.out.Println("Exit cancelled")
		return nil
	}

	if err := c.app.session.Clear(); err != nil {
		return c.errorHandler.Handle("clear session", err)
	}

	c.out.Printf("Signed out. Sign in again at %s\n", c.app.config.Backend.SignInURL)
	return nil
}

package cli

import (
	"context"
)

// WhoamiCommand handles the whoami command
type WhoamiCommand struct {
	app          *App
	errorHandler *ErrorHandler
	out          printer
}

// NewWhoamiCommand creates a new whoami command handler
func NewWhoamiCommand(app *App) *WhoamiCommand {
	return &WhoamiCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
		out:          newPrinter(app.out),
	}
}

// Execute runs the whoami command
func (c *WhoamiCommand) Execute(ctx context.Context, args []string) error {
	identity, err := c.app.Identity(ctx)
	if err != nil {
		return c.errorHandler.Handle("resolve employee", err)
	}

	if !identity.Resolved() {
		c.out.Println("No employee id set. Pass --employee-id to sign in.")
		return nil
	}

	if identity.EmployeeName != "" {
		c.out.Printf("%s (%s)\n", identity.EmployeeName, identity.EmployeeID)
	} else {
		c.out.Printf("%s\n", identity.EmployeeID)
	}
	return nil
}

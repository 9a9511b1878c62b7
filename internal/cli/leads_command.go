package cli

import (
	"context"
)

// LeadsCommand handles the leads command
type LeadsCommand struct {
	app          *App
	errorHandler *ErrorHandler
	out          printer
}

// NewLeadsCommand creates a new leads command handler
func NewLeadsCommand(app *App) *LeadsCommand {
	return &LeadsCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
		out:          newPrinter(app.out),
	}
}

// Execute runs the leads command
func (c *LeadsCommand) Execute(ctx context.Context, args []string) error {
	leads := c.app.refdata.LoadTeamLeads(ctx)
	if len(leads) == 0 {
		c.out.Println("No team leads found")
		return nil
	}

	for _, lead := range leads {
		c.out.Println(lead)
	}
	return nil
}

package cli

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"task-entry/internal/domain"
	"task-entry/internal/errors"
)

// UnratedCommand handles the unrated command
type UnratedCommand struct {
	app          *App
	errorHandler *ErrorHandler
	out          printer
	maxWidth     int
	dateFormat   string
}

// NewUnratedCommand creates a new unrated command handler
func NewUnratedCommand(app *App) *UnratedCommand {
	return &UnratedCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
		out:          newPrinter(app.out),
		maxWidth:     app.config.Display.TableMaxWidth,
		dateFormat:   app.config.Display.DateFormat,
	}
}

// Execute runs the unrated command
func (c *UnratedCommand) Execute(ctx context.Context, args []string) error {
	identity, err := c.app.Identity(ctx)
	if err != nil {
		return c.errorHandler.Handle("resolve employee", err)
	}
	if !identity.Resolved() {
		return errors.NewInvalidInputError("employee", "", "no employee id set; use --employee-id")
	}

	if err := c.app.aggregator.Load(ctx, identity.EmployeeID); err != nil {
		return c.errorHandler.Handle("load unrated tasks", err)
	}

	if !c.app.aggregator.HasData() {
		c.out.Println("No unrated tasks")
		return nil
	}

	dateHeader := color.New(color.FgGreen, color.Bold)
	for _, dateKey := range c.app.aggregator.SortedDateKeys() {
		tasks, _ := c.app.aggregator.Group(dateKey)
		c.out.Println(dateHeader.Sprint(c.formatDate(dateKey)))

		table := uitable.New()
		table.MaxColWidth = uint(c.maxWidth)
		table.AddRow("  #", "DESCRIPTION", "STATUS", "HOURS", "EXTRA", "PR")
		for i, task := range tasks {
			table.AddRow(i+1, task.Description, task.Status, task.Hours, task.ExtraHours, task.PRLink)
		}
		c.out.Println(table)
	}
	return nil
}

func (c *UnratedCommand) formatDate(dateKey string) string {
	if c.dateFormat == "" {
		return dateKey
	}
	t, err := time.Parse(domain.DateKeyFormat, dateKey)
	if err != nil {
		return dateKey
	}
	return t.Format(c.dateFormat)
}

package cli

import (
	"context"

	"github.com/gosuri/uitable"

	"task-entry/internal/form"
)

// ListCommand handles the list command
type ListCommand struct {
	form         *form.Manager
	errorHandler *ErrorHandler
	out          printer
	maxWidth     int
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		form:         app.form,
		errorHandler: NewErrorHandler(),
		out:          newPrinter(app.out),
		maxWidth:     app.config.Display.TableMaxWidth,
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	entries, err := c.form.Entries(ctx)
	if err != nil {
		return c.errorHandler.Handle("list entries", err)
	}

	table := uitable.New()
	table.MaxColWidth = uint(c.maxWidth)
	table.AddRow("#", "DATE", "PROJECT", "TITLE", "STATUS", "HOURS", "")

	for i, entry := range entries {
		marker := ""
		if entry.Expanded {
			marker = "open"
		}
		if entry.HasAttachment() {
			if marker != "" {
				marker += ", "
			}
			marker += "attached"
		}
		table.AddRow(i+1, entry.Date, entry.Project, entry.Title, entry.Status, entry.Hours, marker)
	}

	c.out.Println(table)
	return nil
}

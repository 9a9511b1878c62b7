package cli

import (
	"bufio"
	"context"
	"strconv"
	"strings"

	"github.com/gosuri/uitable"

	"task-entry/internal/domain"
	"task-entry/internal/errors"
)

// EditCommand handles the edit command: an interactive batch edit of
// one date group of unrated tasks
type EditCommand struct {
	app          *App
	errorHandler *ErrorHandler
	out          printer
	maxWidth     int
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
		out:          newPrinter(app.out),
		maxWidth:     app.config.Display.TableMaxWidth,
	}
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "edit", "usage: te edit <date> (YYYY-MM-DD)")
	}
	dateKey := args[0]

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

	if err := c.app.editor.Open(dateKey); err != nil {
		return c.errorHandler.Handle("open date group", err)
	}

	return c.editLoop(ctx, identity.EmployeeID)
}

// editLoop reads edit instructions line by line until the user submits
// or quits. Edits apply only to the snapshot; nothing reaches the
// backend before 'submit'.
func (c *EditCommand) editLoop(ctx context.Context, employeeID string) error {
	scanner := bufio.NewScanner(c.app.in)

	for c.app.editor.IsOpen() {
		c.printSnapshot()
		c.out.Printf("Enter '<task#> <field> <value>' to edit, 'submit' to save all, or 'q' to quit: ")

		if !scanner.Scan() {
			c.app.editor.Close()
			c.out.Println("\nEdit cancelled")
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "q" || line == "Q":
			c.app.editor.Close()
			c.out.Println("Edit cancelled")
			return nil
		case line == "submit":
			if err := c.app.editor.SubmitAll(ctx, employeeID); err != nil {
				return c.errorHandler.Handle("update tasks", err)
			}
		case line == "":
			// Ignore blank lines.
		default:
			if err := c.applyEdit(line); err != nil {
				c.out.Printf("%s\n", err)
			}
		}
	}
	return nil
}

// applyEdit parses "<task#> <field> <value>" and applies it to the snapshot
func (c *EditCommand) applyEdit(line string) error {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 3 {
		return errors.NewInvalidInputError("edit", line, "expected '<task#> <field> <value>'")
	}

	index, err := strconv.Atoi(parts[0])
	if err != nil {
		return errors.NewInvalidInputError("task", parts[0], "task number must be an integer")
	}

	if !domain.IsEditableField(parts[1]) {
		return errors.NewInvalidInputError("field", parts[1], "editable fields: "+strings.Join(domain.EditableFields, ", "))
	}

	if !c.app.editor.UpdateField(index-1, parts[1], parts[2]) {
		return errors.NewInvalidInputError("task", parts[0], "no task at that number")
	}
	return nil
}

// printSnapshot renders the working copy being edited
func (c *EditCommand) printSnapshot() {
	snapshot := c.app.editor.Snapshot()
	if snapshot == nil {
		return
	}

	c.out.Printf("Editing tasks for %s\n", snapshot.Date)
	table := uitable.New()
	table.MaxColWidth = uint(c.maxWidth)
	table.AddRow("#", "TASK ID", "DESCRIPTION", "STATUS", "HOURS", "EXTRA", "PR")
	for i, task := range snapshot.Tasks {
		table.AddRow(i+1, task.TaskID, task.Description, task.Status, task.Hours, task.ExtraHours, task.PRLink)
	}
	c.out.Println(table)
}

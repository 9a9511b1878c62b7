package cli

import (
	"context"
	"fmt"
	"io"

	"task-entry/internal/form"
)

// AddCommand handles the add command
type AddCommand struct {
	form         *form.Manager
	errorHandler *ErrorHandler
	out          printer
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		form:         app.form,
		errorHandler: NewErrorHandler(),
		out:          newPrinter(app.out),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if _, err := c.form.AddEntry(ctx); err != nil {
		return c.errorHandler.Handle("add entry", err)
	}

	entries, err := c.form.Entries(ctx)
	if err != nil {
		return c.errorHandler.Handle("list entries", err)
	}

	c.out.Printf("Added entry %d (now expanded)\n", len(entries))
	return nil
}

// printer writes command output. It exists so tests can capture it.
type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) printer {
	return printer{w: w}
}

func (p printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}

func (p printer) Println(args ...interface{}) {
	fmt.Fprintln(p.w, args...)
}

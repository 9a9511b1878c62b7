package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"task-entry/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "te",
		Short: "A command-line client for daily work-task entry",
		Long: `Task Entry (te) is a command-line client for recording daily work
tasks against the employee rating backend.

FEATURES:
  • Compose a batch of draft entries that survives between invocations
  • Attach evidence files to individual entries
  • Submit the whole batch in one request
  • Browse your unrated tasks grouped by work date
  • Batch-edit one day's unrated tasks and push all updates at once

EXAMPLES:
  te --employee-id 42 whoami               # Sign in and show who you are
  te add                                   # Append a blank draft entry
  te set 1 taskTitle "Fix login redirect"  # Fill in a field
  te set 1 date 2024-05-03                 # Only the first entry needs a date
  te attach 1 ./screenshot.png             # Attach evidence to an entry
  te submit                                # Validate and submit the batch
  te unrated                               # Show unrated tasks by date
  te edit 2024-05-03                       # Batch-edit one day's tasks
  te exit                                  # Clear the stored session

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Backend Configuration:
    TE_BACKEND_BASE_URL                    Backend base URL
    TE_BACKEND_AUTH_TOKEN                  Backend auth token
    TE_BACKEND_REQUEST_TIMEOUT             Request timeout (default: 30s)
    TE_BACKEND_SIGNIN_URL                  Sign-in page URL

  Session Configuration:
    TE_SESSION_DIR                         Session store directory (default: ~/.te/session)

  Drafts Configuration:
    TE_DRAFTS_DIR                          Draft database directory (default: ~/.te)
    TE_DRAFTS_FILENAME                     Draft database filename (default: drafts.db)
    TE_DRAFTS_QUERY_TIMEOUT                Query timeout (default: 10s)
    TE_DRAFTS_WRITE_TIMEOUT                Write timeout (default: 5s)

  Display Configuration:
    TE_DISPLAY_DATE_FORMAT                 Date display format (default: Mon, Jan 2)
    TE_DISPLAY_TABLE_MAX_WIDTH             Max table column width (default: 80)

  Application Configuration:
    TE_APP_TIMEOUT                         Application timeout (default: 60s)
    TE_APP_VERBOSE                         Enable verbose output (default: false)

ENTRY FIELDS:
  date, project, teamLead, taskTitle, description, reference, prLink,
  status, hours, extraHours

GETTING HELP:
  te [command] --help                      # Get help for any specific command
  te completion bash                       # Generate bash completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Identity
	flags.String("employee-id", "", "Employee id (overrides the stored session value)")

	// Backend configuration
	flags.String("base-url", "", "Backend base URL (overrides TE_BACKEND_BASE_URL)")
	flags.String("auth-token", "", "Backend auth token (overrides TE_BACKEND_AUTH_TOKEN)")
	flags.Duration("request-timeout", 0, "Backend request timeout (overrides TE_BACKEND_REQUEST_TIMEOUT)")

	// Session configuration
	flags.String("session-dir", "", "Session store directory (overrides TE_SESSION_DIR)")

	// Drafts configuration
	flags.String("drafts-dir", "", "Draft database directory (overrides TE_DRAFTS_DIR)")
	flags.String("drafts-filename", "", "Draft database filename (overrides TE_DRAFTS_FILENAME)")

	// Display configuration
	flags.Int("table-max-width", 0, "Maximum table column width (overrides TE_DISPLAY_TABLE_MAX_WIDTH)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TE_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TE_APP_VERBOSE)")
}

// commandSpec describes one registry command surfaced through cobra
type commandSpec struct {
	use         string
	short       string
	long        string
	args        cobra.PositionalArgs
	name        string
	interactive bool
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	specs := []commandSpec{
		{
			use:   "add",
			short: "Append a blank draft entry",
			long:  "Append a blank draft entry to the form. The new entry becomes the expanded one.",
			args:  cobra.NoArgs,
			name:  "add",
		},
		{
			use:   "list",
			short: "List draft entries",
			long:  "List the draft entries of the form in order, marking the expanded entry and any attachments.",
			args:  cobra.NoArgs,
			name:  "list",
		},
		{
			use:   "open [n]",
			short: "Expand or collapse a draft entry",
			long:  "Expand the given draft entry, collapsing any other. Running it on the already expanded entry collapses it.",
			args:  cobra.ExactArgs(1),
			name:  "open",
		},
		{
			use:   "set [n] [field] [value]",
			short: "Set a field on a draft entry",
			long: `Set one field of a draft entry.

Fields: date, project, teamLead, taskTitle, description, reference,
prLink, status, hours, extraHours

Examples:
  te set 1 date 2024-05-03
  te set 1 taskTitle "Fix login redirect"
  te set 2 hours 6`,
			args: cobra.MinimumNArgs(3),
			name: "set",
		},
		{
			use:   "attach [n] [path]",
			short: "Attach a file to a draft entry",
			long: `Attach a file on disk to a draft entry. The file is uploaded with
the batch when the form is submitted.

Use 'te attach <n> --clear' to remove the attachment.`,
			args: cobra.RangeArgs(1, 2),
			name: "attach",
		},
		{
			use:   "remove [n]",
			short: "Remove a draft entry",
			long:  "Remove a draft entry after confirmation.",
			args:  cobra.ExactArgs(1),
			name:  "remove",
		},
		{
			use:   "submit",
			short: "Submit all draft entries",
			long: `Validate every draft entry and submit the batch to the backend in a
single request. On success the form resets to one blank entry.`,
			args: cobra.NoArgs,
			name: "submit",
		},
		{
			use:   "unrated",
			short: "Show unrated tasks grouped by date",
			long:  "Show your tasks that have not been rated yet, grouped by work date with the newest date first.",
			args:  cobra.NoArgs,
			name:  "unrated",
		},
		{
			use:   "edit [date]",
			short: "Batch-edit one day's unrated tasks",
			long: `Interactively edit the unrated tasks of one work date (YYYY-MM-DD).
Edits accumulate locally and are pushed together with 'submit'.

Example:
  te edit 2024-05-03`,
			args:        cobra.ExactArgs(1),
			name:        "edit",
			interactive: true,
		},
		{
			use:   "whoami",
			short: "Show the active employee",
			long:  "Show the employee id and name the client is operating as.",
			args:  cobra.NoArgs,
			name:  "whoami",
		},
		{
			use:   "leads",
			short: "List team leads",
			long:  "List the team leads from the employee roster, sorted by name.",
			args:  cobra.NoArgs,
			name:  "leads",
		},
		{
			use:   "exit",
			short: "Clear the stored session",
			long:  "Clear the stored employee session after confirmation and show where to sign in again.",
			args:  cobra.NoArgs,
			name:  "exit",
			interactive: true,
		},
	}

	for _, spec := range specs {
		spec := spec
		cmd := &cobra.Command{
			Use:   spec.use,
			Short: spec.short,
			Long:  spec.long,
			Args:  spec.args,
			RunE: func(cmd *cobra.Command, args []string) error {
				timeout := r.getAppTimeout()
				if spec.interactive {
					// Interactive commands may need longer for user input
					timeout *= 2
				}
				ctx, cancel := context.WithTimeout(context.Background(), timeout)
				defer cancel()

				employeeID, _ := r.cmd.PersistentFlags().GetString("employee-id")
				app, err := NewApp(r.config, employeeID)
				if err != nil {
					return err
				}
				defer app.Close()

				if clear, _ := cmd.Flags().GetBool("clear"); clear {
					args = append(args, "--clear")
				}
				return app.registry.Execute(ctx, spec.name, args)
			},
		}
		if spec.name == "attach" {
			cmd.Flags().Bool("clear", false, "Remove the attachment from the entry")
		}
		r.cmd.AddCommand(cmd)
	}
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	// Backend configuration
	if baseURL, _ := flags.GetString("base-url"); baseURL != "" {
		r.config.Backend.BaseURL = baseURL
	}
	if authToken, _ := flags.GetString("auth-token"); authToken != "" {
		r.config.Backend.AuthToken = authToken
	}
	if requestTimeout, _ := flags.GetDuration("request-timeout"); requestTimeout > 0 {
		r.config.Backend.RequestTimeout = requestTimeout
	}

	// Session configuration
	if sessionDir, _ := flags.GetString("session-dir"); sessionDir != "" {
		r.config.Session.Dir = sessionDir
	}

	// Drafts configuration
	if draftsDir, _ := flags.GetString("drafts-dir"); draftsDir != "" {
		r.config.Drafts.Dir = draftsDir
	}
	if draftsFilename, _ := flags.GetString("drafts-filename"); draftsFilename != "" {
		r.config.Drafts.Filename = draftsFilename
	}

	// Display configuration
	if tableMaxWidth, _ := flags.GetInt("table-max-width"); tableMaxWidth > 0 {
		r.config.Display.TableMaxWidth = tableMaxWidth
	}

	// Application configuration
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}

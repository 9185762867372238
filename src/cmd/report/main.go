// Package main provides the report CLI, which prints the ten most recent
// transactions from a Plaid sync database.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"plaid-report/src/config"
	"plaid-report/src/logger"
	"plaid-report/src/render"
	"plaid-report/src/report"
	"plaid-report/src/store"
)

// newRootCmd builds the report command. program is the name shown in the
// usage line.
func newRootCmd(program string, stdout, stderr io.Writer) *cobra.Command {
	var (
		format  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   program + " <database-file>",
		Short: "Print the ten most recent transactions from a Plaid sync database",
		Long: `Opens a SQLite database written by a Plaid transaction sync and prints
the ten most recent rows of the transactions table, newest first: the created
timestamp followed by the name and amount fields of the plaid_json payload.

The database is opened read-only. Output defaults to the sqlite3 shell's list
format (pipe separated, no header).

Example:
  report transactions.db
  report --format table transactions.db`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(program, args, format, verbose)
			if err != nil {
				return err
			}
			return runReport(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(*cobra.Command, error) error {
		return &config.UsageError{Program: program}
	})

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatList, "Output format: list, table or json")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostic logs to stderr")

	return cmd
}

func runReport(ctx context.Context, cfg *config.Config, w io.Writer) error {
	log := logger.New(cfg.Verbose)

	renderer, err := render.New(cfg.Format)
	if err != nil {
		return err
	}

	log.Info("opening %s", cfg.DatabasePath)
	st, err := store.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		log.Error("%v", err)
		return err
	}
	defer st.Close()

	if err := report.New(st, renderer, log).Run(ctx, w); err != nil {
		log.Error("%v", err)
		return err
	}
	return nil
}

// run executes the command and returns the process exit code.
func run(program string, args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(program, stdout, stderr)
	cmd.SetArgs(args)

	// -h/--help is not a separate mode: it gets the usage line like any
	// other invocation that is not exactly one path.
	helpRequested := false
	cmd.SetHelpFunc(func(*cobra.Command, []string) {
		helpRequested = true
	})

	err := cmd.ExecuteContext(context.Background())
	if helpRequested {
		err = &config.UsageError{Program: program}
	}

	var usageErr *config.UsageError
	switch {
	case errors.As(err, &usageErr):
		fmt.Fprintln(stdout, usageErr.Error())
		return 1
	case err != nil:
		fmt.Fprintf(stderr, "Error: %v\n", rootCause(err))
		return 1
	}
	return 0
}

// rootCause returns the innermost wrapped error, which for database
// failures is the engine's own message.
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

func main() {
	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr))
}

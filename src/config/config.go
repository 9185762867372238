// Package config resolves a report invocation into a validated Config.
package config

import (
	"fmt"
	"strings"
)

// RowLimit is the number of most recent transactions the report prints.
const RowLimit = 10

// Output formats accepted by --format.
const (
	FormatList  = "list"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config holds the settings for one report invocation.
type Config struct {
	// DatabasePath is the SQLite file to read.
	DatabasePath string
	// Format selects the renderer.
	Format string
	// Verbose enables diagnostic logging on stderr.
	Verbose bool
}

// UsageError reports that the command was invoked with the wrong arguments.
type UsageError struct {
	Program string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Usage: %s <database-file>", e.Program)
}

// New builds a Config from the positional arguments and flag values.
// Exactly one positional argument is accepted.
func New(program string, args []string, format string, verbose bool) (*Config, error) {
	if len(args) != 1 {
		return nil, &UsageError{Program: program}
	}

	cfg := &Config{
		DatabasePath: args[0],
		Format:       strings.ToLower(strings.TrimSpace(format)),
		Verbose:      verbose,
	}
	if cfg.Format == "" {
		cfg.Format = FormatList
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the format name. The database path is not checked.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatList, FormatTable, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", c.Format, FormatList, FormatTable, FormatJSON)
	}
}

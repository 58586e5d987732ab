package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/toaddb/toaddb/internal/version"
)

// Config represents the configuration for the toadDB CLI.
type Config struct {
	Database    string        `arg:"positional,env:TOADDB_DATABASE" help:"Path to the SQLite database file, created if missing" default:"toad.db"`
	LogFile     string        `arg:"--log-file,env:TOADDB_LOG_FILE" help:"File to append JSON logs to; leave empty to log to stderr"`
	BusyTimeout time.Duration `arg:"--busy-timeout,env:TOADDB_BUSY_TIMEOUT" help:"How long the engine waits on a locked database. Valid time units are ns, us (or µs), ms, s, m, h" default:"5s"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.CLIVersion())
}

// MustParse parses and validates the configuration from the command
// line arguments. It returns a Config struct or exits the program
// with an error.
func MustParse(args []string) Config {
	cfg := Config{}

	parser, err := arg.NewParser(
		arg.Config{},
		&cfg,
	)
	if err != nil {
		log.Fatal(err)
	}
	parser.MustParse(args[1:])

	if err := validateDatabasePath(cfg.Database); err != nil {
		log.Fatal(err)
	}

	if err := validateBusyTimeout(cfg.BusyTimeout); err != nil {
		log.Fatal(err)
	}

	return cfg
}

// validateDatabasePath validates that path can hold a database file.
func validateDatabasePath(path string) error {
	if path == "" {
		return errors.New("database path must not be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		// The file not existing yet is fine, the engine creates it.
		return nil
	}
	if info.IsDir() {
		return fmt.Errorf("database path %s is a directory", path)
	}
	return nil
}

// validateBusyTimeout validates that timeout is greater than zero.
func validateBusyTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		return errors.New("invalid busy timeout, must be greater than zero")
	}
	return nil
}

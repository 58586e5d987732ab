// Package manager provides the SQLite integration for toadDB. A Manager
// owns a single connection to a named database file and forwards four
// operations to it: create table, insert row, fetch rows, close.
package manager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/toaddb/toaddb/internal/log"
	"github.com/toaddb/toaddb/internal/validate"
)

// Config represents the configuration for a Manager instance.
type Config struct {
	// Logger is the shared toadDB logger.
	Logger log.Logger
	// Path is the path to the SQLite database file. The file is created
	// if it does not exist.
	Path string
	// BusyTimeout is how long the engine waits on a locked database
	// before giving up. Defaults to 5 seconds.
	BusyTimeout time.Duration
}

// Manager owns one open connection to a SQLite database file for its
// whole lifetime. It is meant to be used serially by a single caller;
// once Close is called there is no way back to the open state, and any
// further operation surfaces the engine's closed-handle error.
type Manager struct {
	Config
	id    string
	conn  *sql.DB
	stats managerStats
}

func createDSN(dbPath string, busyTimeout time.Duration) string {
	qp := url.Values{}
	qp.Add("_foreign_keys", "true")
	qp.Add("_busy_timeout", fmt.Sprintf("%d", busyTimeout.Milliseconds()))

	return fmt.Sprintf("file:%s?%s", dbPath, qp.Encode())
}

// New opens (or creates) the named SQLite database file and returns a
// Manager bound to it. An open failure propagates to the caller.
func New(config Config) (*Manager, error) {
	if !config.Logger.IsInitialized() {
		return nil, errors.New("logger is required")
	}
	if config.Path == "" {
		return nil, errors.New("database path is required")
	}
	if config.BusyTimeout <= 0 {
		config.BusyTimeout = 5 * time.Second
	}

	conn, err := sql.Open("sqlite3", createDSN(config.Path, config.BusyTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection, never recycled: the Go analogue of holding a
	// single connection/cursor pair.
	conn.SetConnMaxIdleTime(0)
	conn.SetConnMaxLifetime(0)
	conn.SetMaxIdleConns(1)
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	m := &Manager{
		Config: config,
		id:     uuid.NewString(),
		conn:   conn,
	}
	m.stats.start()

	config.Logger.InfoNs(log.NsManager, "database opened", log.KV{
		"manager": m.id,
		"path":    config.Path,
	})
	return m, nil
}

// CreateTable creates a table with the given name and column definitions.
// Column definitions are passed through verbatim; the engine enforces
// their syntax. Repeated calls with the same name are no-ops.
func (m *Manager) CreateTable(ctx context.Context, name string, columns []string) error {
	if err := validate.Identifier(name); err != nil {
		m.logError("refusing to create table", err, log.KV{"table": name})
		return err
	}

	stmt := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s)",
		name, strings.Join(columns, ", "),
	)
	if _, err := m.conn.ExecContext(ctx, stmt); err != nil {
		m.logError("failed to create table", err, log.KV{"table": name})
		return fmt.Errorf("failed to create table %s: %w", name, err)
	}

	m.stats.tableCreated()
	m.Logger.DebugNs(log.NsManager, "table created", log.KV{
		"manager": m.id,
		"table":   name,
	})
	return nil
}

// InsertData inserts one row into the given table. Values are bound
// through placeholders, one per value, so the row must match the table's
// column count and order.
func (m *Manager) InsertData(ctx context.Context, table string, values []any) error {
	if err := validate.Identifier(table); err != nil {
		m.logError("refusing to insert", err, log.KV{"table": table})
		return err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
	stmt := fmt.Sprintf("INSERT INTO %s VALUES (%s)", table, placeholders)
	if _, err := m.conn.ExecContext(ctx, stmt, values...); err != nil {
		m.logError("failed to insert row", err, log.KV{"table": table})
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	m.stats.rowInserted()
	return nil
}

// FetchData returns every row of the given table, in engine order. A
// non-empty condition is appended verbatim as a WHERE clause; it is not
// parameterized, so it must come from a trusted caller. The whole result
// is materialized in memory.
func (m *Manager) FetchData(ctx context.Context, table string, condition string) (Rows, error) {
	if err := validate.Identifier(table); err != nil {
		m.logError("refusing to fetch", err, log.KV{"table": table})
		return Rows{}, err
	}

	stmt := "SELECT * FROM " + table
	if condition != "" {
		stmt += " WHERE " + condition
	}

	rows, err := m.conn.QueryContext(ctx, stmt)
	if err != nil {
		m.logError("failed to fetch rows", err, log.KV{"table": table})
		return Rows{}, fmt.Errorf("failed to fetch from %s: %w", table, err)
	}
	defer rows.Close()

	result, err := scanRows(rows)
	if err != nil {
		m.logError("failed to scan rows", err, log.KV{"table": table})
		return Rows{}, fmt.Errorf("failed to fetch from %s: %w", table, err)
	}

	m.stats.fetchRan()
	return result, nil
}

// Close closes the connection to the database. The Manager holds no
// usable handle afterwards; it is not reopened automatically.
func (m *Manager) Close() error {
	if err := m.conn.Close(); err != nil {
		m.logError("failed to close connection", err, nil)
		return fmt.Errorf("failed to close connection: %w", err)
	}

	m.Logger.InfoNs(log.NsManager, "database closed", log.KV{
		"manager": m.id,
		"path":    m.Path,
	})
	return nil
}

// Stats returns a snapshot of the operation counters for this Manager.
func (m *Manager) Stats() Stats {
	return m.stats.snapshot()
}

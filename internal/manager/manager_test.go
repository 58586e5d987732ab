package manager

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toaddb/toaddb/internal/log"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := New(Config{
		Logger: log.NewLogger(io.Discard),
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = m.Close()
	})
	return m
}

func createStudents(t *testing.T, m *Manager) {
	t.Helper()

	ctx := context.Background()
	err := m.CreateTable(ctx, "students", []string{
		"id INTEGER PRIMARY KEY",
		"name TEXT",
		"age INTEGER",
	})
	require.NoError(t, err)
}

func TestNew(t *testing.T) {
	t.Run("missing logger", func(t *testing.T) {
		_, err := New(Config{Path: "test.db"})
		assert.EqualError(t, err, "logger is required")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := New(Config{Logger: log.NewLogger(io.Discard)})
		assert.EqualError(t, err, "database path is required")
	})

	t.Run("creates the database file", func(t *testing.T) {
		m := newTestManager(t)
		assert.NotNil(t, m)
	})
}

func TestCreateTable(t *testing.T) {
	t.Run("is idempotent", func(t *testing.T) {
		m := newTestManager(t)
		createStudents(t, m)
		createStudents(t, m)

		rows, err := m.FetchData(context.Background(), "sqlite_master", "type = 'table' AND name = 'students'")
		require.NoError(t, err)
		assert.Len(t, rows.Values, 1)
	})

	t.Run("rejects unsafe table names", func(t *testing.T) {
		m := newTestManager(t)
		err := m.CreateTable(context.Background(), "students; DROP TABLE students", []string{"id INTEGER"})
		assert.ErrorContains(t, err, "invalid identifier")
	})

	t.Run("propagates engine errors", func(t *testing.T) {
		m := newTestManager(t)
		err := m.CreateTable(context.Background(), "broken", []string{"id NOT A TYPE ((("})
		require.Error(t, err)

		var engineErr sqlite3.Error
		assert.True(t, errors.As(err, &engineErr))
	})
}

func TestInsertFetchRoundTrip(t *testing.T) {
	m := newTestManager(t)
	createStudents(t, m)
	ctx := context.Background()

	require.NoError(t, m.InsertData(ctx, "students", []any{1, "Alice", 25}))
	require.NoError(t, m.InsertData(ctx, "students", []any{2, "Bob", 22}))

	rows, err := m.FetchData(ctx, "students", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "age"}, rows.Columns)
	assert.Equal(t, []string{"integer", "text", "integer"}, rows.Types)
	assert.Equal(t, [][]any{
		{int64(1), "Alice", int64(25)},
		{int64(2), "Bob", int64(22)},
	}, rows.Values)
}

func TestFetchData(t *testing.T) {
	m := newTestManager(t)
	createStudents(t, m)
	ctx := context.Background()

	require.NoError(t, m.InsertData(ctx, "students", []any{1, "Alice", 25}))
	require.NoError(t, m.InsertData(ctx, "students", []any{2, "Bob", 22}))

	t.Run("with matching condition", func(t *testing.T) {
		rows, err := m.FetchData(ctx, "students", "age > 23")
		require.NoError(t, err)
		assert.Equal(t, [][]any{{int64(1), "Alice", int64(25)}}, rows.Values)
	})

	t.Run("condition matching no rows returns empty result", func(t *testing.T) {
		rows, err := m.FetchData(ctx, "students", "age > 100")
		require.NoError(t, err)
		assert.Empty(t, rows.Values)
	})

	t.Run("condition on unknown column is an engine error", func(t *testing.T) {
		_, err := m.FetchData(ctx, "students", "grade > 5")
		require.Error(t, err)

		var engineErr sqlite3.Error
		assert.True(t, errors.As(err, &engineErr))
	})

	t.Run("unknown table is an engine error", func(t *testing.T) {
		_, err := m.FetchData(ctx, "teachers", "")
		require.Error(t, err)

		var engineErr sqlite3.Error
		assert.True(t, errors.As(err, &engineErr))
	})

	t.Run("rejects unsafe table names", func(t *testing.T) {
		_, err := m.FetchData(ctx, "students WHERE 1=1; --", "")
		assert.ErrorContains(t, err, "invalid identifier")
	})
}

func TestInsertData(t *testing.T) {
	m := newTestManager(t)
	createStudents(t, m)
	ctx := context.Background()

	t.Run("wrong arity is an engine error", func(t *testing.T) {
		err := m.InsertData(ctx, "students", []any{1, "Alice"})
		require.Error(t, err)

		var engineErr sqlite3.Error
		assert.True(t, errors.As(err, &engineErr))
	})

	t.Run("primary key conflict is an engine error", func(t *testing.T) {
		require.NoError(t, m.InsertData(ctx, "students", []any{1, "Alice", 25}))
		err := m.InsertData(ctx, "students", []any{1, "Alice", 25})
		require.Error(t, err)

		var engineErr sqlite3.Error
		require.True(t, errors.As(err, &engineErr))
		assert.Equal(t, sqlite3.ErrConstraint, engineErr.Code)
	})
}

func TestOperationsAfterClose(t *testing.T) {
	m := newTestManager(t)
	createStudents(t, m)
	ctx := context.Background()

	require.NoError(t, m.Close())

	assert.Error(t, m.CreateTable(ctx, "teachers", []string{"id INTEGER"}))
	assert.Error(t, m.InsertData(ctx, "students", []any{1, "Alice", 25}))

	_, err := m.FetchData(ctx, "students", "")
	require.Error(t, err)
	assert.Equal(t, categoryEngine, categorize(err))
}

func TestExampleScenario(t *testing.T) {
	m := newTestManager(t)
	createStudents(t, m)
	ctx := context.Background()

	require.NoError(t, m.InsertData(ctx, "students", []any{1, "Alice", 25}))
	require.NoError(t, m.InsertData(ctx, "students", []any{2, "Bob", 22}))

	all, err := m.FetchData(ctx, "students", "")
	require.NoError(t, err)
	assert.Equal(t, [][]any{
		{int64(1), "Alice", int64(25)},
		{int64(2), "Bob", int64(22)},
	}, all.Values)

	over23, err := m.FetchData(ctx, "students", "age > 23")
	require.NoError(t, err)
	assert.Equal(t, [][]any{{int64(1), "Alice", int64(25)}}, over23.Values)
}

func TestStats(t *testing.T) {
	m := newTestManager(t)
	createStudents(t, m)
	ctx := context.Background()

	require.NoError(t, m.InsertData(ctx, "students", []any{1, "Alice", 25}))
	require.NoError(t, m.InsertData(ctx, "students", []any{2, "Bob", 22}))
	_, err := m.FetchData(ctx, "students", "")
	require.NoError(t, err)

	stats := m.Stats()
	assert.EqualValues(t, 1, stats.TablesCreated)
	assert.EqualValues(t, 2, stats.RowsInserted)
	assert.EqualValues(t, 1, stats.FetchQueries)
	assert.False(t, stats.StartedAt.IsZero())
	assert.False(t, stats.LastOperation.Before(stats.StartedAt))
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errorCategory
	}{
		{
			name:     "sqlite error",
			err:      sqlite3.Error{Code: sqlite3.ErrError},
			expected: categoryEngine,
		},
		{
			name:     "wrapped sqlite error",
			err:      errors.Join(errors.New("context"), sqlite3.Error{Code: sqlite3.ErrConstraint}),
			expected: categoryEngine,
		},
		{
			name:     "closed handle",
			err:      errors.New("sql: database is closed"),
			expected: categoryEngine,
		},
		{
			name:     "anything else",
			err:      errors.New("boom"),
			expected: categoryUncategorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, categorize(tt.err))
		})
	}
}

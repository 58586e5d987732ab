package manager

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/orsinium-labs/enum"
	"github.com/toaddb/toaddb/internal/log"
)

// errorCategory classifies failures for logging: errors raised by the
// embedded engine versus everything else. Errors are logged with their
// category and then propagated to the caller unchanged.
type errorCategory = enum.Member[string]

var (
	categoryEngine        = errorCategory{Value: "engine"}
	categoryUncategorized = errorCategory{Value: "uncategorized"}
)

// categorize maps an error to its category. Closed-handle errors from
// database/sql count as engine errors: they are what the driver surfaces
// when given a closed handle.
func categorize(err error) errorCategory {
	var engineErr sqlite3.Error
	switch {
	case errors.As(err, &engineErr):
		return categoryEngine
	case errors.Is(err, sql.ErrConnDone):
		return categoryEngine
	case strings.Contains(err.Error(), "database is closed"):
		return categoryEngine
	default:
		return categoryUncategorized
	}
}

func (m *Manager) logError(msg string, err error, keyVals log.KV) {
	kv := log.KV{
		"manager":  m.id,
		"category": categorize(err).Value,
		"error":    err.Error(),
	}
	for key, value := range keyVals {
		kv[key] = value
	}

	m.Logger.ErrorNs(log.NsManager, msg, kv)
}

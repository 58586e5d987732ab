package manager

import (
	"database/sql"
	"fmt"
	"strings"
)

// Rows represents a fully materialized query result.
type Rows struct {
	Columns []string
	Types   []string
	Values  [][]any
}

// scanRows drains the given sql.Rows into a Rows value, scanning every
// row into a generic []any tuple.
func scanRows(rows *sql.Rows) (Rows, error) {
	columns, err := rows.Columns()
	if err != nil {
		return Rows{}, fmt.Errorf("failed to get columns: %w", err)
	}

	types, typesOk := []string{}, false
	values := [][]any{}
	for rows.Next() {
		row := make([]any, len(columns))
		scans := make([]any, len(columns))
		for i := range scans {
			scans[i] = &row[i]
		}

		if err := rows.Scan(scans...); err != nil {
			return Rows{}, fmt.Errorf("failed to scan row: %w", err)
		}

		if !typesOk {
			enhancedTypes, err := columnTypes(rows, row)
			if err != nil {
				return Rows{}, fmt.Errorf("failed to get column types: %w", err)
			}
			types, typesOk = enhancedTypes, true
		}

		values = append(values, row)
	}
	if err := rows.Err(); err != nil {
		return Rows{}, fmt.Errorf("failed to read rows: %w", err)
	}

	return Rows{
		Columns: columns,
		Types:   types,
		Values:  values,
	}, nil
}

// columnTypes returns the column types for a query result.
//
// It tries to get the column types from the result, but if it has empty
// types, it tries infering them from the first row following the SQLite
// datatypes documentation https://www.sqlite.org/datatype3.html.
func columnTypes(rows *sql.Rows, singleRow []any) ([]string, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return []string{}, fmt.Errorf("failed to get column types: %w", err)
	}

	typeNames := make([]string, len(types))
	hasEmptyTypes := false
	for i, t := range types {
		typeNames[i] = strings.ToLower(t.DatabaseTypeName())
		if typeNames[i] == "" {
			hasEmptyTypes = true
		}
	}

	if !hasEmptyTypes {
		return typeNames, nil
	}

	for i := range typeNames {
		if typeNames[i] != "" {
			continue
		}

		switch singleRow[i].(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			typeNames[i] = "integer"
		case float32, float64:
			typeNames[i] = "real"
		case bool:
			typeNames[i] = "boolean"
		case []byte:
			typeNames[i] = "blob"
		case string:
			typeNames[i] = "text"
		default:
			typeNames[i] = ""
		}
	}

	return typeNames, nil
}

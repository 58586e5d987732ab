package repl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/orsinium-labs/enum"
)

// stmtKind represents the kind of a shell statement.
type stmtKind = enum.Member[string]

var (
	stmtCreate = stmtKind{Value: "create"}
	stmtInsert = stmtKind{Value: "insert"}
	stmtFetch  = stmtKind{Value: "fetch"}
)

// statement is a parsed shell statement, ready to be forwarded to the
// database manager.
type statement struct {
	kind      stmtKind
	table     string
	columns   []string
	values    []any
	condition string
}

// parseStatement parses one of the three shell statements:
//
//	create <table> (<column defs>)
//	insert <table> (<values>)
//	fetch <table> [where <condition>]
func parseStatement(input string) (statement, error) {
	trimmed := strings.TrimSpace(input)
	lower := strings.ToLower(trimmed)

	switch {
	case strings.HasPrefix(lower, "create "):
		return parseCreate(trimmed[len("create "):])
	case strings.HasPrefix(lower, "insert "):
		return parseInsert(trimmed[len("insert "):])
	case strings.HasPrefix(lower, "fetch "):
		return parseFetch(trimmed[len("fetch "):])
	}

	return statement{}, fmt.Errorf("unknown statement, expected create, insert or fetch")
}

func parseCreate(rest string) (statement, error) {
	table, inner, err := splitTableAndParens(rest)
	if err != nil {
		return statement{}, err
	}

	columns := splitTopLevel(inner)
	if len(columns) == 0 {
		return statement{}, fmt.Errorf("create needs at least one column definition")
	}

	return statement{
		kind:    stmtCreate,
		table:   table,
		columns: columns,
	}, nil
}

func parseInsert(rest string) (statement, error) {
	table, inner, err := splitTableAndParens(rest)
	if err != nil {
		return statement{}, err
	}

	tokens := splitTopLevel(inner)
	if len(tokens) == 0 {
		return statement{}, fmt.Errorf("insert needs at least one value")
	}

	values := make([]any, 0, len(tokens))
	for _, token := range tokens {
		value, err := parseValue(token)
		if err != nil {
			return statement{}, err
		}
		values = append(values, value)
	}

	return statement{
		kind:   stmtInsert,
		table:  table,
		values: values,
	}, nil
}

func parseFetch(rest string) (statement, error) {
	rest = strings.TrimSpace(rest)

	table, condition := rest, ""
	if idx := strings.Index(strings.ToLower(rest), " where "); idx >= 0 {
		table = strings.TrimSpace(rest[:idx])
		condition = strings.TrimSpace(rest[idx+len(" where "):])
	}

	if table == "" {
		return statement{}, fmt.Errorf("fetch needs a table name")
	}

	return statement{
		kind:      stmtFetch,
		table:     table,
		condition: condition,
	}, nil
}

// splitTableAndParens splits "<table> (<inner>)" into its two parts.
func splitTableAndParens(rest string) (string, string, error) {
	open := strings.Index(rest, "(")
	closing := strings.LastIndex(rest, ")")
	if open < 0 || closing < open {
		return "", "", fmt.Errorf("expected a parenthesized list, e.g. mytable (a, b, c)")
	}

	table := strings.TrimSpace(rest[:open])
	if table == "" {
		return "", "", fmt.Errorf("missing table name")
	}

	return table, rest[open+1 : closing], nil
}

// splitTopLevel splits s on commas that are not inside parentheses or
// quotes, trimming whitespace from each part.
func splitTopLevel(s string) []string {
	parts := []string{}
	depth := 0
	var quote rune
	start := 0

	for i, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			depth--
		case r == ',' && depth == 0:
			parts = append(parts, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}

	if rest := strings.TrimSpace(s[start:]); rest != "" {
		parts = append(parts, rest)
	}

	return parts
}

// parseValue turns a literal token into the Go value bound to the insert
// placeholder: NULL, integer, real, or text. Quoted text keeps its inner
// content with doubled quotes unescaped; a bare word is taken as text.
func parseValue(token string) (any, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("empty value")
	}

	if strings.EqualFold(token, "null") {
		return nil, nil
	}

	if len(token) >= 2 {
		if token[0] == '\'' && token[len(token)-1] == '\'' {
			return strings.ReplaceAll(token[1:len(token)-1], "''", "'"), nil
		}
		if token[0] == '"' && token[len(token)-1] == '"' {
			return strings.ReplaceAll(token[1:len(token)-1], `""`, `"`), nil
		}
	}

	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f, nil
	}

	return token, nil
}

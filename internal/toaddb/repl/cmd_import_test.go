package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{name: "integer", input: "42", expected: int64(42)},
		{name: "negative integer", input: "-7", expected: int64(-7)},
		{name: "real", input: "3.14", expected: 3.14},
		{name: "text", input: "Alice", expected: "Alice"},
		{name: "empty stays text", input: "", expected: ""},
		{name: "mixed stays text", input: "42abc", expected: "42abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, coerceField(tt.input))
		})
	}
}

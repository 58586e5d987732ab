package numutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntWithCommas(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{1000000, "1,000,000"},
		{1002003, "1,002,003"},
		{-12345, "-12,345"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, IntWithCommas(tt.input))
		})
	}
}

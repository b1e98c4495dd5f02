package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already normalized",
			input:    "hello",
			expected: "hello",
		},
		{
			name:     "surrounding whitespace and mixed case",
			input:    "  HeLLo \t",
			expected: "hello",
		},
		{
			name:     "inner whitespace kept",
			input:    " Ice Cream ",
			expected: "ice cream",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    " \n\t ",
			expected: "",
		},
		{
			name:     "non-ascii",
			input:    " ПРИВЕТ ",
			expected: "привет",
		},
		{
			name:     "newline padding",
			input:    "\nWorld\n",
			expected: "world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	inputs := []string{" Zebra", "APPLE ", "  mIxEd CaSe  ", "Straße"}

	for _, in := range inputs {
		once := NormalizeText(in)
		assert.Equal(t, once, NormalizeText(once), in)
	}
}

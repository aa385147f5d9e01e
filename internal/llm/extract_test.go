package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tagged json fence",
			input:    "```json\n{\"a\":1}\n```",
			expected: `{"a":1}`,
		},
		{
			name:     "tagged fence with surrounding commentary",
			input:    "Here is the structured output you asked for:\n```json\n{\"a\":1}\n```\nLet me know if you need anything else!",
			expected: `{"a":1}`,
		},
		{
			name:     "generic fence",
			input:    "```\n{\"a\":1}\n```",
			expected: `{"a":1}`,
		},
		{
			name:     "plain payload",
			input:    `{"a":1}`,
			expected: `{"a":1}`,
		},
		{
			name:     "plain payload with whitespace",
			input:    "  \n{\"a\":1}\n  ",
			expected: `{"a":1}`,
		},
		{
			name:     "tagged fence wins over generic fence",
			input:    "```\nnot this\n```\n```json\n{\"a\":1}\n```",
			expected: `{"a":1}`,
		},
		{
			name:     "not json at all",
			input:    "Sorry, I cannot help with that.",
			expected: "Sorry, I cannot help with that.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractJSON(tt.input))
		})
	}
}

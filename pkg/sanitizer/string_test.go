package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecotech/contactform/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes leading and trailing spaces",
			input:    "  hello world  ",
			expected: "hello world",
		},
		{
			name:     "removes tabs and newlines",
			input:    "\t\nhello\n\t",
			expected: "hello",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "handles whitespace-only string",
			input:    "   \t\n  ",
			expected: "",
		},
		{
			name:     "removes no-break space and byte order mark",
			input:    "\u00a0\ufeffAna\u2003",
			expected: "Ana",
		},
		{
			name:     "removes line and paragraph separators",
			input:    "\u2028Ana\u2029",
			expected: "Ana",
		},
		{
			name:     "keeps next line control",
			input:    "\u0085",
			expected: "\u0085",
		},
		{
			name:     "preserves internal whitespace",
			input:    "  hello  world  ",
			expected: "hello  world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Trim(tt.input))
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", sanitizer.NormalizeWhitespace("  a \t b\n\nc "))
	assert.Equal(t, "", sanitizer.NormalizeWhitespace(" \n "))
}

func TestSingleLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "first second third", sanitizer.SingleLine("first\r\nsecond\nthird"))
	assert.Equal(t, "one", sanitizer.SingleLine("one"))
}

func TestRemoveControlChars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab\ncd", sanitizer.RemoveControlChars("a\x00b\ncd\x07"))
	assert.Equal(t, "tab\tkept", sanitizer.RemoveControlChars("tab\tkept"))
}

func TestMaxLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{name: "shorter than limit", input: "abc", max: 5, expected: "abc"},
		{name: "truncates ascii", input: "abcdef", max: 3, expected: "abc"},
		{name: "counts runes not bytes", input: "ãéíõú", max: 2, expected: "ãé"},
		{name: "zero limit", input: "abc", max: 0, expected: ""},
		{name: "negative limit", input: "abc", max: -1, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.MaxLength(tt.input, tt.max))
		})
	}
}

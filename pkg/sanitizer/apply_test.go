package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecotech/contactform/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  hello  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "hello",
		},
		{
			name:  "trims before escaping",
			input: "  <b>Ana</b>  ",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.EscapeHTML,
			},
			expected: "&lt;b&gt;Ana&lt;/b&gt;",
		},
		{
			name:  "normalizes and limits",
			input: "  Hello    World  again ",
			transforms: []func(string) string{
				sanitizer.NormalizeWhitespace,
				func(s string) string { return sanitizer.MaxLength(s, 11) },
			},
			expected: "Hello World",
		},
		{
			name:       "handles empty transforms slice",
			input:      "hello world",
			transforms: []func(string) string{},
			expected:   "hello world",
		},
		{
			name:  "handles empty input",
			input: "",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.EscapeHTML,
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := sanitizer.Apply(tt.input, tt.transforms...)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.EscapeHTML)

	assert.Equal(t, "Tom &amp; Jerry", clean("  Tom & Jerry\n"))
	assert.Equal(t, "&quot;quoted&quot;", clean(`"quoted"`))
	assert.Equal(t, "", clean("   "))
}

package sanitizer

import "regexp"

// Pre-compiled regular expressions
var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

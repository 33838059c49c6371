package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// htmlEscaper performs all five substitutions in a single left-to-right pass.
// The ampersand is listed first: an entity produced for one character is never
// scanned again, so "&lt;" can not turn into "&amp;lt;".
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML replaces &, <, >, " and ' with &amp;, &lt;, &gt;, &quot; and &#039;.
// Empty input returns an empty string.
func EscapeHTML(s string) string {
	if s == "" {
		return ""
	}
	return htmlEscaper.Replace(s)
}

// UnescapeHTML reverses EscapeHTML (and any other HTML entity).
func UnescapeHTML(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(s)
}

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// StripTags removes every HTML element from s, keeping only its text.
// The remaining text is entity-escaped by the policy, so the result is safe
// to embed into HTML.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy.Sanitize(s)
}

// PreventHeaderInjection removes line breaks and null bytes so the value can be
// used in a single mail or HTTP header line.
func PreventHeaderInjection(s string) string {
	result := strings.ReplaceAll(s, "\r", "")
	result = strings.ReplaceAll(result, "\n", " ")
	return strings.ReplaceAll(result, "\x00", "")
}

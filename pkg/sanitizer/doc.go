// Package sanitizer provides helpers for cleaning user supplied text before it
// is validated, rendered or forwarded.
//
// The functions are grouped into two areas:
//
//   - Escaping – EscapeHTML turns the five characters with special meaning in
//     HTML markup (& < > " ') into entities so the result can be placed into a
//     text node or a quoted attribute verbatim. StripTags removes markup
//     entirely for contexts where entities would be shown literally.
//
//   - Strings – trimming, whitespace normalisation, control character removal
//     and length limiting.
//
// The package is completely stateless. All helpers are small, focused
// functions that can be freely combined with Apply and Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.EscapeHTML,
//	)
//
//	safe := clean("  <b>Ana</b> ") // "&lt;b&gt;Ana&lt;/b&gt;"
//
// # Usage
//
//	import "github.com/ecotech/contactform/pkg/sanitizer"
//
//	name := sanitizer.EscapeHTML(sanitizer.Trim(form.Name))
//
// # Scope
//
// EscapeHTML targets HTML text nodes and quoted attribute values only. It does
// not make a value safe for URLs, script blocks, CSS or unquoted attributes.
//
// # Error handling
//
// None of the helpers returns an error. Empty input always yields an empty
// string.
package sanitizer

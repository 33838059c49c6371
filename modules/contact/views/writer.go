package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// markup writes HTML and keeps the first write error.
type markup struct {
	w   io.Writer
	err error
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// text writes s escaped for a text node or a quoted attribute.
func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

// rawf formats into raw markup. Arguments are not escaped.
func (m *markup) rawf(format string, args ...any) {
	m.raw(fmt.Sprintf(format, args...))
}

// attr writes ` name="value"` with value escaped.
func (m *markup) attr(name, value string) {
	m.raw(" " + name + `="`)
	m.text(value)
	m.raw(`"`)
}

// render writes a child component into the same stream.
func (m *markup) render(ctx context.Context, c templ.Component) {
	if m.err != nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

func component(fn func(ctx context.Context, m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		fn(ctx, m)
		return m.err
	})
}

package views

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/ecotech/contactform/modules/contact"
)

// MailBody renders the inbox notification for a submission. Submission
// values are already HTML-escaped and are written as they are.
func MailBody(sub contact.Submission) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<h2>Nova mensagem pelo formulário de contato</h2><p><strong>Nome:</strong> `)
		m.raw(sub.Name)
		m.raw(`<br><strong>E-mail:</strong> `)
		m.text(sub.Email)
		m.raw(`<br><strong>Assunto:</strong> `)
		m.raw(sub.Subject)
		m.raw(`</p><p>`)
		m.raw(strings.ReplaceAll(strings.ReplaceAll(sub.Message, "\r\n", "\n"), "\n", "<br>"))
		m.raw(`</p>`)
	})
}

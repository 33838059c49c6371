package views_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotech/contactform/handler"
	"github.com/ecotech/contactform/modules/contact"
	"github.com/ecotech/contactform/modules/contact/views"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func TestForm(t *testing.T) {
	t.Parallel()

	html := render(t, views.Form(contact.FormParams{
		Action:     "/contato/",
		PreviewURL: "/contato/preview",
		Values:     contact.Fields{Name: `"><script>x</script>`, Message: "</textarea><b>"},
		Consent:    true,
		Errors:     map[contact.Field]string{contact.FieldEmail: contact.MsgEmailInvalid},
		Status:     contact.StatusParams{Message: contact.StatusInvalid, Kind: contact.StatusKindError},
	}))

	assert.Contains(t, html, `<form id="form-contato" method="post" novalidate action="/contato/"`)
	assert.Contains(t, html, `data-on:input__debounce.300ms="@post(&#39;/contato/preview&#39;)"`)
	assert.Contains(t, html, `value="&#34;&gt;&lt;script&gt;x&lt;/script&gt;"`)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;/textarea&gt;&lt;b&gt;</textarea>")
	assert.Contains(t, html, ` checked`)
	assert.Contains(t, html, `data-attr:disabled="$sending"`)

	for _, f := range contact.AllFields {
		assert.Contains(t, html, `id="`+f.ErrorSlotID()+`"`)
		assert.Contains(t, html, `aria-describedby="`+f.ErrorSlotID()+`"`)
	}
	assert.Contains(t, html, `id="erro-email">`+contact.MsgEmailInvalid+`</span>`)
	assert.Equal(t, 1, strings.Count(html, `aria-invalid="true"`))
	assert.Contains(t, html, `class="status status-error">`+contact.StatusInvalid)
}

func TestToast(t *testing.T) {
	t.Parallel()

	html := render(t, views.Toast(contact.ToastParams{Message: contact.ToastSent, Variant: contact.ToastSuccess, Timeout: contact.ToastTimeout}))
	assert.Contains(t, html, `class="toast toast-success"`)
	assert.Contains(t, html, `data-timeout="3500"`)
	assert.Contains(t, html, `role="status"`)
	assert.Contains(t, html, contact.ToastSent)
	assert.Contains(t, html, `aria-label="Fechar notificação"`)

	defaults := render(t, views.Toast(contact.ToastParams{Message: "<oi>"}))
	assert.Contains(t, defaults, `data-timeout="3500"`)
	assert.Contains(t, defaults, "&lt;oi&gt;")

	custom := render(t, views.Toast(contact.ToastParams{Message: "x", Variant: contact.ToastError, Timeout: 2 * time.Second}))
	assert.Contains(t, custom, `class="toast toast-error"`)
	assert.Contains(t, custom, `data-timeout="2000"`)
}

func TestErrorToast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params handler.ErrorToastParams
		want   string
	}{
		{
			name:   "rate limited",
			params: handler.ErrorToastParams{Message: handler.ErrTooManyRequests.Key, Type: "warning"},
			want:   "Muitas tentativas",
		},
		{
			name:   "validation summary is replaced",
			params: handler.ErrorToastParams{Message: "nome: x", Type: "warning"},
			want:   "Não foi possível processar sua solicitação.",
		},
		{
			name:   "internal error",
			params: handler.ErrorToastParams{Message: "An error occurred processing your request", Type: "error"},
			want:   "Erro interno.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			html := render(t, views.ErrorToast(tt.params))
			assert.Contains(t, html, tt.want)
			assert.Contains(t, html, "toast-"+tt.params.Type)
		})
	}
}

func TestPage(t *testing.T) {
	t.Parallel()

	html := render(t, views.Page(contact.PageParams{
		SiteName:    "EcoTech",
		Nav:         contact.DefaultNav,
		CurrentPage: "servicos.html",
		Year:        2031,
		Toasts:      []contact.ToastParams{{Message: "oi"}},
	}))

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, `<title>Contato | EcoTech</title>`)
	assert.Contains(t, html, `href="servicos.html" aria-current="page"`)
	assert.NotContains(t, html, `href="contato.html" aria-current="page"`)
	assert.Contains(t, html, `<span id="ano">2031</span>`)
	assert.Contains(t, html, `aria-controls="site-nav" aria-expanded="false"`)
	assert.Contains(t, html, `<div id="toast-container"><div role="status"`)
	assert.Contains(t, html, `id="preview"`)
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	html := render(t, views.ErrorPage(handler.ErrorPageParams{
		Error:      "too_many_requests",
		StatusCode: 429,
		RequestID:  "req-1",
		RetryURL:   "/contato.html",
		Detail:     "<boom>",
	}))

	assert.Contains(t, html, "Muitas tentativas")
	assert.Contains(t, html, "req-1")
	assert.Contains(t, html, `href="/contato.html"`)
	assert.Contains(t, html, "&lt;boom&gt;")

	fallback := render(t, views.ErrorPage(handler.ErrorPageParams{Error: "Gone", StatusCode: 410}))
	assert.Contains(t, fallback, "Gone")
	assert.NotContains(t, fallback, "request-id")
}

func TestPreview(t *testing.T) {
	t.Parallel()

	sub := contact.Sanitize(contact.Fields{Name: "<i>Ana</i>", Email: "ana@x.io", Subject: "A & B", Message: "oi"})
	html := render(t, views.Preview(contact.PreviewParams{Submission: sub}))

	assert.Contains(t, html, "<dd>&amp;lt;i&amp;gt;Ana&amp;lt;/i&amp;gt;</dd>")
	assert.Contains(t, html, "<dd>A &amp;amp; B</dd>")
	assert.Contains(t, html, "<dd>ana@x.io</dd>")
}

func TestMailBody(t *testing.T) {
	t.Parallel()

	sub := contact.Sanitize(contact.Fields{Name: "Ana", Email: "a&b@c.d", Subject: "Oi", Message: "um\r\ndois <b>"})
	html := render(t, views.MailBody(sub))

	assert.Contains(t, html, "a&amp;b@c.d")
	assert.Contains(t, html, "um<br>dois &lt;b&gt;")
	assert.NotContains(t, html, "<b>")
}

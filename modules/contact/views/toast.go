package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/ecotech/contactform/handler"
	"github.com/ecotech/contactform/modules/contact"
)

// Toast renders one notification. The page script removes it after
// Timeout or when the close button is pressed.
func Toast(p contact.ToastParams) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		variant := p.Variant
		if variant == "" {
			variant = contact.ToastSuccess
		}
		timeout := p.Timeout
		if timeout <= 0 {
			timeout = contact.ToastTimeout
		}

		m.raw(`<div role="status" aria-live="polite"`)
		m.attr("class", "toast toast-"+variant)
		m.attr("data-timeout", strconv.FormatInt(timeout.Milliseconds(), 10))
		m.raw(`><span>`)
		m.text(p.Message)
		m.raw(`</span><button type="button" aria-label="Fechar notificação">×</button></div>`)
	})
}

// ErrorToast adapts handler error toasts to the contact toast markup.
// Messages are replaced by visitor-facing texts; unknown ones get a generic text.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	msg, ok := errorToastTexts[p.Message]
	if !ok {
		msg = "Não foi possível processar sua solicitação."
		if p.Type == "error" {
			msg = errorText(500, "")
		}
	}

	variant := p.Type
	if variant == "" {
		variant = contact.ToastError
	}
	return Toast(contact.ToastParams{Message: msg, Variant: variant})
}

var errorToastTexts = map[string]string{
	handler.ErrBadRequest.Key:         errorText(400, ""),
	handler.ErrNotFound.Key:           errorText(404, ""),
	handler.ErrUnsupportedMedia.Key:   errorText(415, ""),
	handler.ErrTooManyRequests.Key:    errorText(429, ""),
	handler.ErrServiceUnavailable.Key: errorText(503, ""),
}

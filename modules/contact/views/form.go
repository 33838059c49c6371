package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/ecotech/contactform/modules/contact"
)

type textInput struct {
	field        contact.Field
	label        string
	kind         string // input type, "textarea" for a textarea
	autocomplete string
	value        string
}

// Form renders #form-contato. Without JavaScript it posts a regular form;
// with DataStar it posts the same fields and previews while typing.
func Form(p contact.FormParams) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<form id="form-contato" method="post" novalidate`)
		m.attr("action", p.Action)
		m.raw(` data-signals:sending="false"`)
		m.attr("data-on:submit", "@post('"+p.Action+"', {contentType: 'form'})")
		m.attr("data-on:input__debounce.300ms", "@post('"+p.PreviewURL+"')")
		m.raw(`>`)

		inputs := []textInput{
			{field: contact.FieldName, label: "Nome", kind: "text", autocomplete: "name", value: p.Values.Name},
			{field: contact.FieldEmail, label: "E-mail", kind: "email", autocomplete: "email", value: p.Values.Email},
			{field: contact.FieldSubject, label: "Assunto", kind: "text", value: p.Values.Subject},
			{field: contact.FieldMessage, label: "Mensagem", kind: "textarea", value: p.Values.Message},
		}
		for _, in := range inputs {
			field(ctx, m, in, p.Errors[in.field])
		}

		m.raw(`<div class="campo campo-consent"><label><input id="consent" name="consent" type="checkbox" value="on" data-bind:consent`)
		if p.Consent {
			m.raw(` checked`)
		}
		m.raw(` aria-describedby="erro-consent"> Autorizo o uso dos meus dados para retorno deste contato.</label>`)
		m.render(ctx, FieldError(contact.FieldErrorParams{Field: contact.FieldConsent, Message: p.Errors[contact.FieldConsent]}))
		m.raw(`</div>`)

		m.raw(`<button type="submit" data-attr:disabled="$sending">Enviar</button>`)
		m.render(ctx, Status(p.Status))
		m.raw(`</form>`)
	})
}

func field(ctx context.Context, m *markup, in textInput, errMsg string) {
	id := string(in.field)
	m.raw(`<div class="campo"><label`)
	m.attr("for", id)
	m.raw(`>`)
	m.text(in.label)
	m.raw(`</label>`)

	if in.kind == "textarea" {
		m.raw(`<textarea rows="5"`)
	} else {
		m.raw(`<input`)
		m.attr("type", in.kind)
	}
	m.attr("id", id)
	m.attr("name", id)
	if in.autocomplete != "" {
		m.attr("autocomplete", in.autocomplete)
	}
	m.raw(" data-bind:" + id)
	m.attr("aria-describedby", in.field.ErrorSlotID())
	if errMsg != "" {
		m.raw(` aria-invalid="true"`)
	}

	if in.kind == "textarea" {
		m.raw(`>`)
		m.text(in.value)
		m.raw(`</textarea>`)
	} else {
		m.attr("value", in.value)
		m.raw(`>`)
	}

	m.render(ctx, FieldError(contact.FieldErrorParams{Field: in.field, Message: errMsg}))
	m.raw(`</div>`)
}

// FieldError renders the error slot of one field. An empty message clears it.
func FieldError(p contact.FieldErrorParams) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<span class="erro"`)
		m.attr("id", p.Field.ErrorSlotID())
		m.raw(`>`)
		m.text(p.Message)
		m.raw(`</span>`)
	})
}

// Status renders the #status region.
func Status(p contact.StatusParams) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<p id="status" role="status" aria-live="polite"`)
		class := "status"
		if p.Kind != "" {
			class += " status-" + p.Kind
		}
		m.attr("class", class)
		m.raw(`>`)
		m.text(p.Message)
		m.raw(`</p>`)
	})
}

// Preview renders the sanitized values exactly as they will be submitted.
func Preview(p contact.PreviewParams) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<section id="preview" class="preview" aria-label="Pré-visualização do envio"><dl>`)
		rows := []struct{ label, value string }{
			{"Nome", p.Submission.Name},
			{"E-mail", p.Submission.Email},
			{"Assunto", p.Submission.Subject},
			{"Mensagem", p.Submission.Message},
		}
		for _, row := range rows {
			m.raw(`<dt>`)
			m.text(row.label)
			m.raw(`</dt><dd>`)
			m.text(row.value)
			m.raw(`</dd>`)
		}
		m.raw(`</dl></section>`)
	})
}

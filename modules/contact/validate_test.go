package contact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotech/contactform/handler"
	"github.com/ecotech/contactform/modules/contact"
)

func validFields() contact.Fields {
	return contact.Fields{Name: "Ana", Email: "a@b.co", Subject: "Hi", Message: "0123456789"}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(f *contact.Fields)
		consent bool
		want    map[contact.Field]string
	}{
		{
			name:    "all valid",
			modify:  func(f *contact.Fields) {},
			consent: true,
			want:    map[contact.Field]string{},
		},
		{
			name:    "empty name",
			modify:  func(f *contact.Fields) { f.Name = "" },
			consent: true,
			want:    map[contact.Field]string{contact.FieldName: contact.MsgNameRequired},
		},
		{
			name:    "whitespace name",
			modify:  func(f *contact.Fields) { f.Name = " \t\n " },
			consent: true,
			want:    map[contact.Field]string{contact.FieldName: contact.MsgNameRequired},
		},
		{
			name:    "next line control is not whitespace",
			modify:  func(f *contact.Fields) { f.Name = "\u0085" },
			consent: true,
			want:    map[contact.Field]string{},
		},
		{
			name:    "bad email",
			modify:  func(f *contact.Fields) { f.Email = "not-an-email" },
			consent: true,
			want:    map[contact.Field]string{contact.FieldEmail: contact.MsgEmailInvalid},
		},
		{
			name:    "padded email is trimmed",
			modify:  func(f *contact.Fields) { f.Email = "  ana@x.io \n" },
			consent: true,
			want:    map[contact.Field]string{},
		},
		{
			name:    "ampersand email validated unescaped",
			modify:  func(f *contact.Fields) { f.Email = "a&b@c.d" },
			consent: true,
			want:    map[contact.Field]string{},
		},
		{
			name:    "empty subject",
			modify:  func(f *contact.Fields) { f.Subject = "  " },
			consent: true,
			want:    map[contact.Field]string{contact.FieldSubject: contact.MsgSubjectRequired},
		},
		{
			name:    "short message",
			modify:  func(f *contact.Fields) { f.Message = "short" },
			consent: true,
			want:    map[contact.Field]string{contact.FieldMessage: contact.MsgMessageTooShort},
		},
		{
			name:    "message length counts trimmed text",
			modify:  func(f *contact.Fields) { f.Message = "   012345678   " },
			consent: true,
			want:    map[contact.Field]string{contact.FieldMessage: contact.MsgMessageTooShort},
		},
		{
			name:    "message length counts escaped text",
			modify:  func(f *contact.Fields) { f.Message = "<<<" },
			consent: true,
			want:    map[contact.Field]string{},
		},
		{
			name:    "accented message counts characters",
			modify:  func(f *contact.Fields) { f.Message = "informação" },
			consent: true,
			want:    map[contact.Field]string{},
		},
		{
			name:    "emoji count as one character each",
			modify:  func(f *contact.Fields) { f.Message = "😀😀😀😀😀" },
			consent: true,
			want:    map[contact.Field]string{contact.FieldMessage: contact.MsgMessageTooShort},
		},
		{
			name:    "consent missing",
			modify:  func(f *contact.Fields) {},
			consent: false,
			want:    map[contact.Field]string{contact.FieldConsent: contact.MsgConsentRequired},
		},
		{
			name:    "everything wrong",
			modify:  func(f *contact.Fields) { *f = contact.Fields{} },
			consent: false,
			want: map[contact.Field]string{
				contact.FieldName:    contact.MsgNameRequired,
				contact.FieldEmail:   contact.MsgEmailInvalid,
				contact.FieldSubject: contact.MsgSubjectRequired,
				contact.FieldMessage: contact.MsgMessageTooShort,
				contact.FieldConsent: contact.MsgConsentRequired,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := validFields()
			tt.modify(&f)

			got := contact.Validate(f, tt.consent)
			assert.Equal(t, tt.want, got.Errors)
			assert.Equal(t, len(tt.want) == 0, got.Valid)
		})
	}
}

func TestValidate_Sanitizes(t *testing.T) {
	t.Parallel()

	got := contact.Validate(contact.Fields{
		Name:    "  <b>Ana</b> ",
		Email:   " a&b@c.d ",
		Subject: `"Oi" & 'tchau'`,
		Message: "<script>alert(1)</script>",
	}, true)

	require.True(t, got.Valid)
	assert.Equal(t, contact.Submission{
		Name:    "&lt;b&gt;Ana&lt;/b&gt;",
		Email:   "a&b@c.d",
		Subject: "&quot;Oi&quot; &amp; &#039;tchau&#039;",
		Message: "&lt;script&gt;alert(1)&lt;/script&gt;",
	}, got.Submission)
}

func TestValidate_FreshResult(t *testing.T) {
	t.Parallel()

	first := contact.Validate(contact.Fields{}, false)
	require.False(t, first.Valid)

	second := contact.Validate(validFields(), true)
	assert.True(t, second.Valid)
	assert.Empty(t, second.Errors)
	assert.Len(t, first.Errors, 5, "earlier result is untouched")
}

func TestResult_ValidationError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, contact.Validate(validFields(), true).ValidationError())

	err := contact.Validate(contact.Fields{Name: "Ana", Email: "x", Subject: "Oi", Message: "0123456789"}, false).ValidationError()
	require.Error(t, err)

	var verr handler.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, contact.MsgEmailInvalid, verr.Get("email"))
	assert.Equal(t, contact.MsgConsentRequired, verr.Get("consent"))
	assert.False(t, verr.Has("nome"))
}

func TestPreview(t *testing.T) {
	t.Parallel()

	got := contact.Preview(contact.Fields{Name: "<i>", Email: "ana@", Message: "curta"})

	assert.Equal(t, map[contact.Field]string{
		contact.FieldEmail:   contact.MsgEmailInvalid,
		contact.FieldMessage: contact.MsgMessageTooShort,
	}, got.Errors, "untouched subject stays quiet")
	assert.Equal(t, "&lt;i&gt;", got.Submission.Name)
}

func TestFieldErrorSlotID(t *testing.T) {
	t.Parallel()

	ids := make([]string, 0, len(contact.AllFields))
	for _, f := range contact.AllFields {
		ids = append(ids, f.ErrorSlotID())
	}
	assert.Equal(t, []string{"erro-nome", "erro-email", "erro-assunto", "erro-mensagem", "erro-consent"}, ids)
}

package contact

import (
	"github.com/ecotech/contactform/handler"
	"github.com/ecotech/contactform/pkg/sanitizer"
	"github.com/ecotech/contactform/pkg/validator"
)

var cleanText = sanitizer.Compose(sanitizer.Trim, sanitizer.EscapeHTML)

// Sanitize trims every field and escapes name, subject and message.
// The email is validated as typed, so it is only trimmed.
func Sanitize(f Fields) Submission {
	return Submission{
		Name:    cleanText(f.Name),
		Email:   sanitizer.Trim(f.Email),
		Subject: cleanText(f.Subject),
		Message: cleanText(f.Message),
	}
}

// Result is the outcome of one validation pass.
type Result struct {
	// Errors maps a failing field to its message. Valid fields are absent.
	Errors     map[Field]string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Valid      bool             `json:"valid" yaml:"valid"`
	Submission Submission       `json:"submission" yaml:"submission"`
}

// Error returns the message for f, or "".
func (r Result) Error(f Field) string {
	return r.Errors[f]
}

// ValidationError converts the failures for transport. Nil when valid.
func (r Result) ValidationError() error {
	if len(r.Errors) == 0 {
		return nil
	}
	verr := handler.NewValidationError()
	for _, f := range AllFields {
		if msg, ok := r.Errors[f]; ok {
			verr.Add(string(f), msg)
		}
	}
	return verr
}

// Validate sanitizes fields and checks every rule. It always returns a fresh
// Result; the consent failure is reported under FieldConsent like any other.
func Validate(fields Fields, consent bool) Result {
	sub := Sanitize(fields)

	err := validator.Apply(
		validator.Required(string(FieldName), sub.Name).WithMessage(MsgNameRequired),
		validator.EmailShape(string(FieldEmail), sub.Email).WithMessage(MsgEmailInvalid),
		validator.Required(string(FieldSubject), sub.Subject).WithMessage(MsgSubjectRequired),
		validator.MinLen(string(FieldMessage), sub.Message, MinMessageLength).WithMessage(MsgMessageTooShort),
		validator.Accepted(string(FieldConsent), consent).WithMessage(MsgConsentRequired),
	)

	result := Result{Errors: make(map[Field]string), Submission: sub}
	for _, verr := range validator.ExtractValidationErrors(err) {
		f := Field(verr.Field)
		if _, seen := result.Errors[f]; !seen {
			result.Errors[f] = verr.Message
		}
	}
	result.Valid = len(result.Errors) == 0
	return result
}

// Preview reports errors only for fields the visitor has started typing, so
// untouched inputs stay quiet while the form is being filled.
func Preview(fields Fields) Result {
	result := Validate(fields, true)
	typed := map[Field]string{
		FieldName:    fields.Name,
		FieldEmail:   fields.Email,
		FieldSubject: fields.Subject,
		FieldMessage: fields.Message,
	}
	for f := range result.Errors {
		if typed[f] == "" {
			delete(result.Errors, f)
		}
	}
	return result
}

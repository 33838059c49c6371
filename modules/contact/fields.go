package contact

import "time"

// Field names a contact form input. The values double as HTML form names
// and DataStar signal names.
type Field string

const (
	FieldName    Field = "nome"
	FieldEmail   Field = "email"
	FieldSubject Field = "assunto"
	FieldMessage Field = "mensagem"
	FieldConsent Field = "consent"
)

// AllFields lists every field in display order.
var AllFields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage, FieldConsent}

// ErrorSlotID is the id of the element that shows the error for f.
func (f Field) ErrorSlotID() string {
	return "erro-" + string(f)
}

// Field error messages.
const (
	MsgNameRequired    = "Informe seu nome."
	MsgEmailInvalid    = "Informe um e-mail válido."
	MsgSubjectRequired = "Informe o assunto."
	MsgMessageTooShort = "A mensagem deve ter ao menos 10 caracteres."
	MsgConsentRequired = "É necessário autorizar o uso dos dados para contato."
)

// Status region and toast texts.
const (
	StatusInvalid = "Erros encontrados no formulário. Verifique os campos."
	StatusSending = "Enviando..."
	StatusSent    = "Mensagem enviada com sucesso! Em breve entraremos em contato."
	StatusFailed  = "Não foi possível enviar sua mensagem. Tente novamente em instantes."
	ToastSent     = "Mensagem enviada com sucesso ✅"
)

const (
	// MinMessageLength is counted in characters of the escaped message.
	MinMessageLength = 10

	ToastTimeout       = 3500 * time.Millisecond
	DefaultSubmitDelay = 600 * time.Millisecond
)

// Fields holds the raw values typed by the visitor.
type Fields struct {
	Name    string `json:"nome" yaml:"nome"`
	Email   string `json:"email" yaml:"email"`
	Subject string `json:"assunto" yaml:"assunto"`
	Message string `json:"mensagem" yaml:"mensagem"`
}

// Submission is the sanitized form: free-text fields trimmed and
// HTML-escaped, email only trimmed.
type Submission struct {
	Name    string `json:"nome" yaml:"nome"`
	Email   string `json:"email" yaml:"email"`
	Subject string `json:"assunto" yaml:"assunto"`
	Message string `json:"mensagem" yaml:"mensagem"`
}

package contact

import (
	"time"

	"github.com/a-h/templ"

	"github.com/ecotech/contactform/handler"
)

// Views renders every fragment the contact module sends.
// All fields are required except ErrorPage and ErrorToast.
type Views struct {
	Page       func(PageParams) templ.Component
	Form       func(FormParams) templ.Component
	Status     func(StatusParams) templ.Component
	Toast      func(ToastParams) templ.Component
	Preview    func(PreviewParams) templ.Component
	FieldError func(FieldErrorParams) templ.Component

	ErrorPage  func(handler.ErrorPageParams) templ.Component
	ErrorToast func(handler.ErrorToastParams) templ.Component
}

// NavLink is one entry of the site navigation.
type NavLink struct {
	Href  string
	Label string
}

// DefaultNav mirrors the static site the form is embedded in.
var DefaultNav = []NavLink{
	{Href: "index.html", Label: "Início"},
	{Href: "servicos.html", Label: "Serviços"},
	{Href: "sobre.html", Label: "Sobre"},
	{Href: "contato.html", Label: "Contato"},
}

// PageParams contains data for the full contact page.
type PageParams struct {
	SiteName    string
	Nav         []NavLink
	CurrentPage string // last path segment, "index.html" for the root
	Year        int
	Form        FormParams
	Toasts      []ToastParams
}

// FormParams contains data for the #form-contato fragment.
type FormParams struct {
	Action     string
	PreviewURL string
	Values     Fields // raw values, escaped once by the renderer
	Consent    bool
	Errors     map[Field]string
	Status     StatusParams
}

// Status kinds.
const (
	StatusKindInfo    = "info"
	StatusKindError   = "error"
	StatusKindSuccess = "success"
)

// StatusParams contains data for the #status region.
type StatusParams struct {
	Message string
	Kind    string
}

// Toast variants.
const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// ToastParams contains data for one toast notification.
type ToastParams struct {
	Message string
	Variant string
	Timeout time.Duration
}

// PreviewParams contains the sanitized values shown while typing.
type PreviewParams struct {
	Submission Submission
}

// FieldErrorParams contains data for one error slot.
type FieldErrorParams struct {
	Field   Field
	Message string
}

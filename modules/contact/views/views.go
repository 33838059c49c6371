// Package views holds the default HTML for the contact module.
package views

import "github.com/ecotech/contactform/modules/contact"

// New returns the default contact views.
func New() *contact.Views {
	return &contact.Views{
		Page:       Page,
		Form:       Form,
		Status:     Status,
		Toast:      Toast,
		Preview:    Preview,
		FieldError: FieldError,
		ErrorPage:  ErrorPage,
		ErrorToast: ErrorToast,
	}
}

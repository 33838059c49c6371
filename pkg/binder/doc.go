// Package binder decodes HTTP request bodies into Go structs.
//
// Two binders are provided:
//
//   - Form(): application/x-www-form-urlencoded and multipart/form-data, using `form:` tags
//   - JSON(): application/json, strict decoding with a body size cap
//
// Each binder returns ErrBinderNotApplicable when the request carries the
// other binder's content type, so both can be chained on one endpoint:
//
//	type ContactRequest struct {
//	    Name    string `form:"nome" json:"nome"`
//	    Consent bool   `form:"consentimento" json:"consentimento"`
//	}
//
//	r.Post("/", handler.Wrap(submit,
//	    handler.WithBinders[handler.Context, ContactRequest](binder.Form(), binder.JSON()),
//	))
//
// Values are stored exactly as sent. Escaping user text is left to the caller,
// so a value is never escaped twice.
//
// Boolean form fields accept "true", "1", "on" and "yes"; a missing checkbox
// leaves the field false.
package binder

// Package handler provides typed HTTP handlers whose responses adapt to the
// caller: full HTML pages for regular browser requests, Server-Sent Event
// patches for DataStar requests, and JSON for API clients.
//
// A HandlerFunc receives a Context and a request value already decoded by the
// configured binders, and returns a Response:
//
//	type ContactRequest struct {
//		Name  string `form:"nome" json:"nome"`
//		Email string `form:"email" json:"email"`
//	}
//
//	func submit(ctx handler.Context, req ContactRequest) handler.Response {
//		return handler.Templ(views.Thanks(req.Name))
//	}
//
//	r.Post("/", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, ContactRequest](binder.Form(), binder.JSON()),
//	))
//
// # Responses
//
//	handler.Templ(component, opts...)          // one component, patched or rendered
//	handler.TemplPartial(partial, full)        // fragment for DataStar, page otherwise
//	handler.TemplMulti(patches...)             // several targets in one response
//	handler.TemplMultiPartial(full, patches...) // several targets or the full page
//	handler.SSE(func(stream StreamContext) error { ... }) // stream over time
//	handler.JSON(v) / handler.JSONError(err)
//	handler.WithStatus(resp, http.StatusUnprocessableEntity)
//
// # Errors
//
// HTTPError carries a status and a key; ValidationError maps fields to
// messages and renders as 422. StatusCode and ClassifyError turn any error
// into a status and a message that is safe to show. NewErrorHandler logs the
// error and renders either a toast (DataStar) or an error page.
package handler

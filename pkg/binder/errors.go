package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidJSON          = errors.New("failed to parse JSON request body")
	ErrInvalidForm          = errors.New("failed to parse form data")

	// ErrBinderNotApplicable is returned when a binder does not handle the request's
	// content type. handler.Wrap skips such binders and tries the next one.
	ErrBinderNotApplicable = errors.New("binder not applicable to this request")
)

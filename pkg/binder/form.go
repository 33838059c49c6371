package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms (1MB).
const DefaultMaxMemory = 1 << 20

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies.
//
// Supported struct tags:
//   - `form:"name"` binds to form field "name"
//   - `form:"-"` skips the field
//
// Fields without a tag bind to their lowercased Go name. Supported types are
// string, integers, floats, bool, pointers to those, and slices of them.
//
// JSON requests return ErrBinderNotApplicable; any other media type is
// ErrUnsupportedMediaType.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mt, err := mediaType(r)
		if err != nil {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", err)
		}

		switch {
		case mt == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindToStruct(v, "form", r.PostForm, ErrInvalidForm)

		case mt == "multipart/form-data":
			_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil {
				return fmt.Errorf("%w: malformed content type", ErrInvalidForm)
			}
			if !validateBoundary(params["boundary"]) {
				return fmt.Errorf("%w: invalid boundary parameter", ErrInvalidForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values := map[string][]string{}
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
			}
			return bindToStruct(v, "form", values, ErrInvalidForm)

		case isJSONMediaType(mt):
			return notApplicable(mt, "form")

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mt)
		}
	}
}

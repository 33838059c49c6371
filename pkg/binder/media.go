package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// mediaType returns the request's media type without parameters, lowercased.
func mediaType(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", ErrMissingContentType
	}
	mt := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mt = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mt)), nil
}

func isFormMediaType(mt string) bool {
	return mt == "application/x-www-form-urlencoded" || mt == "multipart/form-data"
}

func isJSONMediaType(mt string) bool {
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

// validateBoundary checks a multipart boundary against RFC 2046:
// 1 to 70 characters from the bchars set, not ending with a space.
func validateBoundary(boundary string) bool {
	if len(boundary) == 0 || len(boundary) > 70 {
		return false
	}
	if boundary[len(boundary)-1] == ' ' {
		return false
	}
	for i := 0; i < len(boundary); i++ {
		c := boundary[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.IndexByte("'()+_,-./:=? ", c) >= 0:
		default:
			return false
		}
	}
	return true
}

func notApplicable(mt, want string) error {
	return fmt.Errorf("%w: got %s, want %s", ErrBinderNotApplicable, mt, want)
}

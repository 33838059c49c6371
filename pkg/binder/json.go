package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize is the maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSON creates a binder for application/json bodies.
//
// Decoding is strict: unknown fields and trailing data are rejected. Form
// requests return ErrBinderNotApplicable so JSON can be chained after Form.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		select {
		case <-r.Context().Done():
			return fmt.Errorf("%w: %v", ErrInvalidJSON, r.Context().Err())
		default:
		}

		mt, err := mediaType(r)
		if err != nil {
			return fmt.Errorf("%w: expected application/json", err)
		}
		if isFormMediaType(mt) {
			return notApplicable(mt, "json")
		}
		if !isJSONMediaType(mt) {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrInvalidJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: request body too large (max %d bytes)", ErrInvalidJSON, DefaultMaxJSONSize)
		}
		if len(body) == 0 {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}

		return nil
	}
}

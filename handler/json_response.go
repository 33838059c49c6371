package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
)

// JSONResponse is the standard JSON envelope.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON wraps v in the data envelope with status 200.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err in the error envelope. ValidationError becomes 422
// with per-field details; HTTPError keeps its code; anything else is 500.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{status: StatusCode(err), body: JSONResponse{Error: errorToDetail(err)}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorToDetail(err error) *ErrorDetail {
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		detail := &ErrorDetail{Code: "validation_error", Message: validationErr.Error()}
		if len(validationErr) > 0 {
			detail.Details = make(map[string][]string, len(validationErr))
			maps.Copy(detail.Details, validationErr)
		}
		return detail
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	code := StatusCode(err)
	if code == http.StatusInternalServerError {
		return &ErrorDetail{Code: "internal_error", Message: http.StatusText(code)}
	}
	return &ErrorDetail{Code: "bad_request", Message: err.Error()}
}

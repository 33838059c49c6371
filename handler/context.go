package handler

import (
	"context"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Context wraps http.Request and http.ResponseWriter with context.Context.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// SSE returns the DataStar event generator for the request, creating it
	// on first use. It returns nil for non-DataStar requests.
	SSE() *datastar.ServerSentEventGenerator
}

// NewContext binds w and r. Deadline, cancellation and values come from
// r.Context() as it was at this call.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{Context: r.Context(), w: w, r: r}
}

type httpContext struct {
	context.Context
	w   http.ResponseWriter
	r   *http.Request
	sse *datastar.ServerSentEventGenerator
}

func (c *httpContext) Request() *http.Request { return c.r }
func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }

// SSE opens the event stream lazily: opening it flushes a 200 status, so
// handlers that fail before streaming can still answer with an error code.
func (c *httpContext) SSE() *datastar.ServerSentEventGenerator {
	if c.sse == nil && IsDataStar(c.r) {
		c.sse = NewSSE(c.w, c.r)
	}
	return c.sse
}

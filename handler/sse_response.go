package handler

import "net/http"

// SSEHandler streams updates for the lifetime of one DataStar request.
// The stream closes when the handler returns.
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "SSE endpoint requires DataStar connection")
	}

	base := NewContext(w, r)
	return s.handler(&streamContext{Context: base, sse: base.SSE()})
}

// SSE creates a response that runs handler over a DataStar event stream.
// Non-DataStar requests get 400.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		if err := stream.SendSignals(map[string]any{"sending": true}); err != nil {
//			return err
//		}
//		result := doWork(stream)
//		return stream.SendComponent(views.Result(result), handler.WithTarget("#result"))
//	})
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/ecotech/contactform/pkg/environment"
	"github.com/ecotech/contactform/pkg/logger"
	"github.com/ecotech/contactform/pkg/requestid"
)

// ErrorPageParams contains data for rendering error pages.
type ErrorPageParams struct {
	Error      string
	Detail     string // raw error text, development only
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams contains data for rendering error toasts.
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders a full page for regular HTTP requests.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders a notification for DataStar requests.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget is the container toasts are patched into. Default "#toast-container".
	ToastTarget string

	// ToastMode is how toasts are patched. Default PatchAppend.
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo is the classification of an error used for logging and rendering.
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

const genericErrorMessage = "An error occurred processing your request"

// ClassifyError maps err to a status, a safe message and a log level.
// Messages of unknown errors are never exposed.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: StatusCode(err),
		Message:    genericErrorMessage,
	}

	var httpErr HTTPError
	var validationErr ValidationError
	switch {
	case errors.As(err, &validationErr):
		info.Message = validationErr.Error()
	case errors.As(err, &httpErr):
		info.Message = httpErr.Key
	case info.StatusCode < http.StatusInternalServerError:
		info.Message = http.StatusText(info.StatusCode)
	}

	switch {
	case info.StatusCode >= http.StatusInternalServerError:
		info.Type = "error"
		info.LogLevel = slog.LevelError
	case info.StatusCode >= http.StatusBadRequest:
		info.Type = "warning"
		info.LogLevel = slog.LevelWarn
	default:
		info.Type = "info"
		info.LogLevel = slog.LevelInfo
	}

	return info
}

// NewErrorHandler returns an ErrorHandler that logs the error and answers
// with a toast for DataStar requests or a full error page otherwise.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchAppend
	}
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		requestID := requestid.FromContext(r.Context())
		info := ClassifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		if IsDataStar(r) {
			renderErrorToast(ctx, cfg, info, requestID, log)
			return
		}
		renderErrorPage(ctx, cfg, info, requestID, err, log)
	}
}

func renderErrorToast(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	if cfg.ErrorToast == nil {
		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
		return
	}

	component := cfg.ErrorToast(ErrorToastParams{
		Message:   info.Message,
		Type:      info.Type,
		RequestID: requestID,
	})

	resp := Templ(component, WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
	if err := resp.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		log.ErrorContext(ctx, "failed to render error toast", logger.Error(err), logger.Event("render_error_toast"))
	}
}

func renderErrorPage(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, cause error, log *slog.Logger) {
	if cfg.ErrorPage == nil {
		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
		return
	}

	params := ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  requestID,
		RetryURL:   ctx.Request().URL.Path,
	}
	if environment.IsDevelopment(ctx) {
		params.Detail = cause.Error()
	}

	resp := WithStatus(Templ(cfg.ErrorPage(params)), info.StatusCode)
	if err := resp.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		log.ErrorContext(ctx, "failed to render error page", logger.Error(err), logger.Event("render_error_page"))
		http.Error(ctx.ResponseWriter(), "Internal Server Error", http.StatusInternalServerError)
	}
}

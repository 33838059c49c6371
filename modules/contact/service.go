package contact

import (
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/ecotech/contactform/handler"
	"github.com/ecotech/contactform/pkg/binder"
	"github.com/ecotech/contactform/pkg/logger"
	"github.com/ecotech/contactform/pkg/ratelimiter"
	"github.com/ecotech/contactform/pkg/requestid"
)

const (
	formTarget  = "#form-contato"
	toastTarget = "#toast-container"
)

// Config holds contact module settings, read with the CONTACT_ prefix.
type Config struct {
	SiteName    string             `env:"SITE_NAME" envDefault:"EcoTech"`
	BasePath    string             `env:"BASE_PATH"` // mount point, "" for the root
	Inbox       string             `env:"INBOX" envDefault:"contato@ecotech.com.br"`
	SubmitDelay time.Duration      `env:"SUBMIT_DELAY" envDefault:"600ms"`
	DeliverMail bool               `env:"DELIVER_MAIL" envDefault:"false"`
	RateLimit   ratelimiter.Config `envPrefix:"RATE_"`
}

// Service serves the contact page, its submit endpoint and live preview.
type Service struct {
	cfg          Config
	views        *Views
	submitter    Submitter
	limiter      ratelimiter.RateLimiter
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	now          func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithSubmitter replaces the simulated submitter.
func WithSubmitter(sub Submitter) Option {
	return func(s *Service) {
		if sub != nil {
			s.submitter = sub
		}
	}
}

// WithRateLimiter limits POST / per client IP.
func WithRateLimiter(l ratelimiter.RateLimiter) Option {
	return func(s *Service) {
		s.limiter = l
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithClock replaces time.Now for the footer year.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates the contact service. Without WithSubmitter every
// submission goes to a SimulatedSubmitter with cfg.SubmitDelay.
func NewService(cfg Config, views *Views, opts ...Option) *Service {
	s := &Service{
		cfg:       cfg,
		views:     views,
		submitter: SimulatedSubmitter{Delay: cfg.SubmitDelay},
		log:       slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("contact"))
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			ErrorPage:   views.ErrorPage,
			ErrorToast:  views.ErrorToast,
			ToastTarget: toastTarget,
		})
	}
	return s
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	page := handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	)
	r.Get("/", page)
	r.Get("/contato.html", page)

	submit := http.Handler(handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, SubmitRequest](binder.Form(), binder.JSON()),
		handler.WithErrorHandler[handler.Context, SubmitRequest](s.errorHandler),
	))
	if s.limiter != nil {
		submit = ratelimiter.Middleware(s.limiter, ratelimiter.ByIP,
			ratelimiter.WithLimitedHandler(http.HandlerFunc(s.limited)),
			ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
				s.errorHandler(handler.NewContext(w, r), err)
			}),
		)(submit)
	}
	r.Method(http.MethodPost, "/", submit)

	r.Post("/preview", handler.Wrap(s.preview,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

// SubmitRequest is the submitted form, from a form body or JSON.
type SubmitRequest struct {
	Name    string `form:"nome" json:"nome"`
	Email   string `form:"email" json:"email"`
	Subject string `form:"assunto" json:"assunto"`
	Message string `form:"mensagem" json:"mensagem"`
	Consent bool   `form:"consent" json:"consent"`
}

func (r SubmitRequest) Fields() Fields {
	return Fields{Name: r.Name, Email: r.Email, Subject: r.Subject, Message: r.Message}
}

// SubmitResponse is the JSON body of an accepted submission.
type SubmitResponse struct {
	Status     string     `json:"status"`
	Submission Submission `json:"submission"`
}

func (s *Service) page(ctx handler.Context, _ struct{}) handler.Response {
	form := s.formParams(SubmitRequest{}, nil, StatusParams{})
	return handler.Templ(s.views.Page(s.pageParams(ctx.Request(), form)))
}

func (s *Service) submit(ctx handler.Context, req SubmitRequest) handler.Response {
	r := ctx.Request()
	started := s.now()

	attempt := NewAttempt(s.submitter, LogTransitions(s.log))
	result, err := attempt.Validate(ctx, req.Fields(), req.Consent)
	if err != nil {
		return failure(err)
	}

	if !result.Valid {
		s.log.InfoContext(ctx, "contact form rejected",
			logger.Event("contact_invalid"),
			logger.Fields(errorFields(result)...),
		)
		if wantsJSON(r) {
			return handler.JSONError(result.ValidationError())
		}
		form := s.formParams(req, result.Errors, StatusParams{Message: StatusInvalid, Kind: StatusKindError})
		return handler.WithStatus(
			handler.TemplPartial(s.views.Form(form), s.views.Page(s.pageParams(r, form)), handler.WithTarget(formTarget)),
			http.StatusUnprocessableEntity,
		)
	}

	if handler.IsDataStar(r) {
		return handler.SSE(func(stream handler.StreamContext) error {
			return s.stream(stream, attempt, started)
		})
	}

	if err := attempt.Submit(ctx); err != nil {
		s.logFailure(ctx, err, started)
		if wantsJSON(r) {
			return handler.JSONError(handler.ErrServiceUnavailable)
		}
		form := s.formParams(req, nil, StatusParams{Message: StatusFailed, Kind: StatusKindError})
		return handler.WithStatus(handler.Templ(s.views.Page(s.pageParams(r, form))), http.StatusServiceUnavailable)
	}
	s.logSent(ctx, started)

	if wantsJSON(r) {
		return handler.JSON(SubmitResponse{Status: StatusSent, Submission: result.Submission})
	}
	params := s.pageParams(r, s.formParams(SubmitRequest{}, nil, StatusParams{Message: StatusSent, Kind: StatusKindSuccess}))
	params.Toasts = []ToastParams{sentToast()}
	return handler.Templ(s.views.Page(params))
}

// stream runs a valid submission over SSE: sending state, delivery, then
// either a reset form with a toast or a failure status with the input kept.
func (s *Service) stream(stream handler.StreamContext, attempt *Attempt, started time.Time) error {
	patches := []handler.TemplPatch{handler.Patch(s.views.Status(StatusParams{Message: StatusSending, Kind: StatusKindInfo}))}
	for _, f := range AllFields {
		patches = append(patches, handler.Patch(s.views.FieldError(FieldErrorParams{Field: f})))
	}
	if err := stream.SendSignals(map[string]any{"sending": true}); err != nil {
		return err
	}
	if err := stream.SendMultiple(patches...); err != nil {
		return err
	}

	if err := attempt.Submit(stream); err != nil {
		s.logFailure(stream, err, started)
		if err := stream.SendMultiple(
			handler.Patch(s.views.Status(StatusParams{Message: StatusFailed, Kind: StatusKindError})),
			handler.Patch(s.views.Toast(ToastParams{Message: StatusFailed, Variant: ToastError, Timeout: ToastTimeout}),
				handler.WithTarget(toastTarget), handler.WithPatchMode(handler.PatchAppend)),
		); err != nil {
			return err
		}
		return stream.SendSignals(map[string]any{"sending": false})
	}
	s.logSent(stream, started)

	form := s.formParams(SubmitRequest{}, nil, StatusParams{Message: StatusSent, Kind: StatusKindSuccess})
	if err := stream.SendMultiple(
		handler.Patch(s.views.Form(form), handler.WithTarget(formTarget)),
		handler.Patch(s.views.Toast(sentToast()), handler.WithTarget(toastTarget), handler.WithPatchMode(handler.PatchAppend)),
	); err != nil {
		return err
	}
	return stream.SendSignals(resetSignals())
}

// PreviewSignals are the DataStar signals posted while the visitor types.
type PreviewSignals struct {
	Name    string `json:"nome"`
	Email   string `json:"email"`
	Subject string `json:"assunto"`
	Message string `json:"mensagem"`
}

func (p PreviewSignals) Fields() Fields {
	return Fields{Name: p.Name, Email: p.Email, Subject: p.Subject, Message: p.Message}
}

// preview never rewrites the inputs: it patches the sanitized preview and
// the error slots only, so escaping can not compound across keystrokes.
func (s *Service) preview(ctx handler.Context, _ struct{}) handler.Response {
	r := ctx.Request()
	if !handler.IsDataStar(r) {
		return failure(handler.ErrBadRequest)
	}

	var signals PreviewSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		return failure(fmt.Errorf("%w: %v", handler.ErrBadRequest, err))
	}

	result := Preview(signals.Fields())
	patches := []handler.TemplPatch{handler.Patch(s.views.Preview(PreviewParams{Submission: result.Submission}))}
	for _, f := range []Field{FieldName, FieldEmail, FieldSubject, FieldMessage} {
		patches = append(patches, handler.Patch(s.views.FieldError(FieldErrorParams{Field: f, Message: result.Error(f)})))
	}
	return handler.TemplMulti(patches...)
}

func (s *Service) limited(w http.ResponseWriter, r *http.Request) {
	s.log.WarnContext(r.Context(), "contact form rate limited",
		logger.Event("contact_rate_limited"),
		logger.ClientIP(ratelimiter.ByIP(r)),
		logger.RequestID(requestid.FromContext(r.Context())),
	)
	s.errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
}

func (s *Service) formParams(req SubmitRequest, errs map[Field]string, status StatusParams) FormParams {
	base := strings.TrimSuffix(s.cfg.BasePath, "/")
	return FormParams{
		Action:     base + "/",
		PreviewURL: base + "/preview",
		Values:     req.Fields(),
		Consent:    req.Consent,
		Errors:     errs,
		Status:     status,
	}
}

func (s *Service) pageParams(r *http.Request, form FormParams) PageParams {
	return PageParams{
		SiteName:    s.cfg.SiteName,
		Nav:         DefaultNav,
		CurrentPage: CurrentPage(r.URL.Path),
		Year:        s.now().Year(),
		Form:        form,
	}
}

func (s *Service) logSent(ctx handler.Context, started time.Time) {
	s.log.InfoContext(ctx, "contact message sent",
		logger.Event("contact_sent"),
		logger.Duration(s.now().Sub(started)),
	)
}

func (s *Service) logFailure(ctx handler.Context, err error, started time.Time) {
	s.log.ErrorContext(ctx, "contact message not delivered",
		logger.Event("contact_failed"),
		logger.Error(err),
		logger.Duration(s.now().Sub(started)),
	)
}

// CurrentPage returns the last segment of urlPath, or "index.html" when the
// path ends with a slash.
func CurrentPage(urlPath string) string {
	if urlPath == "" || strings.HasSuffix(urlPath, "/") {
		return "index.html"
	}
	return path.Base(urlPath)
}

func sentToast() ToastParams {
	return ToastParams{Message: ToastSent, Variant: ToastSuccess, Timeout: ToastTimeout}
}

func resetSignals() map[string]any {
	return map[string]any{
		string(FieldName):    "",
		string(FieldEmail):   "",
		string(FieldSubject): "",
		string(FieldMessage): "",
		string(FieldConsent): false,
		"sending":            false,
	}
}

func errorFields(r Result) []string {
	fields := make([]string, 0, len(r.Errors))
	for _, f := range AllFields {
		if _, ok := r.Errors[f]; ok {
			fields = append(fields, string(f))
		}
	}
	return fields
}

func wantsJSON(r *http.Request) bool {
	if handler.IsDataStar(r) {
		return false
	}
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

type failureResponse struct {
	err error
}

func (f failureResponse) Render(http.ResponseWriter, *http.Request) error {
	return f.err
}

// failure hands err to the service error handler.
func failure(err error) handler.Response {
	return failureResponse{err: err}
}

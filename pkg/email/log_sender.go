package email

import (
	"context"
	"log/slog"

	"github.com/ecotech/contactform/pkg/logger"
)

// LogSender only logs the envelope of each email. The body is never logged.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender returns a sender that reports every email to log.
func NewLogSender(log *slog.Logger) *LogSender {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &LogSender{log: log.With(logger.Component("email"))}
}

func (s *LogSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "email not delivered, no provider configured",
		slog.String("to", params.SendTo),
		slog.String("subject", params.Subject),
		slog.String("tag", params.Tag),
		slog.Int("body_bytes", len(params.BodyHTML)),
	)
	return nil
}

// NewSender picks a sender from cfg: Postmark when both tokens are set, an
// outbox directory when OutboxDir is set, a LogSender otherwise.
func NewSender(cfg Config, log *slog.Logger) (EmailSender, error) {
	switch {
	case cfg.HasPostmark():
		return NewPostmarkClient(cfg)
	case cfg.OutboxDir != "":
		return NewOutboxSender(cfg.OutboxDir), nil
	default:
		return NewLogSender(log), nil
	}
}

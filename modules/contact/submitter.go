package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"

	"github.com/ecotech/contactform/pkg/email"
	"github.com/ecotech/contactform/pkg/email/templates"
	"github.com/ecotech/contactform/pkg/sanitizer"
)

// ErrSubmitFailed wraps every error returned by a Submitter.
var ErrSubmitFailed = errors.New("contact: submission failed")

// Submitter delivers a validated submission.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, sub Submission) error

func (f SubmitterFunc) Submit(ctx context.Context, sub Submission) error {
	return f(ctx, sub)
}

// SimulatedSubmitter only waits Delay and succeeds. It stands in for a
// backend that does not exist yet.
type SimulatedSubmitter struct {
	Delay time.Duration
}

func (s SimulatedSubmitter) Submit(ctx context.Context, _ Submission) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// MailBody renders the notification sent for a submission.
type MailBody func(sub Submission) templ.Component

// MailSubmitter forwards submissions to the site inbox by email.
type MailSubmitter struct {
	sender email.EmailSender
	inbox  string
	body   MailBody
	policy *bluemonday.Policy
}

// NewMailSubmitter creates a submitter that emails inbox through sender.
func NewMailSubmitter(sender email.EmailSender, inbox string, body MailBody) *MailSubmitter {
	return &MailSubmitter{
		sender: sender,
		inbox:  inbox,
		body:   body,
		policy: bluemonday.UGCPolicy(),
	}
}

// Submit renders the body, passes it through a UGC policy and sends it with
// the visitor's address as Reply-To. A plain-text alternative is derived from
// the same markup.
func (m *MailSubmitter) Submit(ctx context.Context, sub Submission) error {
	html, err := templates.Render(ctx, m.body(sub))
	if err != nil {
		return fmt.Errorf("%w: render body: %w", ErrSubmitFailed, err)
	}

	err = m.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   m.inbox,
		ReplyTo:  sub.Email,
		Subject:  MailSubject(sub),
		BodyHTML: m.policy.Sanitize(html),
		BodyText: PlainText(html),
		Tag:      "contact-form",
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	return nil
}

// MailSubject builds a single-line subject from the escaped submission.
// Mail subjects are plain text, so the entities are decoded first.
func MailSubject(sub Submission) string {
	subject := sanitizer.Apply(sub.Subject,
		sanitizer.UnescapeHTML,
		sanitizer.PreventHeaderInjection,
		sanitizer.SingleLine,
		func(s string) string { return sanitizer.MaxLength(s, 120) },
	)
	name := sanitizer.SingleLine(sanitizer.PreventHeaderInjection(sanitizer.UnescapeHTML(sub.Name)))
	return strings.TrimSpace(fmt.Sprintf("[Contato] %s (%s)", subject, name))
}

var blockBreaks = strings.NewReplacer(
	"<br>", "\n",
	"</p>", "\n\n",
	"</h2>", "\n\n",
)

// PlainText turns rendered mail markup into readable text: line and block
// breaks become newlines, every tag is dropped and entities are decoded.
func PlainText(markup string) string {
	return sanitizer.Apply(markup,
		blockBreaks.Replace,
		sanitizer.StripTags,
		sanitizer.UnescapeHTML,
		sanitizer.Trim,
	)
}

// Package email sends transactional emails through a provider-agnostic
// EmailSender interface.
//
// Three senders are provided:
//   - the Postmark client (NewPostmarkClient) for production delivery
//   - OutboxSender, which writes HTML and JSON files into a directory
//   - LogSender, which only logs the envelope
//
// NewSender picks one from Config. Every sender validates SendEmailParams
// before doing anything; invalid params wrap ErrInvalidParams.
//
// # Usage
//
//	sender, err := email.NewSender(cfg, log)
//	if err != nil {
//	    return err
//	}
//	body, err := templates.Render(ctx, component)
//	if err != nil {
//	    return err
//	}
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "contato@ecotech.com.br",
//	    ReplyTo:  visitorEmail,
//	    Subject:  "Contato pelo site",
//	    BodyHTML: body,
//	})
//
// # Configuration
//
// Config is loaded from the environment (POSTMARK_SERVER_TOKEN,
// POSTMARK_ACCOUNT_TOKEN, SENDER_EMAIL, SUPPORT_EMAIL, EMAIL_OUTBOX_DIR).
// SupportEmail is the default Reply-To.
//
// # Errors
//
//   - ErrInvalidConfig: configuration rejected by NewPostmarkClient
//   - ErrInvalidParams: SendEmailParams.Validate failed
//   - ErrFailedToSendEmail: the provider or the filesystem failed
package email

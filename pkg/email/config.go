package email

// Config holds email delivery settings.
// Postmark tokens are optional: without them NewSender falls back to a
// development sender.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"no-reply@ecotech.local"`
	SupportEmail         string `env:"SUPPORT_EMAIL" envDefault:"contato@ecotech.local"`
	OutboxDir            string `env:"EMAIL_OUTBOX_DIR"`
}

// HasPostmark reports whether both Postmark tokens are configured.
func (c Config) HasPostmark() bool {
	return c.PostmarkServerToken != "" && c.PostmarkAccountToken != ""
}

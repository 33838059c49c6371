package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/ecotech/contactform/modules/contact"
	"github.com/ecotech/contactform/modules/contact/views"
	"github.com/ecotech/contactform/pkg/config"
	"github.com/ecotech/contactform/pkg/email"
	"github.com/ecotech/contactform/pkg/environment"
	"github.com/ecotech/contactform/pkg/httpserver"
	"github.com/ecotech/contactform/pkg/logger"
	"github.com/ecotech/contactform/pkg/ratelimiter"
	"github.com/ecotech/contactform/pkg/requestid"
)

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Name    string `env:"APP_NAME" envDefault:"contactd"`
	HTTP    httpserver.Config
	Email   email.Config
	Contact contact.Config `envPrefix:"CONTACT_"`
}

func newServeCmd() *cobra.Command {
	var envFiles []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadEnv(envFiles...); err != nil {
				return err
			}
			var cfg appConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "extra .env files to load before the environment is read")
	return cmd
}

func serve(ctx context.Context, cfg appConfig) error {
	env := environment.Parse(cfg.Env)
	log := logger.New(
		logger.WithEnvironment(env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	store := ratelimiter.NewMemoryStore()
	defer store.Close()

	router, err := newRouter(cfg, env, log, store)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("contact form ready",
				slog.String("base_path", mountPath(cfg.Contact.BasePath)),
				slog.Bool("deliver_mail", cfg.Contact.DeliverMail),
			)
		}),
	)
	return srv.Run(ctx, router)
}

func newRouter(cfg appConfig, env environment.Environment, log *slog.Logger, store ratelimiter.Store) (http.Handler, error) {
	limiter, err := ratelimiter.NewBucket(store, cfg.Contact.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("contact rate limit: %w", err)
	}

	opts := []contact.Option{
		contact.WithLogger(log),
		contact.WithRateLimiter(limiter),
	}
	if cfg.Contact.DeliverMail {
		sender, err := email.NewSender(cfg.Email, log)
		if err != nil {
			return nil, err
		}
		opts = append(opts, contact.WithSubmitter(contact.NewMailSubmitter(sender, cfg.Contact.Inbox, views.MailBody)))
	}
	svc := contact.NewService(cfg.Contact, views.New(), opts...)

	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		requestid.Middleware,
		environment.Middleware(env),
	)

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, func(ctx context.Context) error {
		_, err := limiter.Status(ctx, "healthcheck")
		return err
	}))
	r.Mount(mountPath(cfg.Contact.BasePath), svc.Handle())

	return r, nil
}

// mountPath turns CONTACT_BASE_PATH into a chi mount pattern; "" mounts at the root.
func mountPath(base string) string {
	return "/" + strings.Trim(base, "/")
}

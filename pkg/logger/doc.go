// Package logger builds *slog.Logger values with functional options and
// injects request-scoped attributes taken from context.Context.
//
// New wraps the text or JSON slog handler in LogHandlerDecorator, which runs
// every registered ContextExtractor when a record is handled:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "contactd"),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        environment.LoggerExtractor(),
//	    ),
//	)
//	log.InfoContext(r.Context(), "contact submitted",
//	    logger.SubmissionID(id),
//	    logger.Duration(time.Since(start)),
//	)
//
// The attribute helpers in attr.go keep key names consistent. Helpers that
// take an error or ID return an empty slog.Attr for nil or "", so callers
// can pass them without checking first.
package logger

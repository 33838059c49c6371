// Package environment propagates the application environment (development,
// staging, production) through context.Context and structured logs.
//
//	env := environment.Parse(cfg.Env)
//	router.Use(environment.Middleware(env))
//
//	if environment.IsDevelopment(r.Context()) {
//	    // show error details
//	}
//
// LoggerExtractor plugs into logger.WithContextExtractors.
package environment

// Package requestid assigns every HTTP request an identifier.
//
// Middleware reads X-Request-ID from the request, replacing it with a fresh
// UUID when missing or malformed (only letters, digits, '-' and '_', at most
// 128 bytes). The ID is echoed back in the response header and stored in the
// context for FromContext and the logger extractor.
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid

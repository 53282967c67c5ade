// Package requestid assigns every request an id carried in the X-Request-ID
// header. Valid incoming ids (alphanumerics, '-' and '_', at most 128
// characters) are reused; anything else is replaced with a random UUID.
//
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid

// Package logger builds *slog.Logger instances with functional options and a
// handler decorator that injects request-scoped values (request id, device
// class) from context.Context into every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        classifier.LoggerExtractor(),
//	    ),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "redirecting mobile client",
//	    logger.Path(r.URL.Path),
//	    logger.Decision(decision),
//	)
//
// Helpers in attr.go keep attribute keys consistent across packages. Error
// returns an empty attribute for a nil error, so it can be passed without a
// nil check.
package logger

package classifier

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a ContextExtractor for the logger
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if res, ok := FromContext(ctx); ok {
			return slog.String("device", res.Classification.String()), true
		}
		return slog.Attr{}, false
	}
}

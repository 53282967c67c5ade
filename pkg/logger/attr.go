package logger

import (
	"fmt"
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Path records the request path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// UserAgent records the raw User-Agent under the key "user_agent".
func UserAgent(ua string) slog.Attr {
	return slog.String("user_agent", ua)
}

// Classification records a device classification under the key "classification".
func Classification(c fmt.Stringer) slog.Attr {
	return slog.String("classification", c.String())
}

// Reason records the rule that produced a classification under the key "reason".
func Reason(r fmt.Stringer) slog.Attr {
	return slog.String("reason", r.String())
}

// Decision records a gate decision under the key "decision".
func Decision(d fmt.Stringer) slog.Attr {
	return slog.String("decision", d.String())
}

// Target records a redirect target under the key "target".
func Target(path string) slog.Attr {
	return slog.String("target", path)
}

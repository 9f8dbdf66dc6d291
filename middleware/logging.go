package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/sessionkit/core/handler"
	"github.com/dmitrymomot/sessionkit/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip disables logging for matching requests, typically health
	// probes.
	Skip func(ctx handler.Context) bool
	// Logger is the slog logger to use (default: slog.Default()).
	Logger *slog.Logger
	// LogLevel for successful requests (default: slog.LevelInfo).
	LogLevel slog.Level
	// SlowRequestThreshold promotes slow requests to warning level
	// (default: 5s).
	SlowRequestThreshold time.Duration
	// Component name for structured logging (default: "http").
	Component string
}

// Logging creates a request logging middleware with default
// configuration. Each completed request is logged with method, path,
// status, size, and latency; 4xx logs at warn and 5xx at error.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request logging middleware with custom
// configuration.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			req := ctx.Request()
			requestID, _ := GetRequestID(ctx)

			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
				err := resp(wrapped, r)
				duration := time.Since(start)

				attrs := []slog.Attr{
					logger.Component(cfg.Component),
					logger.Method(req.Method),
					logger.Path(req.URL.Path),
					logger.StatusCode(wrapped.status),
					logger.Count("bytes_out", wrapped.size),
					logger.Latency(duration),
					logger.RequestID(requestID),
				}

				level := cfg.LogLevel
				switch {
				case wrapped.status >= 500:
					level = slog.LevelError
					attrs = append(attrs, logger.Error(err))
				case wrapped.status >= 400:
					level = slog.LevelWarn
				case duration > cfg.SlowRequestThreshold:
					level = slog.LevelWarn
					attrs = append(attrs, slog.Bool("slow_request", true))
				}

				cfg.Logger.LogAttrs(req.Context(), level, "request completed", attrs...)
				return err
			}
		}
	}
}

// statusWriter captures the status code and body size of a response.
type statusWriter struct {
	http.ResponseWriter
	status        int
	size          int
	headerWritten bool
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.headerWritten = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

package logger

import (
	"io"
	"log/slog"
	"os"
)

type config struct {
	level  slog.Level
	json   bool
	output io.Writer
	attrs  []slog.Attr
}

// Option configures logger construction.
type Option func(*config)

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(c *config) { c.level = level }
}

// WithJSONFormatter switches output to JSON, the format log collectors
// expect in production.
func WithJSONFormatter() Option {
	return func(c *config) { c.json = true }
}

// WithOutput redirects log output, useful for capturing logs in tests.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.output = w }
}

// WithAttr attaches attributes to every record, such as the service
// name and version.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// WithDevelopment configures text output at debug level tagged with the
// application name.
func WithDevelopment(app string) Option {
	return func(c *config) {
		c.level = slog.LevelDebug
		c.json = false
		c.attrs = append(c.attrs, slog.String("app", app))
	}
}

// WithProduction configures JSON output at info level tagged with the
// application name.
func WithProduction(app string) Option {
	return func(c *config) {
		c.level = slog.LevelInfo
		c.json = true
		c.attrs = append(c.attrs, slog.String("app", app))
	}
}

// New creates a slog.Logger. Without options it logs text at info level
// to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := config{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	var h slog.Handler
	if cfg.json {
		h = slog.NewJSONHandler(cfg.output, handlerOpts)
	} else {
		h = slog.NewTextHandler(cfg.output, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}
	return slog.New(h)
}

// SetAsDefault installs the logger as slog's process-wide default.
func SetAsDefault(log *slog.Logger) {
	slog.SetDefault(log)
}

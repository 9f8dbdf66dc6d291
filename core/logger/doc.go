// Package logger provides slog construction helpers and typed
// attribute constructors used throughout the session stack.
//
// Create a logger with environment presets:
//
//	log := logger.New(logger.WithProduction("myapp"))
//	log.Info("server starting", logger.Component("server"))
//
// Attribute helpers return the empty Attr for nil input, so error
// logging needs no nil checks:
//
//	log.Error("session store failed", logger.Error(err))
package logger

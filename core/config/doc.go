// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// A .env file in the working directory is loaded automatically on first
// use. Parsing is performed by the caarlos0/env library, so struct
// fields use its env tags:
//
//	type SessionConfig struct {
//		Secret    string        `env:"SESSION_SECRET,required"`
//		Key       string        `env:"SESSION_KEY" envDefault:"session"`
//		MaxAge    time.Duration `env:"SESSION_MAX_AGE" envDefault:"336h"`
//		ChunkSize int           `env:"SESSION_CHUNK_SIZE" envDefault:"4096"`
//	}
//
//	var cfg SessionConfig
//	config.MustLoad(&cfg)
package config

package sessiontransport

import "time"

// JWTConfig holds bearer-token transport settings loaded from the
// environment.
type JWTConfig struct {
	Secret string        `env:"JWT_SECRET,required"`
	MaxAge time.Duration `env:"JWT_MAX_AGE" envDefault:"336h"`
	Issuer string        `env:"JWT_ISSUER"`
}

// NewJWTFromConfig creates a bearer-token transport from environment
// configuration. Options are applied after the config so they can
// override it.
func NewJWTFromConfig(cfg JWTConfig, opts ...JWTOption) (*JWT, error) {
	if cfg.Issuer != "" {
		opts = append([]JWTOption{WithIssuer(cfg.Issuer)}, opts...)
	}
	return NewJWT([]byte(cfg.Secret), cfg.MaxAge, opts...)
}

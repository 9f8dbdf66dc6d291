package sessiontransport

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrymomot/sessionkit/core/handler"
	"github.com/dmitrymomot/sessionkit/core/session"
)

// JWT carries the session mapping in an HS256-signed bearer token, for
// API clients that do not speak cookies. The mapping rides in a custom
// "data" claim next to the registered claims.
type JWT struct {
	secret []byte
	maxAge time.Duration
	issuer string
	now    func() time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Data session.Data `json:"data"`
}

// NewJWT creates a bearer-token transport. The secret signs tokens with
// HMAC-SHA256 and must be at least 32 bytes.
func NewJWT(secret []byte, maxAge time.Duration, opts ...JWTOption) (*JWT, error) {
	if len(secret) < 32 {
		return nil, ErrJWTSecretTooShort
	}
	if maxAge <= 0 {
		maxAge = session.DefaultMaxAge
	}
	t := &JWT{secret: secret, maxAge: maxAge, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// JWTOption configures a JWT transport.
type JWTOption func(*JWT)

// WithIssuer sets the iss claim on minted tokens and requires it on
// inbound ones.
func WithIssuer(issuer string) JWTOption {
	return func(t *JWT) { t.issuer = issuer }
}

// WithJWTTimeSource overrides the clock, for tests.
func WithJWTTimeSource(now func() time.Time) JWTOption {
	return func(t *JWT) { t.now = now }
}

// Load recovers the mapping from the Authorization header. A missing
// header or an expired token yields an empty mapping; an invalid
// signature yields session.ErrTampered.
func (t *JWT) Load(ctx handler.Context) (session.Data, error) {
	raw, ok := bearerToken(ctx.Request().Header.Get("Authorization"))
	if !ok {
		return session.Data{}, nil
	}

	var claims sessionClaims
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	}
	if t.issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.issuer))
	}
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, opts...)
	switch {
	case err == nil:
		if claims.Data == nil {
			return session.Data{}, nil
		}
		return claims.Data, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return session.Data{}, nil
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, errors.Join(session.ErrTampered, err)
	default:
		return session.Data{}, nil
	}
}

// Store mints a fresh token for the mapping and exposes it on the
// Authorization response header. An empty mapping clears the header so
// clients know the session ended.
func (t *JWT) Store(ctx handler.Context, data session.Data) error {
	w := ctx.ResponseWriter()
	if len(data) == 0 {
		w.Header().Del("Authorization")
		return nil
	}

	now := t.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.maxAge)),
		},
		Data: data,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return err
	}
	w.Header().Set("Authorization", "Bearer "+signed)
	return nil
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}

package sessiontransport

import "errors"

var (
	// ErrNilStore is returned when a server transport is created
	// without a backing store.
	ErrNilStore = errors.New("sessiontransport: nil store")

	// ErrNilCookieManager is returned when a cookie-based transport is
	// created without a cookie manager.
	ErrNilCookieManager = errors.New("sessiontransport: nil cookie manager")

	// ErrJWTSecretTooShort is returned when the JWT signing secret is
	// shorter than 32 bytes.
	ErrJWTSecretTooShort = errors.New("sessiontransport: jwt secret must be at least 32 bytes")
)

// Package cookie provides HTTP cookie emission and retrieval for the
// session transports: plain values, HMAC-SHA256 signed values with key
// rotation, per-cookie size enforcement, and deletion by immediate
// expiry.
//
// The manager carries the cookie attributes (path, domain, secure,
// http-only, same-site) as defaults applied to every cookie it writes;
// individual writes may override them with functional options. It does
// not interpret those attributes, only passes them through to
// Set-Cookie headers.
//
//	manager, err := cookie.New([]string{"your-32-char-secret-key-here!!!!"},
//		cookie.WithSecure(true),
//		cookie.WithSameSite(http.SameSiteLaxMode),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = manager.Set(w, "session-0", chunkValue)
//	value, err := manager.Get(r, "session-0")
//	manager.Delete(w, "session-0")
//
// Signed cookies protect small values (such as a server-side session
// ID) against modification without encrypting them:
//
//	err = manager.SetSigned(w, "sid", sessionID)
//	id, err := manager.GetSigned(r, "sid") // ErrInvalidSignature on tamper
//
// Multiple secrets enable key rotation: signing always uses the first
// secret, verification tries all of them.
package cookie

package sessiontransport

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sessionkit/core/cookie"
	"github.com/dmitrymomot/sessionkit/core/handler"
	"github.com/dmitrymomot/sessionkit/core/session"
)

type sessionIDKey struct{}

// Server is the store-backed transport: only an opaque session ID
// travels in a signed cookie, the mapping itself lives in a
// session.Store (memory, Redis).
type Server struct {
	store   session.Store
	cookies *cookie.Manager
	key     string
	ttl     time.Duration
}

// NewServer creates a store-backed transport. The key names the ID
// cookie and the ttl bounds both the cookie and the store entry.
func NewServer(store session.Store, cookies *cookie.Manager, key string, ttl time.Duration) (*Server, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if cookies == nil {
		return nil, ErrNilCookieManager
	}
	if key == "" {
		key = session.DefaultKey
	}
	if ttl <= 0 {
		ttl = session.DefaultMaxAge
	}
	return &Server{store: store, cookies: cookies, key: key, ttl: ttl}, nil
}

// Load resolves the session ID cookie and fetches the mapping from the
// store. A missing, unverifiable, or unknown ID starts a fresh empty
// session rather than failing the request.
func (s *Server) Load(ctx handler.Context) (session.Data, error) {
	id, err := s.cookies.GetSigned(ctx.Request(), s.key)
	if err != nil {
		return session.Data{}, nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return session.Data{}, nil
	}

	ctx.SetValue(sessionIDKey{}, id)

	data, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return session.Data{}, nil
		}
		return nil, err
	}
	return data, nil
}

// Store persists the mapping under the request's session ID, minting a
// new ID when the request arrived without one. An empty mapping deletes
// the store entry and expires the ID cookie.
func (s *Server) Store(ctx handler.Context, data session.Data) error {
	id, _ := ctx.Value(sessionIDKey{}).(string)

	if len(data) == 0 {
		if id != "" {
			if err := s.store.Delete(ctx, id); err != nil {
				return err
			}
			s.cookies.Delete(ctx.ResponseWriter(), s.key)
		}
		return nil
	}

	if id == "" {
		id = uuid.NewString()
	}
	if err := s.store.Set(ctx, id, data, s.ttl); err != nil {
		return err
	}
	return s.cookies.SetSigned(ctx.ResponseWriter(), s.key, id,
		cookie.WithMaxAge(int(s.ttl.Seconds())))
}

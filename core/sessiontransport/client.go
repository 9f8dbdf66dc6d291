package sessiontransport

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrymomot/sessionkit/core/cookie"
	"github.com/dmitrymomot/sessionkit/core/handler"
	"github.com/dmitrymomot/sessionkit/core/session"
)

// Client is the stateless cookie transport: the entire session mapping
// travels in chunked cookies named "{key}-0" through "{key}-(N-1)",
// produced and consumed by a session.ClientBackend. No server-side
// state exists.
type Client struct {
	backend *session.ClientBackend
	cookies *cookie.Manager
}

// NewClient creates a client-side cookie transport.
func NewClient(backend *session.ClientBackend, cookies *cookie.Manager) *Client {
	return &Client{
		backend: backend,
		cookies: cookies,
	}
}

// Load collects all chunk cookies from the request, orders them by
// numeric index, and recovers the session mapping. Absent or stale
// cookies yield an empty mapping; tampered cookies yield
// session.ErrTampered.
func (c *Client) Load(ctx handler.Context) (session.Data, error) {
	chunks := c.inboundChunks(ctx)
	values := make([][]byte, len(chunks))
	for i, chunk := range chunks {
		values[i] = []byte(chunk.value)
	}
	return c.backend.LoadData(values)
}

// Store dumps the mapping into chunk cookies. Cookies 0..N-1 receive
// the new values; any chunk index present on the request but beyond
// N-1 is expired so stale chunks from a larger prior session never
// linger in the browser. An empty mapping expires every inbound chunk.
//
// The dump is computed fully in memory before the first header is
// written, so an error never leaves a partial cookie set behind.
func (c *Client) Store(ctx handler.Context, data session.Data) error {
	w := ctx.ResponseWriter()
	inbound := c.inboundChunks(ctx)

	if len(data) == 0 {
		for _, chunk := range inbound {
			c.cookies.Delete(w, chunk.name)
		}
		return nil
	}

	values, err := c.backend.DumpData(data)
	if err != nil {
		return err
	}

	maxAge := int(c.backend.MaxAge().Seconds())
	for i, value := range values {
		name := c.backend.Key() + "-" + strconv.Itoa(i)
		if err := c.cookies.Set(w, name, string(value), cookie.WithMaxAge(maxAge)); err != nil {
			return err
		}
	}

	for _, chunk := range inbound {
		if chunk.index >= len(values) {
			c.cookies.Delete(w, chunk.name)
		}
	}
	return nil
}

type inboundChunk struct {
	name  string
	index int
	value string
}

// inboundChunks returns the request's "{key}-{i}" cookies sorted by
// numeric index. Cookie order in the header is not meaningful; only
// the name index is.
func (c *Client) inboundChunks(ctx handler.Context) []inboundChunk {
	prefix := c.backend.Key() + "-"

	var chunks []inboundChunk
	for _, ck := range ctx.Request().Cookies() {
		suffix, ok := strings.CutPrefix(ck.Name, prefix)
		if !ok {
			continue
		}
		index, err := strconv.Atoi(suffix)
		if err != nil || index < 0 || strconv.Itoa(index) != suffix {
			continue
		}
		chunks = append(chunks, inboundChunk{name: ck.Name, index: index, value: ck.Value})
	}

	sort.Slice(chunks, func(i, j int) bool { return chunks[i].index < chunks[j].index })
	return chunks
}

// Package sessiontransport moves session data between HTTP exchanges
// and the session backends.
//
// Three transports are provided. Client keeps the whole mapping in
// encrypted chunked cookies and needs no server state. Server keeps
// only a signed session ID in a cookie and stores the mapping in a
// session.Store. JWT carries the mapping in an HS256 bearer token for
// cookie-less API clients.
//
// All transports share the same contract: Load recovers the mapping
// from the request and Store writes it back to the response. Absent or
// expired state loads as an empty mapping; cryptographically invalid
// state fails loudly with session.ErrTampered.
package sessiontransport

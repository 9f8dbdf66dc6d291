package codec

import "errors"

// ErrMalformedPayload indicates the payload is not valid JSON and no
// session mapping could be recovered from it.
var ErrMalformedPayload = errors.New("codec: malformed session payload")

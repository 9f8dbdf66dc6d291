package chunk

// Split partitions b into consecutive pieces of at most size bytes,
// preserving order. The last piece may be shorter. The returned slices
// alias b; callers that mutate them must copy first.
//
// Split(nil) and Split of an empty slice return nil. A size below 1
// also returns nil, since no piece could hold any data.
func Split(b []byte, size int) [][]byte {
	if len(b) == 0 || size < 1 {
		return nil
	}

	pieces := make([][]byte, 0, (len(b)+size-1)/size)
	for len(b) > size {
		pieces = append(pieces, b[:size])
		b = b[size:]
	}
	return append(pieces, b)
}

// Join concatenates pieces in the given order. It never reorders:
// sequencing is the caller's responsibility. Join(Split(b, n)) == b
// for any valid n.
func Join(pieces [][]byte) []byte {
	total := 0
	for _, p := range pieces {
		total += len(p)
	}

	joined := make([]byte, 0, total)
	for _, p := range pieces {
		joined = append(joined, p...)
	}
	return joined
}

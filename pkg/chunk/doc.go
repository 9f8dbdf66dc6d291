// Package chunk splits byte blobs into fixed-size pieces and joins them
// back together. It exists for payloads that must fit inside bounded
// containers such as browser cookies, where a single value is limited
// to roughly 4KB.
//
// Splitting is purely length-based and lossless:
//
//	pieces := chunk.Split(blob, 4096)
//	restored := chunk.Join(pieces) // restored == blob
//
// The package performs no encoding and no reordering; callers track
// piece order themselves (for example through indexed cookie names).
package chunk

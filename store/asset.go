package store

import "sync/atomic"

// Asset is a shared handle to one decoded asset payload.
//
// Every successful Get returns a fresh handle; all handles for the same
// key share the same underlying bytes. The payload stays cached at least
// until every handle is released and a Clean pass runs.
type Asset struct {
	ce       *cacheEntry
	released atomic.Bool
}

// Bytes returns the decoded asset payload. The slice is shared between all
// holders and must not be modified. It remains valid after Release; the
// handle only stops pinning the cache entry.
func (a *Asset) Bytes() []byte {
	return a.ce.data
}

// Len returns the decoded payload length in bytes.
func (a *Asset) Len() int {
	return len(a.ce.data)
}

// Release drops this handle's claim on the cache entry, making it eligible
// for Clean once no other handle holds it. Releasing more than once is a
// no-op.
func (a *Asset) Release() {
	if a.released.CompareAndSwap(false, true) {
		a.ce.refs.Add(-1)
	}
}

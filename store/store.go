package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/emberfold/assetpack/compress"
	"github.com/emberfold/assetpack/format"
	"github.com/emberfold/assetpack/internal/hash"
	"github.com/emberfold/assetpack/internal/pool"
	"github.com/emberfold/assetpack/manifest"
)

var (
	// ErrNotFound reports a logical path absent from the manifest.
	ErrNotFound = errors.New("asset not found")

	// ErrCorruptData reports a decoded payload that failed validation:
	// codec-detected corruption, a decoded-length mismatch, or a checksum
	// mismatch against the manifest.
	ErrCorruptData = errors.New("corrupt asset data")
)

// Store resolves logical asset paths to decoded bytes with caching and
// cross-request deduplication.
//
// A Store is an explicit instance: it owns its cache and its in-flight
// registry, and multiple stores can coexist (one per test, one per mounted
// pack). It is safe for any number of concurrent Get and Clean callers.
type Store struct {
	m   *manifest.Manifest
	dir string

	// mu guards cache bookkeeping only; bundle reads and decodes happen
	// outside it so unrelated lookups never block on one another.
	mu    sync.Mutex
	cache map[string]*cacheEntry

	flight singleflight.Group

	// loads counts completed bundle read+decode operations.
	loads atomic.Int64
}

// cacheEntry is a decoded asset payload with shared ownership. refs counts
// live Asset handles; the cache's own reference is implicit and not
// counted, so Clean can drop exactly the entries no caller still holds.
type cacheEntry struct {
	data []byte
	refs atomic.Int64
}

// Open loads the manifest at manifestPath and returns a store reading
// bundles from bundleDir.
func Open(manifestPath, bundleDir string) (*Store, error) {
	m, err := manifest.ReadFile(manifestPath)
	if err != nil {
		return nil, err
	}

	return New(m, bundleDir), nil
}

// OpenDir opens a pack output directory: the manifest under its standard
// name, bundles alongside it.
func OpenDir(dir string) (*Store, error) {
	return Open(filepath.Join(dir, manifest.FileName), dir)
}

// New returns a store over an already-loaded manifest, reading bundles
// from bundleDir. The manifest is treated as read-only.
func New(m *manifest.Manifest, bundleDir string) *Store {
	return &Store{
		m:     m,
		dir:   bundleDir,
		cache: make(map[string]*cacheEntry),
	}
}

// Get resolves a logical asset key ("group/path/to/asset") to its decoded
// bytes.
//
// A cached asset returns immediately with a new shared handle. Concurrent
// calls for the same uncached key coalesce into a single bundle read and
// decode; every waiter receives a handle to the same bytes. If ctx ends
// while a coalesced load is still running, Get returns ctx.Err() but the
// load runs to completion on behalf of the remaining waiters and its
// result is cached for future callers.
//
// Errors: ErrNotFound if the key is absent from the manifest (no cache or
// in-flight state is created); ErrCorruptData on a decode-side validation
// failure; I/O errors pass through wrapped. Failures are never cached; a
// later Get retries from scratch.
//
// The caller must Release the returned Asset once done with the bytes.
func (s *Store) Get(ctx context.Context, key string) (*Asset, error) {
	ent, ok := s.m.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrNotFound)
	}

	s.mu.Lock()
	if ce, ok := s.cache[key]; ok {
		ce.refs.Add(1)
		s.mu.Unlock()

		return &Asset{ce: ce}, nil
	}
	s.mu.Unlock()

	ch := s.flight.DoChan(key, func() (any, error) {
		return s.load(key, ent)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		ce := res.Val.(*cacheEntry)
		ce.refs.Add(1)

		return &Asset{ce: ce}, nil
	case <-ctx.Done():
		// The flight keeps running for other waiters and still populates
		// the cache; only this caller gives up.
		return nil, ctx.Err()
	}
}

// load reads the asset's byte range out of its bundle, decodes it, and
// inserts the validated result into the cache. Runs inside a single-flight
// slot, so at most one load per key is active at a time.
func (s *Store) load(key string, ent manifest.Entry) (*cacheEntry, error) {
	// A flight that lost the race against a just-finished one for the same
	// key finds the entry already cached.
	s.mu.Lock()
	if ce, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return ce, nil
	}
	s.mu.Unlock()

	raw, err := s.readAndDecode(ent)
	if err != nil {
		return nil, err
	}
	s.loads.Add(1)

	ce := &cacheEntry{data: raw}

	s.mu.Lock()
	if existing, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return existing, nil
	}
	s.cache[key] = ce
	s.mu.Unlock()

	return ce, nil
}

func (s *Store) readAndDecode(ent manifest.Entry) ([]byte, error) {
	f, err := os.Open(filepath.Join(s.dir, ent.Bundle))
	if err != nil {
		return nil, fmt.Errorf("open bundle %q: %w", ent.Bundle, err)
	}
	defer f.Close()

	buf := pool.GetBundleBuffer()
	defer pool.PutBundleBuffer(buf)

	buf.Resize(int(ent.Size))
	if ent.Size > 0 {
		if _, err := f.ReadAt(buf.Bytes(), int64(ent.Offset)); err != nil {
			return nil, fmt.Errorf("read bundle %q: %w", ent.Bundle, err)
		}
	}

	codec, err := compress.GetCodec(ent.Compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	raw, err := codec.Decompress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if uint64(len(raw)) != ent.RawSize {
		return nil, fmt.Errorf("%w: decoded %d bytes, manifest records %d", ErrCorruptData, len(raw), ent.RawSize)
	}
	if hash.Sum(raw) != ent.Checksum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptData)
	}

	// The None codec hands back the staging buffer itself; the cache must
	// own its bytes beyond the buffer's return to the pool.
	if ent.Compression == format.CompressionNone {
		raw = bytes.Clone(raw)
	}

	return raw, nil
}

// Clean drops every cache entry with no live handles. Entries still held
// by a caller are untouched. Clean is explicit and caller-invoked; the
// store never evicts on its own.
func (s *Store) Clean() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, ce := range s.cache {
		if ce.refs.Load() == 0 {
			delete(s.cache, key)
		}
	}
}

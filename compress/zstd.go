package compress

// ZstdCompressor provides Zstandard compression.
//
// Zstd is the widest-range codec here (levels 1-22, level 0 meaning the
// algorithm default of 3) and the usual choice for asset groups where
// decompression speed matters but storage still counts: fast streaming
// decode with a ratio close to the slow codecs at the upper levels.
//
// Two implementations exist behind build tags:
//   - cgo builds use the libzstd binding, which honors the full 1-22 level
//     range natively.
//   - pure-Go builds map the clamped level onto the nearest of the four
//     speed tiers the Go implementation exposes.
//
// Both produce standard zstd frames; either side can decode the other's
// output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

package compress

// NoOpCompressor provides a no-operation codec that bypasses data without
// compression.
//
// This codec is used for groups that opt out of compression entirely, for
// asset types that are already compressed (PNG, Ogg, ...), and as a
// baseline in benchmarks.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation codec that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input data as-is; the level is ignored.
//
// Note: the returned slice shares the same underlying memory as the input.
// Callers should not modify the input data after calling this method if
// they plan to use the returned slice.
func (c NoOpCompressor) Compress(data []byte, _ int) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data as-is.
//
// Note: the returned slice shares the same underlying memory as the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

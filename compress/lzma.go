package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/emberfold/assetpack/format"
)

// lzmaDictCaps maps levels 0-9 onto dictionary capacities following the xz
// preset table. A larger dictionary trades memory and speed for ratio.
var lzmaDictCaps = [10]int{
	1 << 18, // 256 KiB
	1 << 20,
	1 << 21,
	1 << 22,
	1 << 22,
	1 << 23,
	1 << 23,
	1 << 24,
	1 << 25,
	1 << 26, // 64 MiB
}

// LzmaCompressor provides LZMA compression in xz framing.
//
// The slowest codec with the highest ratio, meant for assets packed once
// and read rarely. The xz framing carries a CRC64 of the raw bytes, so
// corrupted payloads are detected at decompression time. Levels range 0-9.
type LzmaCompressor struct{}

var _ Codec = (*LzmaCompressor)(nil)

// NewLzmaCompressor creates a new LZMA codec.
func NewLzmaCompressor() LzmaCompressor {
	return LzmaCompressor{}
}

// Compress compresses the input data using LZMA at the clamped level.
func (c LzmaCompressor) Compress(data []byte, level int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	level = format.ClampLevel(format.CompressionLzma, level)

	var buf bytes.Buffer
	cfg := xz.WriterConfig{DictCap: lzmaDictCaps[level]}
	zw, err := cfg.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("lzma compression failed: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("lzma compression failed: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("lzma compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses LZMA-compressed data. The framing CRC64 is
// verified; corrupted input returns an error.
func (c LzmaCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("lzma decompression failed: %w", err)
	}

	decompressed, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("lzma decompression failed: %w", err)
	}

	return decompressed, nil
}

package format

import (
	"fmt"
	"strings"
)

// CompressionType identifies the compression algorithm applied to an
// individual asset payload.
type CompressionType uint8

const (
	CompressionNone    CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionDeflate CompressionType = 0x2 // CompressionDeflate represents Deflate (gzip framing) compression.
	CompressionBzip2   CompressionType = 0x3 // CompressionBzip2 represents Burrows-Wheeler (bzip2) compression.
	CompressionZstd    CompressionType = 0x4 // CompressionZstd represents Zstandard compression.
	CompressionLzma    CompressionType = 0x5 // CompressionLzma represents LZMA (xz framing) compression.
	CompressionLZ4     CompressionType = 0x6 // CompressionLZ4 represents LZ4 frame compression.
)

// ZstdDefaultLevel is the level used when a zstd group requests level 0,
// matching the algorithm's documented default.
const ZstdDefaultLevel = 3

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionDeflate:
		return "Deflate"
	case CompressionBzip2:
		return "Bzip2"
	case CompressionZstd:
		return "Zstd"
	case CompressionLzma:
		return "Lzma"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression resolves a configuration compression name to its
// CompressionType. Names are case-insensitive and cover the spellings the
// configuration format accepts; an empty name means no compression.
// Unknown names are rejected here so a bad configuration fails before any
// asset I/O happens.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, nil
	case "deflate", "flate":
		return CompressionDeflate, nil
	case "bwt", "burrows-wheeler-transform", "bzip2", "bzip", "bz":
		return CompressionBzip2, nil
	case "zstd", "zstandard":
		return CompressionZstd, nil
	case "lzma", "lempel-ziv-markov-chain-algorithm":
		return CompressionLzma, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

// LevelRange returns the inclusive valid compression-level range for the
// given algorithm. CompressionNone ignores levels entirely and reports
// (0, 0).
func LevelRange(c CompressionType) (minLevel, maxLevel int) {
	switch c {
	case CompressionDeflate, CompressionBzip2, CompressionLzma:
		return 0, 9
	case CompressionZstd:
		return 1, 22
	case CompressionLZ4:
		return 0, 16
	default:
		return 0, 0
	}
}

// ClampLevel saturates level into the algorithm's valid range. Out-of-range
// levels are never an error. For zstd, level 0 maps to the algorithm's
// default level rather than the range minimum.
func ClampLevel(c CompressionType, level int) int {
	if c == CompressionZstd && level == 0 {
		return ZstdDefaultLevel
	}

	minLevel, maxLevel := LevelRange(c)
	if level < minLevel {
		return minLevel
	}
	if level > maxLevel {
		return maxLevel
	}

	return level
}

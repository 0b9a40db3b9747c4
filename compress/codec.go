package compress

import (
	"fmt"

	"github.com/emberfold/assetpack/format"
)

// Compressor compresses individual asset payloads.
//
// Asset payloads are compressed one at a time (never whole bundles) so the
// runtime store can locate and decode a single asset without touching the
// rest of its bundle.
type Compressor interface {
	// Compress compresses the input data at the given level and returns the
	// compressed result.
	//
	// The level is clamped into the algorithm's valid range before use;
	// out-of-range levels never fail. The returned slice is newly allocated
	// and owned by the caller; the input slice is not modified.
	Compress(data []byte, level int) ([]byte, error)
}

// Decompressor decompresses previously compressed asset payloads.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original bytes.
	//
	// The input must have been produced by the matching Compress. Corrupted
	// or foreign input returns an error for framings that carry integrity
	// checks rather than producing wrong bytes. The returned slice is newly
	// allocated and owned by the caller.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
//
// All builtin codecs are stateless values and safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the specified
// compression type. The target string names the usage site for error
// messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionDeflate:
		return NewDeflateCompressor(), nil
	case format.CompressionBzip2:
		return NewBzip2Compressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionLzma:
		return NewLzmaCompressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:    NewNoOpCompressor(),
	format.CompressionDeflate: NewDeflateCompressor(),
	format.CompressionBzip2:   NewBzip2Compressor(),
	format.CompressionZstd:    NewZstdCompressor(),
	format.CompressionLzma:    NewLzmaCompressor(),
	format.CompressionLZ4:     NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

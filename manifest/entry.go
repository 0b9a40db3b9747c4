package manifest

import (
	"github.com/emberfold/assetpack/format"
)

// Entry locates one asset inside a bundle file.
//
// Entries are created by the packer and immutable afterward. The compressed
// payload occupies the byte range [Offset, Offset+Size) of the bundle file
// named by Bundle; decoding it with the Compression codec yields RawSize
// bytes whose xxHash64 equals Checksum.
type Entry struct {
	// Group is the asset group the entry belongs to.
	Group string `cbor:"group"`

	// Path is the logical asset path, relative to the group's source
	// folder, slash-separated.
	Path string `cbor:"path"`

	// Bundle is the file name of the owning bundle within the output
	// directory.
	Bundle string `cbor:"bundle"`

	// Offset is the byte offset of the compressed payload in the bundle.
	Offset uint64 `cbor:"offset"`

	// Size is the compressed payload length in bytes.
	Size uint64 `cbor:"size"`

	// RawSize is the decompressed length in bytes.
	RawSize uint64 `cbor:"raw_size"`

	// Checksum is the xxHash64 of the decompressed bytes.
	Checksum uint64 `cbor:"checksum"`

	// Compression is the codec the payload was compressed with.
	Compression format.CompressionType `cbor:"compression"`
}

// Key returns the entry's globally unique manifest key.
func (e Entry) Key() string {
	return Key(e.Group, e.Path)
}

// Key joins a group name and a group-relative logical path into the
// manifest key engine code resolves assets by, e.g. "textures/ui/icon.png".
func Key(group, path string) string {
	return group + "/" + path
}

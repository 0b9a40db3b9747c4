// Package manifest defines the persisted index linking logical asset paths
// to the bundle file, byte range and codec that hold their compressed
// payload.
//
// The manifest is the only contract between the build-time packer and the
// runtime store: the packer records one Entry per asset, the store loads
// the whole manifest into memory once and resolves keys against it without
// ever scanning bundle contents.
//
// # Wire format
//
//	offset  size  field
//	0       4     magic "APKM"
//	4       2     format version, little-endian
//	6       2     reserved
//	8       -     s2-compressed CBOR payload
//
// The CBOR payload uses Core Deterministic Encoding, so two manifests
// holding the same entries are byte-identical regardless of insertion
// order. Every entry also carries an xxHash64 of its raw bytes, giving the
// store corruption detection even for codecs whose framing has no checksum.
package manifest

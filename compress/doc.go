// Package compress provides the compression codecs applied to individual
// asset payloads at pack time and reversed by the runtime store.
//
// Each asset is compressed on its own, never a whole bundle, so the store
// can read and decode a single asset's byte range without touching the
// rest of its bundle.
//
// # Supported Algorithms
//
//   - None: passthrough (level ignored)
//   - Deflate: gzip framing, levels 0-9
//   - Bzip2: Burrows-Wheeler, levels 0-9
//   - Zstd: fast streaming decode, levels 1-22 (0 = default 3)
//   - Lzma: xz framing, highest ratio, levels 0-9
//   - LZ4: fastest decode, lowest ratio, levels 0-16
//
// Levels outside an algorithm's range are clamped, never rejected; see
// format.ClampLevel for the exact mapping.
//
// # Integrity
//
// Deflate, Bzip2, Lzma and LZ4 framings carry their own checksums and fail
// decompression on corrupted input. Zstd frames carry a CRC in pure-Go
// builds. None has no framing at all; the manifest's per-asset checksum
// (see the manifest package) covers corruption detection for every codec
// regardless of framing.
//
// # Choosing a codec per group
//
//	| Group contents            | Recommended | Reason                    |
//	|---------------------------|-------------|---------------------------|
//	| Already-compressed assets | None        | No double-compression win |
//	| Hot-path textures, audio  | LZ4         | Fastest decode            |
//	| General asset data        | Zstd        | Ratio/speed balance       |
//	| Cold, rarely-read data    | Lzma        | Highest ratio             |
//
// All codecs are stateless values and safe for concurrent use; the zstd
// implementation pools its encoders and decoders internally.
package compress

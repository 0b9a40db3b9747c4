// Package store implements the runtime side of the asset pipeline: it
// opens a manifest and its bundle files and resolves logical asset paths
// to decoded bytes on demand.
//
// The store serves many concurrent callers (render loop, audio mixer,
// loader tasks), so three properties drive its design:
//
//   - Decoded payloads are cached with shared ownership. Get hands out
//     refcounted handles to one buffer; Clean drops exactly the entries no
//     handle still pins. Nothing is ever evicted automatically.
//   - Concurrent Gets for the same uncached key single-flight into one
//     bundle read and one decode. A caller that gives up (context
//     cancellation) never aborts the shared load.
//   - The store's mutex covers map bookkeeping only. File I/O and
//     decompression run outside it, so a slow decode of one asset never
//     blocks lookups of others.
//
// Every decoded payload is validated against the manifest's recorded raw
// length and xxHash64 before it enters the cache, so a corrupted bundle
// surfaces as ErrCorruptData instead of wrong bytes, for every codec
// including uncompressed payloads.
package store

// Package pack implements the build-time asset packer.
//
// A pack run reads the configuration at <assets>/config.toml (plus optional
// per-group config.toml overrides), enumerates each group's source folder
// in a fixed lexicographic order, compresses every asset individually with
// the group's codec and level, bin-packs the compressed payloads greedily
// into bundles no larger than the configured size bound, and writes the
// bundle files and the manifest to the output directory.
//
// Packing is all-or-nothing: no bundle or manifest byte reaches disk until
// every group has packed successfully, so an unreadable source file can
// never leave a partial manifest behind. Runs are reproducible: identical
// inputs and configuration yield byte-identical output, bundle files and
// manifest alike.
//
// Groups are independent and pack in parallel; the observable output is
// unaffected because bundles are named per group and the manifest encoding
// is order-independent.
package pack

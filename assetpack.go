// Package assetpack packs game assets into compact bundle files at build
// time and resolves logical asset paths to decoded bytes at run time.
//
// The pipeline has two halves sharing one artifact, the manifest:
//
//   - The pack package scans configured asset groups, compresses every
//     asset individually, bin-packs the payloads into size-bounded bundle
//     files and records each asset's location in the manifest.
//   - The store package loads the manifest and serves decoded asset bytes
//     with refcounted caching and single-flight deduplication of
//     concurrent requests.
//
// # Basic Usage
//
// Packing an asset tree (typically from a build step or the assetpack CLI):
//
//	cfg, _ := assetpack.LoadConfig("assets")
//	m, _ := assetpack.Pack(ctx, "assets", cfg, "dist/assets")
//	fmt.Println(m.Len(), "assets packed")
//
// Resolving assets at run time:
//
//	st, _ := assetpack.OpenDir("dist/assets")
//	asset, err := st.Get(ctx, "textures/environment/stone.png")
//	if err != nil {
//	    return err
//	}
//	defer asset.Release()
//	decode(asset.Bytes())
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the pack and
// store packages, simplifying the most common use cases. For fine-grained
// control (custom loggers, pre-loaded manifests, direct codec access), use
// the pack, store, compress and manifest packages directly.
package assetpack

import (
	"context"

	"github.com/emberfold/assetpack/manifest"
	"github.com/emberfold/assetpack/pack"
	"github.com/emberfold/assetpack/store"
)

// LoadConfig reads the packing configuration at <assetsDir>/config.toml.
func LoadConfig(assetsDir string) (*pack.Config, error) {
	return pack.LoadConfig(assetsDir)
}

// Pack packs the asset tree at assetsDir into outDir using cfg, returning
// the written manifest. outDir may be empty to use the config's output
// directory.
func Pack(ctx context.Context, assetsDir string, cfg *pack.Config, outDir string) (*manifest.Manifest, error) {
	p, err := pack.New(assetsDir, cfg, pack.Options{OutputDir: outDir})
	if err != nil {
		return nil, err
	}

	return p.Run(ctx)
}

// OpenDir opens a packed output directory for runtime asset resolution.
func OpenDir(dir string) (*store.Store, error) {
	return store.OpenDir(dir)
}

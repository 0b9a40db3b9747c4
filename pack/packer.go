package pack

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/emberfold/assetpack/compress"
	"github.com/emberfold/assetpack/internal/hash"
	"github.com/emberfold/assetpack/manifest"
)

// Options adjusts a Packer beyond the configuration document.
type Options struct {
	// OutputDir overrides the config's output directory when non-empty.
	OutputDir string

	// Logger receives pack progress; nil means slog.Default().
	Logger *slog.Logger
}

// Packer packs the asset tree described by a Config into bundle files and
// a manifest. Construction resolves and validates all groups and codecs,
// so a Packer that exists cannot fail on configuration anymore, only on
// asset I/O.
type Packer struct {
	assetsDir string
	outDir    string
	exclude   []string
	groups    []groupSpec
	codecs    map[string]compress.Codec // by group name
	logger    *slog.Logger
}

// New creates a Packer for the asset tree rooted at assetsDir. All
// configuration errors (missing group folders, unknown compression names,
// non-positive size bounds) are reported here, before any asset file I/O.
func New(assetsDir string, cfg *Config, opts Options) (*Packer, error) {
	groups, err := resolveGroups(assetsDir, cfg)
	if err != nil {
		return nil, err
	}

	codecs := make(map[string]compress.Codec, len(groups))
	for _, g := range groups {
		codec, err := compress.CreateCodec(g.compression, "group "+g.name)
		if err != nil {
			return nil, err
		}
		codecs[g.name] = codec
	}

	outDir := opts.OutputDir
	if outDir == "" {
		if cfg.Output != nil {
			outDir = *cfg.Output
		} else {
			outDir = "."
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	exclude := make([]string, 0, len(cfg.Exclude))
	for _, e := range cfg.Exclude {
		exclude = append(exclude, path.Clean(filepath.ToSlash(e)))
	}

	return &Packer{
		assetsDir: assetsDir,
		outDir:    outDir,
		exclude:   exclude,
		groups:    groups,
		codecs:    codecs,
		logger:    logger,
	}, nil
}

type packedBundle struct {
	name string
	data []byte
}

type groupResult struct {
	bundles  []packedBundle
	entries  []manifest.Entry
	rawBytes int64
}

// Run packs every group and writes the bundle files plus the manifest to
// the output directory. Groups pack independently and in parallel, but
// nothing is written until every group has packed: a read failure on any
// source asset aborts the whole run with no partial output.
//
// Runs are deterministic: byte-identical inputs and configuration produce
// byte-identical bundles and manifest.
func (p *Packer) Run(ctx context.Context) (*manifest.Manifest, error) {
	results := make([]groupResult, len(p.groups))

	eg, ctx := errgroup.WithContext(ctx)
	for i, g := range p.groups {
		i, g := i, g
		eg.Go(func() error {
			res, err := p.packGroup(ctx, g)
			if err != nil {
				return fmt.Errorf("group %q: %w", g.name, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	m := manifest.New()
	for _, res := range results {
		for _, e := range res.entries {
			if err := m.Add(e); err != nil {
				return nil, err
			}
		}
	}

	if err := os.MkdirAll(p.outDir, 0o755); err != nil {
		return nil, err
	}

	var totalCompressed int64
	for i, res := range results {
		g := p.groups[i]
		var groupCompressed int64
		for _, b := range res.bundles {
			if err := os.WriteFile(filepath.Join(p.outDir, b.name), b.data, 0o644); err != nil {
				return nil, err
			}
			groupCompressed += int64(len(b.data))
			p.logger.Debug("wrote bundle", "group", g.name, "bundle", b.name, "bytes", len(b.data))
		}
		totalCompressed += groupCompressed
		p.logger.Info("packed group",
			"group", g.name,
			"compression", g.compression.String(),
			"assets", len(res.entries),
			"bundles", len(res.bundles),
			"raw_bytes", res.rawBytes,
			"compressed_bytes", groupCompressed,
		)
	}

	if err := m.WriteFile(filepath.Join(p.outDir, manifest.FileName)); err != nil {
		return nil, err
	}
	p.logger.Info("wrote manifest", "entries", m.Len(), "compressed_bytes", totalCompressed)

	return m, nil
}

// packGroup compresses every asset of one group and bin-packs them into
// bundles, entirely in memory. Assets are taken in lexicographic order of
// their group-relative path; bins fill greedily up to the group's size
// bound, except that an asset whose compressed size alone exceeds the
// bound gets a bundle to itself.
func (p *Packer) packGroup(ctx context.Context, g groupSpec) (groupResult, error) {
	paths, err := p.listGroupFiles(g)
	if err != nil {
		return groupResult{}, err
	}

	codec := p.codecs[g.name]

	var res groupResult
	var cur []manifest.Entry
	var curPayloads [][]byte
	var curSize int64
	bundleIndex := 0

	seal := func(entries []manifest.Entry, payloads [][]byte) {
		name := bundleName(g.naming, g.name, bundleIndex)
		bundleIndex++

		var data []byte
		var offset uint64
		for i := range entries {
			entries[i].Bundle = name
			entries[i].Offset = offset
			offset += entries[i].Size
			data = append(data, payloads[i]...)
		}

		res.bundles = append(res.bundles, packedBundle{name: name, data: data})
		res.entries = append(res.entries, entries...)
	}

	for _, rel := range paths {
		if err := ctx.Err(); err != nil {
			return groupResult{}, err
		}

		raw, err := os.ReadFile(filepath.Join(g.dir, filepath.FromSlash(rel)))
		if err != nil {
			return groupResult{}, err
		}

		compressed, err := codec.Compress(raw, g.level)
		if err != nil {
			return groupResult{}, fmt.Errorf("compress %q: %w", rel, err)
		}

		entry := manifest.Entry{
			Group:       g.name,
			Path:        rel,
			Size:        uint64(len(compressed)),
			RawSize:     uint64(len(raw)),
			Checksum:    hash.Sum(raw),
			Compression: g.compression,
		}
		res.rawBytes += int64(len(raw))

		size := int64(len(compressed))
		switch {
		case size > g.maxSize:
			// Oversized asset: seal whatever accumulated, then give the
			// asset a bundle of its own.
			if len(cur) > 0 {
				seal(cur, curPayloads)
				cur, curPayloads, curSize = nil, nil, 0
			}
			seal([]manifest.Entry{entry}, [][]byte{compressed})
		case curSize+size > g.maxSize && len(cur) > 0:
			seal(cur, curPayloads)
			cur = []manifest.Entry{entry}
			curPayloads = [][]byte{compressed}
			curSize = size
		default:
			cur = append(cur, entry)
			curPayloads = append(curPayloads, compressed)
			curSize += size
		}
	}

	if len(cur) > 0 {
		seal(cur, curPayloads)
	}

	return res, nil
}

// listGroupFiles enumerates the group's regular files in lexicographic
// order of their group-relative slash path, dropping excluded paths and
// the group's own config.toml.
func (p *Packer) listGroupFiles(g groupSpec) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(g.dir, func(fp string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(g.dir, fp)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if rel == ConfigFileName {
			return nil
		}
		if p.excluded(g, rel) {
			return nil
		}

		paths = append(paths, rel)

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)

	return paths, nil
}

// excluded reports whether the group-relative path matches an exclude
// entry. Entries match either the group-relative path or the
// asset-root-relative path, exactly or as a path.Match pattern.
func (p *Packer) excluded(g groupSpec, rel string) bool {
	rooted := path.Join(g.subdir, rel)
	for _, e := range p.exclude {
		if e == rel || e == rooted {
			return true
		}
		if ok, err := path.Match(e, rel); err == nil && ok {
			return true
		}
		if ok, err := path.Match(e, rooted); err == nil && ok {
			return true
		}
	}

	return false
}

func bundleName(naming, group string, index int) string {
	name := strings.ReplaceAll(naming, "%g", group)
	return strings.ReplaceAll(name, "%i", strconv.Itoa(index))
}

package pack

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/emberfold/assetpack/format"
)

// Built-in defaults applied when neither the root config nor a group
// config sets a value.
const (
	DefaultMaxSize = 30_000_000
	DefaultNaming  = "%g%i"

	// ConfigFileName is the configuration file looked up in the asset root
	// and, optionally, in each group folder.
	ConfigFileName = "config.toml"

	defaultLevel = 3
)

// Config is the root configuration document at <assets>/config.toml.
// Optional fields are pointers so a group config can distinguish "unset"
// from an explicit zero.
type Config struct {
	// MaxSize is the bundle size bound in bytes.
	MaxSize *int64 `toml:"max_size"`

	// Naming is the bundle naming template; %g expands to the group name
	// and %i to the bundle index within the group.
	Naming *string `toml:"naming"`

	// Exclude lists asset paths to skip, relative to the asset root or to
	// a group folder; entries may use path.Match patterns.
	Exclude []string `toml:"exclude"`

	// Output is the output directory for bundles and the manifest.
	Output *string `toml:"output"`

	// Groups maps group names to their source subfolders under the asset
	// root.
	Groups map[string]string `toml:"groups"`
}

// GroupConfig is the optional per-group override document at
// <assets>/<group>/config.toml. Set fields win over the root config.
type GroupConfig struct {
	MaxSize          *int64  `toml:"max_size"`
	Compression      *string `toml:"compression"`
	CompressionLevel *int    `toml:"compression_level"`
	Naming           *string `toml:"naming"`
}

// LoadConfig reads and parses <assetsDir>/config.toml.
func LoadConfig(assetsDir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(assetsDir, ConfigFileName))
	if err != nil {
		return nil, fmt.Errorf("could not read %s in the asset folder: %w", ConfigFileName, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed %s: %w", ConfigFileName, err)
	}

	return &cfg, nil
}

// groupSpec is one group's fully resolved packing parameters, immutable
// for the run.
type groupSpec struct {
	name        string
	dir         string // absolute source folder
	subdir      string // asset-root-relative source folder, slash-separated
	maxSize     int64
	compression format.CompressionType
	level       int
	naming      string
}

// resolveGroups validates the group table and merges each group's optional
// config.toml over the root defaults. All configuration errors, including
// unknown compression names, surface here, before any asset file is read.
func resolveGroups(assetsDir string, cfg *Config) ([]groupSpec, error) {
	names := make([]string, 0, len(cfg.Groups))
	for name := range cfg.Groups {
		names = append(names, name)
	}
	sort.Strings(names)

	rootMaxSize := int64(DefaultMaxSize)
	if cfg.MaxSize != nil {
		rootMaxSize = *cfg.MaxSize
	}
	rootNaming := DefaultNaming
	if cfg.Naming != nil {
		rootNaming = *cfg.Naming
	}

	specs := make([]groupSpec, 0, len(names))
	for _, name := range names {
		subdir := cfg.Groups[name]
		dir := filepath.Join(assetsDir, filepath.FromSlash(subdir))

		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("group %q does not exist: %w", name, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("group %q is not a directory", name)
		}

		gc, err := loadGroupConfig(dir)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}

		spec := groupSpec{
			name:    name,
			dir:     dir,
			subdir:  subdir,
			maxSize: rootMaxSize,
			naming:  rootNaming,
			level:   defaultLevel,
		}

		compressionName := ""
		if gc != nil {
			if gc.MaxSize != nil {
				spec.maxSize = *gc.MaxSize
			}
			if gc.Naming != nil {
				spec.naming = *gc.Naming
			}
			if gc.Compression != nil {
				compressionName = *gc.Compression
			}
			if gc.CompressionLevel != nil {
				spec.level = *gc.CompressionLevel
			}
		}

		spec.compression, err = format.ParseCompression(compressionName)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
		spec.level = format.ClampLevel(spec.compression, spec.level)

		if spec.maxSize <= 0 {
			return nil, fmt.Errorf("group %q: max_size must be positive, got %d", name, spec.maxSize)
		}

		specs = append(specs, spec)
	}

	return specs, nil
}

// loadGroupConfig reads the group's config.toml if present; a missing file
// is not an error.
func loadGroupConfig(dir string) (*GroupConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	var gc GroupConfig
	if err := toml.Unmarshal(data, &gc); err != nil {
		return nil, fmt.Errorf("malformed %s: %w", ConfigFileName, err)
	}

	return &gc, nil
}

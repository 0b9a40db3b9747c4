// Command assetpack packs an asset tree into bundle files and a manifest,
// driven by the config.toml at the asset root.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/emberfold/assetpack/pack"
)

func main() {
	assetsDir := pflag.String("assets", ".", "asset root directory containing config.toml")
	outDir := pflag.String("out", "", "output directory, overriding the config's output setting")
	verbose := pflag.BoolP("verbose", "v", false, "log every bundle written")
	pflag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*assetsDir, *outDir, logger); err != nil {
		fmt.Fprintln(os.Stderr, "assetpack:", err)
		os.Exit(1)
	}
}

func run(assetsDir, outDir string, logger *slog.Logger) error {
	cfg, err := pack.LoadConfig(assetsDir)
	if err != nil {
		return err
	}

	p, err := pack.New(assetsDir, cfg, pack.Options{OutputDir: outDir, Logger: logger})
	if err != nil {
		return err
	}

	_, err = p.Run(context.Background())

	return err
}

// Package config loads the painter's TOML configuration file. Every field
// has a working default, so a missing file is not an error: the zero
// configuration runs a local server writing into ./output.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/pixelsmith/gamepainter/pkg/errors"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "gamepainter.toml"

// Config carries the runtime settings shared by the CLI and the server.
type Config struct {
	// Addr is the HTTP listen address for the serve command.
	Addr string `toml:"addr"`
	// OutputDir is where generated images land unless a tool call names an
	// explicit directory.
	OutputDir string `toml:"output_dir"`
	// Font optionally names a TTF file or installed font for text
	// rendering; empty selects the embedded default face.
	Font string `toml:"font"`
	// MaxCanvases caps how many live canvases the pen registry holds
	// before evicting the oldest.
	MaxCanvases int `toml:"max_canvases"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Addr:        "127.0.0.1:8642",
		OutputDir:   "output",
		MaxCanvases: 64,
	}
}

// Load reads the TOML file at path, layering it over the defaults. An empty
// path selects DefaultPath. A missing file yields the defaults; a file that
// exists but does not parse is an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeIOFailure, err, "reading config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInternal, err, "parsing config %s", path)
	}
	if cfg.MaxCanvases <= 0 {
		cfg.MaxCanvases = Default().MaxCanvases
	}
	return cfg, nil
}

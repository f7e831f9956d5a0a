// Package config loads fbxgraph settings from a TOML file.
//
// A config file mirrors the command-line flags:
//
//	[output]
//	dir        = "graphs"
//	svg        = true
//	time_mode  = "seconds"
//	frame_rate = 24.0
//	max_depth  = 256
//	fill_color = "#40e0d0"
//
//	[log]
//	verbose = true
//
// Explicit flags take precedence over file values.
package config

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/matzehuels/fbxgraph/pkg/errors"
	"github.com/matzehuels/fbxgraph/pkg/pipeline"
)

// Config is the content of a config file.
type Config struct {
	Output Output `toml:"output"`
	Log    Log    `toml:"log"`
}

// Output holds pipeline settings.
type Output struct {
	Dir       string  `toml:"dir"`
	SVG       bool    `toml:"svg"`
	TimeMode  string  `toml:"time_mode"`
	FrameRate float64 `toml:"frame_rate"`
	MaxDepth  int     `toml:"max_depth"`
	FillColor string  `toml:"fill_color"`
}

// Log holds logging settings.
type Log struct {
	Verbose bool `toml:"verbose"`
}

// Load reads and validates the config file at path. Unknown keys are
// rejected so that typos do not go unnoticed.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(string(data), path)
}

// Parse decodes config text. name is used in error messages.
func Parse(text, name string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", name)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", name, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", name)
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if err := pipeline.ValidateTimeMode(c.Output.TimeMode); err != nil {
		return err
	}
	if err := pipeline.ValidateFrameRate(c.Output.FrameRate); err != nil {
		return err
	}
	return pipeline.ValidateMaxDepth(c.Output.MaxDepth)
}

// Options converts the output section to pipeline options.
func (c *Config) Options() pipeline.Options {
	return pipeline.Options{
		Dir:       c.Output.Dir,
		SVG:       c.Output.SVG,
		TimeMode:  c.Output.TimeMode,
		FrameRate: c.Output.FrameRate,
		MaxDepth:  c.Output.MaxDepth,
		FillColor: c.Output.FillColor,
	}
}

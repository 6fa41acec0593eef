package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"spellkit/pkg/options"
	"spellkit/pkg/verbosity"
)

type Config struct {
	Language   string           `toml:"language"`
	ModelDir   string           `toml:"model_dir"`
	Redis      RedisConfig      `toml:"redis"`
	Correction CorrectionConfig `toml:"correction"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type CorrectionConfig struct {
	MinWordLength    int    `toml:"min_word_length"`
	MaxWordLength    int    `toml:"max_word_length"`
	MaxEditDistance  int    `toml:"max_edit_distance"`
	ExtraEditAtStart bool   `toml:"extra_edit_at_start"`
	ExtraEditAtEnd   bool   `toml:"extra_edit_at_end"`
	Verbosity        string `toml:"verbosity"` // top, closest or all
}

func NewDefaultConfig() *Config {
	defaults := options.DefaultOptions
	return &Config{
		Language: "en",
		ModelDir: filepath.Join(appDir, "model"),
		Correction: CorrectionConfig{
			MinWordLength:    defaults.MinWordLength,
			MaxWordLength:    defaults.MaxWordLength,
			MaxEditDistance:  defaults.MaxEditDistance,
			ExtraEditAtStart: defaults.AllowExtraEditAtStart,
			ExtraEditAtEnd:   defaults.AllowExtraEditAtEnd,
			Verbosity:        defaults.Verbosity.String(),
		},
	}
}

// LoadConfig reads a TOML config file on top of the defaults. An empty
// path returns the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	config := NewDefaultConfig()
	if path == "" {
		return config, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return config, nil
}

func (c *Config) engineOptions() ([]options.Options, error) {
	var verb verbosity.Verbosity
	switch c.Correction.Verbosity {
	case "top":
		verb = verbosity.Top
	case "closest", "":
		verb = verbosity.Closest
	case "all":
		verb = verbosity.All
	default:
		return nil, fmt.Errorf("unknown verbosity %q (want top, closest or all)", c.Correction.Verbosity)
	}
	return []options.Options{
		options.WithMinWordLength(c.Correction.MinWordLength),
		options.WithMaxWordLength(c.Correction.MaxWordLength),
		options.WithMaxEditDistance(c.Correction.MaxEditDistance),
		options.WithExtraEditAtStart(c.Correction.ExtraEditAtStart),
		options.WithExtraEditAtEnd(c.Correction.ExtraEditAtEnd),
		options.WithVerbosity(verb),
	}, nil
}

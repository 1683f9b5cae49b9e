package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix  = "ARCHWIRE_"
	envConfig  = "ARCHWIRE_CONFIG"
	envDotfile = ".env"
)

// Load builds a Config by layering, low to high:
//  1. defaults (New)
//  2. variables from ./.env, if present; real env vars win
//  3. YAML file named by ARCHWIRE_CONFIG
//  4. ARCHWIRE_* env vars; a double underscore nests, e.g.
//     ARCHWIRE_CALIBRATION__SS -> calibration.ss
func Load(_ context.Context) (*Config, error) {
	if err := godotenv.Load(envDotfile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	k := koanf.New(".")

	if path := os.Getenv(envConfig); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

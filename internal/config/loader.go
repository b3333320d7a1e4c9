package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if GAFFER_CONFIG is set
//  3. env (prefix GAFFER_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("GAFFER_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: GAFFER_ROLE_FILE, GAFFER_PLAYER_TABLE, ...
	// Map env keys like GAFFER_ROLE_FILE -> role_file (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("GAFFER_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "gaffer_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.TableHeaderRows < 0 {
		return nil, fmt.Errorf("%w: table_header_rows must not be negative", ErrInvalidConfig)
	}
	if cfg.PoolShardCount <= 0 {
		return nil, fmt.Errorf("%w: pool_shard_count must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}

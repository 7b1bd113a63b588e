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
//  2. file (YAML) if PUCKTALLY_CONFIG is set
//  3. env (prefix PUCKTALLY_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("PUCKTALLY_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: PUCKTALLY_OUTPUT_FILE, PUCKTALLY_MAX_RETRIES, ...
	// Map env keys like PUCKTALLY_OUTPUT_FILE -> output_file (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("PUCKTALLY_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "pucktally_")
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

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch {
	case cfg.OutputFile == "":
		return fmt.Errorf("%w: output_file must not be empty", ErrInvalidConfig)
	case cfg.HTTPTimeoutSeconds <= 0:
		return fmt.Errorf("%w: http_timeout_seconds must be positive", ErrInvalidConfig)
	case cfg.MaxRetries <= 0:
		return fmt.Errorf("%w: max_retries must be positive", ErrInvalidConfig)
	case cfg.StatsBaseURL == "":
		return fmt.Errorf("%w: stats_base_url must not be empty", ErrInvalidConfig)
	case cfg.RosterBaseURL == "":
		return fmt.Errorf("%w: roster_base_url must not be empty", ErrInvalidConfig)
	case len(cfg.TeamCodes) == 0:
		return fmt.Errorf("%w: team_codes must not be empty", ErrInvalidConfig)
	case len(cfg.Countries) == 0:
		return fmt.Errorf("%w: countries must not be empty", ErrInvalidConfig)
	}
	for _, code := range cfg.TeamCodes {
		if len(code) != 3 {
			return fmt.Errorf("%w: team code %q is not 3 letters", ErrInvalidConfig, code)
		}
	}
	return nil
}

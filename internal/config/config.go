// Package config assembles the run configuration from defaults, an optional
// YAML file and TERMGEN_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/aretw0/termgen/internal/logging"
	"github.com/aretw0/termgen/pkg/adapters/file"
	"github.com/aretw0/termgen/pkg/domain"
	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Output backends.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// Config is everything a run needs.
type Config struct {
	Count           int            `mapstructure:"count" env:"COUNT"`
	MaxDepth        int            `mapstructure:"max_depth" env:"MAX_DEPTH"`
	LeafProbability float64        `mapstructure:"leaf_probability" env:"LEAF_PROBABILITY"`
	Functions       map[string]int `mapstructure:"functions" env:"FUNCTIONS"`
	Constants       []string       `mapstructure:"constants" env:"CONSTANTS"`
	// Seed fixes the random source; 0 draws a fresh seed per run.
	Seed     uint64 `mapstructure:"seed" env:"SEED"`
	LogLevel string `mapstructure:"log_level" env:"LOG_LEVEL"`
	Output   Output `mapstructure:"output" envPrefix:"OUTPUT_"`
}

// Output selects and configures the sink.
type Output struct {
	Backend string `mapstructure:"backend" env:"BACKEND"`
	// Path is the text file for "file" and the database file for "bolt".
	Path          string `mapstructure:"path" env:"PATH"`
	Bucket        string `mapstructure:"bucket" env:"BUCKET"`
	RedisAddr     string `mapstructure:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"redis_db" env:"REDIS_DB"`
	RedisKey      string `mapstructure:"redis_key" env:"REDIS_KEY"`
}

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TERMGEN_"

// Default reproduces the reference run: 10000 terms of depth at most 4 over
// {f/2, g/1, h/3} and {a, b, c, d}, written to termos.txt.
func Default() Config {
	return Config{
		Count:           10000,
		MaxDepth:        4,
		LeafProbability: 0.3,
		Functions:       map[string]int{"f": 2, "g": 1, "h": 3},
		Constants:       []string{"a", "b", "c", "d"},
		LogLevel:        "info",
		Output: Output{
			Backend:   BackendFile,
			Path:      file.DefaultPath,
			RedisAddr: "localhost:6379",
			RedisKey:  "terms",
		},
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when
// path is empty) and then with the environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return cfg, fmt.Errorf("config file %s not found", path)
			}
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := Decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, cfg.Validate()
}

// Decode overlays YAML data onto cfg. Keys absent from data keep their
// current value; a present "functions" or "constants" key replaces the
// whole set. Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}

	// Sets are replaced, not merged into the defaults.
	if _, ok := raw["functions"]; ok {
		cfg.Functions = nil
	}
	if _, ok := raw["constants"]; ok {
		cfg.Constants = nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// Validate reports every invalid field at once as a *domain.AggregateError.
func (c Config) Validate() error {
	var errs []error
	add := func(key, reason string, value any, sentinel error) {
		errs = append(errs, &domain.ConfigError{Key: key, Reason: reason, Value: value, Err: sentinel})
	}

	if c.Count < 0 {
		add("count", "must not be negative", c.Count, domain.ErrInvalidCount)
	}
	if c.MaxDepth < 0 {
		add("max_depth", "must not be negative", c.MaxDepth, domain.ErrInvalidDepth)
	}
	if math.IsNaN(c.LeafProbability) || c.LeafProbability < 0 || c.LeafProbability > 1 {
		add("leaf_probability", "must be within [0, 1]", c.LeafProbability, domain.ErrInvalidLeafProbability)
	}
	if len(c.Constants) == 0 {
		add("constants", "at least one constant is required", nil, domain.ErrNoConstants)
	}
	if len(c.Functions) == 0 && c.MaxDepth > 0 && c.LeafProbability < 1 {
		add("functions", "at least one function is required when max_depth > 0 and leaf_probability < 1", nil, domain.ErrNoFunctions)
	}
	if len(c.Constants) > 0 {
		if _, err := domain.NewSignature(c.Functions, c.Constants); err != nil {
			add("signature", err.Error(), nil, err)
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		add("log_level", err.Error(), nil, nil)
	}

	switch strings.ToLower(c.Output.Backend) {
	case BackendFile, BackendBolt:
		if c.Output.Path == "" {
			add("output.path", "required for the "+c.Output.Backend+" backend", nil, nil)
		}
	case BackendRedis:
		if c.Output.RedisAddr == "" {
			add("output.redis_addr", "required for the redis backend", nil, nil)
		}
	case BackendMemory:
	default:
		add("output.backend", "must be one of file, bolt, redis, memory", c.Output.Backend, nil)
	}

	if len(errs) > 0 {
		return &domain.AggregateError{Errors: errs}
	}
	return nil
}

// Signature builds the domain signature from the configured symbols.
func (c Config) Signature() (*domain.Signature, error) {
	return domain.NewSignature(c.Functions, c.Constants)
}

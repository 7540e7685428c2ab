package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/termgen"
	"github.com/aretw0/termgen/internal/config"
	"github.com/aretw0/termgen/pkg/adapters/bolt"
	"github.com/aretw0/termgen/pkg/adapters/file"
	"github.com/aretw0/termgen/pkg/adapters/memory"
	"github.com/aretw0/termgen/pkg/adapters/redis"
	"github.com/aretw0/termgen/pkg/domain"
	"github.com/aretw0/termgen/pkg/generator"
	"github.com/aretw0/termgen/pkg/ports"
)

// createStore opens the configured backend. The returned closer is never nil.
func createStore(out config.Output) (ports.Store, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(out.Backend) {
	case config.BackendFile, "":
		return file.New(out.Path), noop, nil
	case config.BackendMemory:
		return memory.NewStore(), noop, nil
	case config.BackendRedis:
		store := redis.New(out.RedisAddr, out.RedisPassword, out.RedisDB, redis.WithName(out.RedisKey))
		return store, store.Close, nil
	case config.BackendBolt:
		store, err := bolt.Open(out.Path, out.Bucket)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	}
	return nil, noop, fmt.Errorf("unknown output backend %q", out.Backend)
}

// createGenerator builds the signature and generator from cfg.
func createGenerator(cfg config.Config) (*generator.Generator, error) {
	sig, err := cfg.Signature()
	if err != nil {
		return nil, fmt.Errorf("invalid signature: %w", err)
	}

	opts := []generator.Option{
		generator.WithMaxDepth(cfg.MaxDepth),
		generator.WithLeafProbability(cfg.LeafProbability),
	}
	if cfg.Seed != 0 {
		opts = append(opts, generator.WithSeed(cfg.Seed))
	}

	gen, err := generator.New(sig, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid generator settings: %w", err)
	}
	return gen, nil
}

// createEngine initializes an engine with standard CLI conventions.
func createEngine(cfg config.Config, sink ports.Sink, logger *slog.Logger, hooks domain.LifecycleHooks) (*termgen.Engine, error) {
	gen, err := createGenerator(cfg)
	if err != nil {
		return nil, err
	}

	hooks = hooks.Merge(createDebugHooks(logger))

	engineOpts := []termgen.Option{
		termgen.WithLogger(logger.With("seed", gen.Seed())),
		termgen.WithLifecycleHooks(hooks),
	}
	if sink != nil {
		engineOpts = append(engineOpts, termgen.WithSink(sink))
	}

	return termgen.New(gen, engineOpts...), nil
}

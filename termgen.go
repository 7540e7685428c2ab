package termgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/termgen/pkg/domain"
	"github.com/aretw0/termgen/pkg/generator"
	"github.com/aretw0/termgen/pkg/ports"
	"github.com/google/uuid"
)

// ErrNoSink is returned by Run when the engine was built without a sink.
var ErrNoSink = errors.New("no sink configured")

// Report summarizes one batch.
type Report struct {
	RunID       string
	Count       int
	Tokens      int
	MaxDepth    int
	Duration    time.Duration
	Destination string
}

// Engine drives batches of term generation.
// It serializes access to the underlying generator, so it is safe for concurrent use.
type Engine struct {
	gen    *generator.Generator
	sink   ports.Sink
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	mu     sync.Mutex
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithSink sets the destination used by Run.
func WithSink(sink ports.Sink) Option {
	return func(e *Engine) {
		e.sink = sink
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine around gen.
func New(gen *generator.Generator, opts ...Option) *Engine {
	eng := &Engine{gen: gen}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return eng
}

// Generator returns the underlying generator.
func (e *Engine) Generator() *generator.Generator {
	return e.gen
}

// Generate produces n terms without writing them anywhere.
func (e *Engine) Generate(ctx context.Context, n int) ([]domain.Term, error) {
	terms, _, err := e.batch(ctx, n, "", true)
	return terms, err
}

// Run produces n terms sequentially and writes the whole collection to the
// sink, replacing its previous content. Nothing is written if ctx is
// canceled before generation completes.
func (e *Engine) Run(ctx context.Context, n int) (Report, error) {
	if e.sink == nil {
		return Report{}, ErrNoSink
	}

	start := time.Now()
	terms, report, err := e.batch(ctx, n, e.sink.Destination(), false)
	if err != nil {
		return report, err
	}

	if err := e.sink.Write(ctx, terms); err != nil {
		e.logger.Error("batch write failed", "run_id", report.RunID, "destination", report.Destination, "error", err)
		return report, fmt.Errorf("write %d terms to %s: %w", len(terms), report.Destination, err)
	}
	report.Duration = time.Since(start)

	e.logger.Info("batch written",
		"run_id", report.RunID,
		"count", report.Count,
		"tokens", report.Tokens,
		"destination", report.Destination,
		"duration", report.Duration,
	)
	e.fireBatch(ctx, e.hooks.OnBatchDone, domain.EventBatchDone, report)

	return report, nil
}

func (e *Engine) batch(ctx context.Context, n int, destination string, notifyDone bool) ([]domain.Term, Report, error) {
	report := Report{
		RunID:       uuid.NewString(),
		Destination: destination,
	}
	if n < 0 {
		return nil, report, fmt.Errorf("%w: %d", domain.ErrInvalidCount, n)
	}

	e.logger.Debug("batch started", "run_id", report.RunID, "count", n)
	e.fireBatch(ctx, e.hooks.OnBatchStart, domain.EventBatchStart, Report{RunID: report.RunID, Count: n, Destination: destination})

	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	terms := make([]domain.Term, 0, n)
	for i := range n {
		if err := ctx.Err(); err != nil {
			e.logger.Warn("batch canceled", "run_id", report.RunID, "generated", i)
			return nil, report, err
		}

		term, depth := e.gen.GenerateWithDepth()
		terms = append(terms, term)
		report.Tokens += len(term)
		report.MaxDepth = max(report.MaxDepth, depth)

		if e.hooks.OnTerm != nil {
			e.hooks.OnTerm(ctx, &domain.TermEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTerm, RunID: report.RunID},
				Index:     i,
				Tokens:    len(term),
				Depth:     depth,
			})
		}
	}
	report.Count = len(terms)
	report.Duration = time.Since(start)

	if notifyDone {
		e.fireBatch(ctx, e.hooks.OnBatchDone, domain.EventBatchDone, report)
	}
	return terms, report, nil
}

func (e *Engine) fireBatch(ctx context.Context, hook func(context.Context, *domain.BatchEvent), typ domain.EventType, r Report) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.BatchEvent{
		EventBase:   domain.EventBase{Timestamp: time.Now(), Type: typ, RunID: r.RunID},
		Count:       r.Count,
		Destination: r.Destination,
		Duration:    r.Duration,
	})
}

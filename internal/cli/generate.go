package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/termgen"
	"github.com/aretw0/termgen/internal/config"
	"github.com/aretw0/termgen/internal/presentation/tui"
	"github.com/aretw0/termgen/pkg/domain"
)

// GenerateOptions controls how a generate run reports to the user.
type GenerateOptions struct {
	Out io.Writer
	// Rich renders a markdown summary instead of the plain completion line.
	Rich  bool
	Quiet bool
	Hooks domain.LifecycleHooks
}

// RunGenerate writes cfg.Count fresh terms to the configured output.
func RunGenerate(ctx context.Context, cfg config.Config, opts GenerateOptions) (termgen.Report, error) {
	if err := cfg.Validate(); err != nil {
		return termgen.Report{}, err
	}

	logger, err := createLogger(cfg.LogLevel)
	if err != nil {
		return termgen.Report{}, err
	}

	store, closeStore, err := createStore(cfg.Output)
	if err != nil {
		return termgen.Report{}, fmt.Errorf("error opening output: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("failed to close output", "error", err)
		}
	}()

	engine, err := createEngine(cfg, store, logger, opts.Hooks)
	if err != nil {
		return termgen.Report{}, err
	}

	report, err := engine.Run(ctx, cfg.Count)
	if err != nil {
		return report, err
	}

	if opts.Quiet || opts.Out == nil {
		return report, nil
	}

	summary := tui.Summary{
		RunID:       report.RunID,
		Count:       report.Count,
		Tokens:      report.Tokens,
		MaxDepth:    report.MaxDepth,
		Destination: report.Destination,
		Duration:    report.Duration,
		Seed:        engine.Generator().Seed(),
	}

	if opts.Rich {
		rendered, err := tui.NewRenderer()(tui.Markdown(summary))
		if err == nil {
			fmt.Fprint(opts.Out, rendered)
			return report, nil
		}
		logger.Debug("summary render failed, falling back to plain output", "error", err)
	}
	fmt.Fprintln(opts.Out, tui.CompletionLine(summary))
	return report, nil
}

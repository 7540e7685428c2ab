package cli

import (
	"github.com/aretw0/termgen/internal/config"
	"github.com/aretw0/termgen/pkg/domain"
	mcpAdapter "github.com/aretw0/termgen/pkg/adapters/mcp"
)

// RunMCP exposes term generation as an MCP tool over stdio.
// Logs stay on stderr so they never corrupt the protocol stream.
func RunMCP(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := createLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	engine, err := createEngine(cfg, nil, logger, domain.LifecycleHooks{})
	if err != nil {
		return err
	}

	logger.Info("Serving MCP over stdio", "tool", "generate_terms")
	return mcpAdapter.NewServer(engine).ServeStdio()
}

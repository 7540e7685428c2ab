package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/termgen"
	"github.com/aretw0/termgen/pkg/codec"
	"github.com/aretw0/termgen/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MaxCount caps the number of terms one tool call may request.
const MaxCount = 1000

// Engine defines the interface required by the MCP server.
type Engine interface {
	Generate(ctx context.Context, n int) ([]domain.Term, error)
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("termgen-mcp", termgen.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	generateTool := mcp.NewTool("generate_terms",
		mcp.WithDescription("Generate random first-order terms in prefix notation, one per line."),
		mcp.WithNumber("count", mcp.Description(fmt.Sprintf("Number of terms to generate (1-%d, default 1)", MaxCount))),
	)
	s.mcpServer.AddTool(generateTool, s.handleGenerate)
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count := request.GetInt("count", 1)
	if count < 1 || count > MaxCount {
		return mcp.NewToolResultError(fmt.Sprintf("count must be between 1 and %d", MaxCount)), nil
	}

	terms, err := s.engine.Generate(ctx, count)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generate failed: %v", err)), nil
	}

	var sb strings.Builder
	if err := codec.Write(&sb, terms); err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(sb.String()), nil
}

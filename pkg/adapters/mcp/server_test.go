package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/termgen"
	"github.com/aretw0/termgen/internal/testutils"
	"github.com/aretw0/termgen/pkg/codec"
	"github.com/aretw0/termgen/pkg/generator"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *Server {
	t.Helper()

	sig := testutils.ReferenceSignature(t)
	gen, err := generator.New(sig, generator.WithSeed(4))
	require.NoError(t, err)
	return NewServer(termgen.New(gen))
}

func callGenerate(t *testing.T, s *Server, args map[string]any) *mcp.CallToolResult {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Name = "generate_terms"
	req.Params.Arguments = args

	res, err := s.handleGenerate(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func TestGenerateTool(t *testing.T) {
	s := newServer(t)
	sig := testutils.ReferenceSignature(t)

	res := callGenerate(t, s, map[string]any{"count": float64(5)})
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)

	lines := 0
	for _, line := range splitLines(text.Text) {
		testutils.CheckTerm(t, sig, codec.Tokenize(line))
		lines++
	}
	assert.Equal(t, 5, lines)
}

func TestGenerateTool_DefaultCount(t *testing.T) {
	res := callGenerate(t, newServer(t), nil)
	require.False(t, res.IsError)

	text := res.Content[0].(mcp.TextContent).Text
	assert.Len(t, splitLines(text), 1)
}

func TestGenerateTool_RejectsBadCount(t *testing.T) {
	s := newServer(t)

	for _, count := range []float64{0, -4, MaxCount + 1} {
		res := callGenerate(t, s, map[string]any{"count": count})
		assert.True(t, res.IsError, "count %v", count)
	}
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

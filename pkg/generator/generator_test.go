package generator_test

import (
	"strings"
	"testing"

	"github.com/aretw0/termgen/internal/testutils"
	"github.com/aretw0/termgen/pkg/domain"
	"github.com/aretw0/termgen/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws and fails the test when it runs dry.
type scriptedSource struct {
	t      *testing.T
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	s.t.Helper()
	require.NotEmpty(s.t, s.floats, "unexpected Float64 draw")
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptedSource) IntN(n int) int {
	s.t.Helper()
	require.NotEmpty(s.t, s.ints, "unexpected IntN draw")
	i := s.ints[0]
	s.ints = s.ints[1:]
	require.Less(s.t, i, n)
	return i
}

func TestNew_Validation(t *testing.T) {
	sig := testutils.ReferenceSignature(t)
	constantsOnly, err := domain.NewSignature(nil, []string{"a"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		sig     *domain.Signature
		opts    []generator.Option
		wantErr error
	}{
		{name: "Defaults", sig: sig},
		{name: "Negative Depth", sig: sig, opts: []generator.Option{generator.WithMaxDepth(-1)}, wantErr: domain.ErrInvalidDepth},
		{name: "Probability Above One", sig: sig, opts: []generator.Option{generator.WithLeafProbability(1.5)}, wantErr: domain.ErrInvalidLeafProbability},
		{name: "Negative Probability", sig: sig, opts: []generator.Option{generator.WithLeafProbability(-0.1)}, wantErr: domain.ErrInvalidLeafProbability},
		{name: "Nil Signature", sig: nil, wantErr: domain.ErrNoConstants},
		{name: "No Functions With Reachable Nodes", sig: constantsOnly, wantErr: domain.ErrNoFunctions},
		{name: "No Functions At Depth Zero", sig: constantsOnly, opts: []generator.Option{generator.WithMaxDepth(0)}},
		{name: "No Functions With Certain Leaves", sig: constantsOnly, opts: []generator.Option{generator.WithLeafProbability(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := generator.New(tt.sig, tt.opts...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, gen)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, gen)
		})
	}
}

func TestGenerate_DepthBound(t *testing.T) {
	sig := testutils.ReferenceSignature(t)

	for _, maxDepth := range []int{0, 1, 2, 4, 6} {
		gen, err := generator.New(sig,
			generator.WithMaxDepth(maxDepth),
			generator.WithSeed(uint64(1000+maxDepth)),
		)
		require.NoError(t, err)

		for i := 0; i < 2000; i++ {
			term, reported := gen.GenerateWithDepth()
			depth := testutils.CheckTerm(t, sig, term)
			require.LessOrEqual(t, depth, maxDepth, "term %v exceeds depth %d", term, maxDepth)
			require.Equal(t, depth, reported, "reported depth disagrees for %v", term)
			if maxDepth == 0 {
				require.Len(t, term, 1)
				require.True(t, sig.IsConstant(term[0]))
			}
		}
	}
}

func TestGenerate_DepthZeroSingleConstant(t *testing.T) {
	sig, err := domain.NewSignature(map[string]int{"f": 2}, []string{"a"})
	require.NoError(t, err)

	gen, err := generator.New(sig, generator.WithMaxDepth(0), generator.WithSeed(7))
	require.NoError(t, err)

	for _, term := range gen.GenerateN(100) {
		assert.Equal(t, domain.Term{"a"}, term)
	}
}

func TestGenerate_ForcedExpansionOrder(t *testing.T) {
	sig, err := domain.NewSignature(map[string]int{"f": 2}, []string{"a", "b", "c"})
	require.NoError(t, err)

	gen, err := generator.New(sig,
		generator.WithMaxDepth(1),
		generator.WithLeafProbability(0),
		generator.WithSeed(99),
	)
	require.NoError(t, err)

	for _, term := range gen.GenerateN(500) {
		require.Len(t, term, 3)
		assert.Equal(t, "f", term[0])
		assert.True(t, sig.IsConstant(term[1]), "first child %q", term[1])
		assert.True(t, sig.IsConstant(term[2]), "second child %q", term[2])
	}
}

func TestGenerate_ScriptedDraws(t *testing.T) {
	sig, err := domain.NewSignature(map[string]int{"g": 1, "f": 2}, []string{"a", "b"})
	require.NoError(t, err)

	src := &scriptedSource{
		t: t,
		// root expands, first child is a leaf, second child expands
		floats: []float64{0.9, 0.1, 0.9},
		// f, b, g, then a at the forced leaf
		ints: []int{0, 1, 1, 0},
	}

	gen, err := generator.New(sig,
		generator.WithMaxDepth(2),
		generator.WithLeafProbability(0.5),
		generator.WithSource(src),
	)
	require.NoError(t, err)

	term, depth := gen.GenerateWithDepth()
	assert.Equal(t, domain.Term{"f", "b", "g", "a"}, term)
	assert.Equal(t, 2, depth)
	assert.Empty(t, src.floats, "forced leaves must not consume a probability draw")
	assert.Empty(t, src.ints)
	assert.Zero(t, gen.Seed(), "custom sources carry no seed")
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	sig := testutils.ReferenceSignature(t)

	first, err := generator.New(sig, generator.WithSeed(42))
	require.NoError(t, err)
	second, err := generator.New(sig, generator.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, first.GenerateN(200), second.GenerateN(200))
	assert.Equal(t, uint64(42), first.Seed())
}

func TestGenerate_Distribution(t *testing.T) {
	sig := testutils.ReferenceSignature(t)

	gen, err := generator.New(sig, generator.WithSeed(2024))
	require.NoError(t, err)

	const n = 20000
	leaves := 0
	for _, term := range gen.GenerateN(n) {
		if len(term) == 1 {
			leaves++
		}
	}
	assert.InDelta(t, generator.DefaultLeafProbability, float64(leaves)/n, 0.03)

	leafGen, err := generator.New(sig, generator.WithMaxDepth(0), generator.WithSeed(5))
	require.NoError(t, err)

	counts := map[string]int{}
	for _, term := range leafGen.GenerateN(n) {
		counts[term[0]]++
	}
	for _, c := range sig.Constants() {
		assert.InDelta(t, 0.25, float64(counts[c])/n, 0.03, "constant %s", c)
	}
}

func TestGenerateN_Empty(t *testing.T) {
	gen, err := generator.New(testutils.ReferenceSignature(t), generator.WithSeed(1))
	require.NoError(t, err)

	assert.Empty(t, gen.GenerateN(0))
	assert.Empty(t, gen.GenerateN(-3))
}

func TestGenerate_SymbolsBelongToSignature(t *testing.T) {
	sig := testutils.ReferenceSignature(t)
	gen, err := generator.New(sig, generator.WithMaxDepth(5), generator.WithSeed(3))
	require.NoError(t, err)

	for _, term := range gen.GenerateN(1000) {
		for _, tok := range term {
			_, isFunc := sig.Arity(tok)
			assert.True(t, isFunc || sig.IsConstant(tok), "token %q in %s", tok, strings.Join(term, " "))
		}
	}
}

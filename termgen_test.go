package termgen_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aretw0/termgen"
	"github.com/aretw0/termgen/internal/testutils"
	"github.com/aretw0/termgen/pkg/adapters/file"
	"github.com/aretw0/termgen/pkg/adapters/memory"
	"github.com/aretw0/termgen/pkg/domain"
	"github.com/aretw0/termgen/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(t *testing.T, opts ...generator.Option) *generator.Generator {
	t.Helper()

	gen, err := generator.New(testutils.ReferenceSignature(t), append([]generator.Option{generator.WithSeed(17)}, opts...)...)
	require.NoError(t, err)
	return gen
}

type failingSink struct{}

func (failingSink) Write(context.Context, []domain.Term) error { return errors.New("read-only destination") }
func (failingSink) Destination() string                      { return "nowhere" }

func TestEngine_Run(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	var starts, dones int
	var perTerm []*domain.TermEvent
	eng := termgen.New(newGenerator(t), termgen.WithSink(store), termgen.WithLifecycleHooks(domain.LifecycleHooks{
		OnBatchStart: func(_ context.Context, e *domain.BatchEvent) {
			starts++
			assert.Equal(t, 250, e.Count)
		},
		OnTerm: func(_ context.Context, e *domain.TermEvent) { perTerm = append(perTerm, e) },
		OnBatchDone: func(_ context.Context, e *domain.BatchEvent) {
			dones++
			assert.Equal(t, "memory", e.Destination)
		},
	}))

	report, err := eng.Run(ctx, 250)
	require.NoError(t, err)

	terms, err := store.Read(ctx)
	require.NoError(t, err)
	require.Len(t, terms, 250)

	tokens, maxDepth := 0, 0
	for i, term := range terms {
		depth := testutils.CheckTerm(t, eng.Generator().Signature(), term)
		assert.Equal(t, i, perTerm[i].Index)
		assert.Equal(t, len(term), perTerm[i].Tokens)
		assert.Equal(t, depth, perTerm[i].Depth)
		assert.Equal(t, report.RunID, perTerm[i].RunID)
		tokens += len(term)
		maxDepth = max(maxDepth, depth)
	}

	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, dones)
	assert.Equal(t, 250, report.Count)
	assert.Equal(t, tokens, report.Tokens)
	assert.Equal(t, maxDepth, report.MaxDepth)
	assert.LessOrEqual(t, report.MaxDepth, generator.DefaultMaxDepth)
	assert.Equal(t, "memory", report.Destination)
	assert.NotEmpty(t, report.RunID)
}

func TestEngine_RunZeroTermsWritesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.txt")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0644))

	eng := termgen.New(newGenerator(t), termgen.WithSink(file.New(path)))
	report, err := eng.Run(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, report.Count)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestEngine_RunErrors(t *testing.T) {
	t.Run("No Sink", func(t *testing.T) {
		_, err := termgen.New(newGenerator(t)).Run(context.Background(), 1)
		assert.ErrorIs(t, err, termgen.ErrNoSink)
	})

	t.Run("Negative Count", func(t *testing.T) {
		_, err := termgen.New(newGenerator(t), termgen.WithSink(memory.NewStore())).Run(context.Background(), -1)
		assert.ErrorIs(t, err, domain.ErrInvalidCount)
	})

	t.Run("Sink Failure", func(t *testing.T) {
		_, err := termgen.New(newGenerator(t), termgen.WithSink(failingSink{})).Run(context.Background(), 3)
		assert.ErrorContains(t, err, "read-only destination")
		assert.ErrorContains(t, err, "nowhere")
	})

	t.Run("Canceled Before Write", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		store := memory.NewStore()
		_, err := termgen.New(newGenerator(t), termgen.WithSink(store)).Run(ctx, 10)
		assert.ErrorIs(t, err, context.Canceled)

		_, err = store.Read(context.Background())
		assert.ErrorIs(t, err, domain.ErrDestinationNotFound, "nothing may be written after cancellation")
	})
}

func TestEngine_GenerateIsConcurrencySafe(t *testing.T) {
	var done int
	var mu sync.Mutex
	eng := termgen.New(newGenerator(t), termgen.WithLifecycleHooks(domain.LifecycleHooks{
		OnBatchDone: func(context.Context, *domain.BatchEvent) {
			mu.Lock()
			done++
			mu.Unlock()
		},
	}))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			terms, err := eng.Generate(context.Background(), 50)
			assert.NoError(t, err)
			assert.Len(t, terms, 50)
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, done)
}

func TestEngine_DepthZeroSingleConstant(t *testing.T) {
	sig, err := domain.NewSignature(map[string]int{"f": 2}, []string{"a"})
	require.NoError(t, err)
	gen, err := generator.New(sig, generator.WithMaxDepth(0), generator.WithSeed(1))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "terms.txt")
	_, err = termgen.New(gen, termgen.WithSink(file.New(path))).Run(context.Background(), 3)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\na\na\n", string(data))
}

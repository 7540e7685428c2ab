package generator

import (
	"fmt"
	"math"

	"github.com/aretw0/termgen/pkg/domain"
)

const (
	// DefaultMaxDepth is the nesting bound used when none is configured.
	DefaultMaxDepth = 4
	// DefaultLeafProbability is the chance of stopping early below the bound.
	DefaultLeafProbability = 0.3
)

// Generator builds random terms. It is not safe for concurrent use.
type Generator struct {
	sig      *domain.Signature
	maxDepth int
	leafProb float64
	src      Source
	seed     uint64
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithMaxDepth sets the hard nesting bound. At this depth every call yields a leaf.
func WithMaxDepth(depth int) Option {
	return func(g *Generator) {
		g.maxDepth = depth
	}
}

// WithLeafProbability sets the probability of a leaf below the depth bound.
func WithLeafProbability(p float64) Option {
	return func(g *Generator) {
		g.leafProb = p
	}
}

// WithSource injects the random source.
func WithSource(src Source) Option {
	return func(g *Generator) {
		g.src = src
	}
}

// WithSeed uses a deterministic PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.src = NewSource(seed)
	}
}

// New validates the settings and returns a Generator.
func New(sig *domain.Signature, opts ...Option) (*Generator, error) {
	if sig == nil {
		return nil, fmt.Errorf("nil signature: %w", domain.ErrNoConstants)
	}

	g := &Generator{
		sig:      sig,
		maxDepth: DefaultMaxDepth,
		leafProb: DefaultLeafProbability,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.maxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidDepth, g.maxDepth)
	}
	if math.IsNaN(g.leafProb) || g.leafProb < 0 || g.leafProb > 1 {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidLeafProbability, g.leafProb)
	}
	if sig.NumConstants() == 0 {
		return nil, domain.ErrNoConstants
	}
	// Internal nodes are reachable unless the bound is zero or every draw is a leaf.
	if sig.NumFunctions() == 0 && g.maxDepth > 0 && g.leafProb < 1 {
		return nil, domain.ErrNoFunctions
	}

	if g.src == nil {
		seed, err := NewSeed()
		if err != nil {
			return nil, err
		}
		g.seed = seed
		g.src = NewSource(seed)
	}

	return g, nil
}

// MaxDepth returns the configured nesting bound.
func (g *Generator) MaxDepth() int {
	return g.maxDepth
}

// LeafProbability returns the configured leaf probability.
func (g *Generator) LeafProbability() float64 {
	return g.leafProb
}

// Seed returns the seed of the built-in source, or 0 when a custom Source was injected.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Signature returns the signature terms are drawn from.
func (g *Generator) Signature() *domain.Signature {
	return g.sig
}

// Generate returns one random term.
func (g *Generator) Generate() domain.Term {
	term, _ := g.GenerateWithDepth()
	return term
}

// GenerateWithDepth returns one random term together with its nesting depth,
// the number of function applications on its longest root-to-leaf path.
func (g *Generator) GenerateWithDepth() (domain.Term, int) {
	return g.expand(make(domain.Term, 0, 8), 0)
}

// GenerateN returns n terms in generation order.
func (g *Generator) GenerateN(n int) []domain.Term {
	terms := make([]domain.Term, 0, max(n, 0))
	for range n {
		terms = append(terms, g.Generate())
	}
	return terms
}

// expand appends the tokens of a subterm rooted at depth to dst and returns
// the extended slice and the subterm's own nesting depth.
func (g *Generator) expand(dst domain.Term, depth int) (domain.Term, int) {
	if depth >= g.maxDepth || g.src.Float64() < g.leafProb {
		return append(dst, g.sig.Constant(g.src.IntN(g.sig.NumConstants()))), 0
	}

	name, arity := g.sig.Function(g.src.IntN(g.sig.NumFunctions()))
	dst = append(dst, name)
	height := 0
	for range arity {
		var h int
		dst, h = g.expand(dst, depth+1)
		height = max(height, h)
	}
	return dst, height + 1
}

/*
Package generator produces random, well-formed terms over a domain.Signature.

A term is grown by recursive expansion starting at depth 0. At each call the
generator emits a leaf (a uniformly chosen constant) when the depth bound is
reached or when a uniform draw falls below the leaf probability; otherwise it
picks a function symbol uniformly and expands exactly arity children at the
next depth, concatenating their tokens after the symbol.

Randomness comes from an injected Source so tests can use seeded, fully
reproducible sequences:

	sig, _ := domain.NewSignature(map[string]int{"f": 2, "g": 1}, []string{"a", "b"})
	gen, _ := generator.New(sig, generator.WithMaxDepth(3), generator.WithSeed(42))
	term := gen.Generate() // e.g. [f g a b]
*/
package generator

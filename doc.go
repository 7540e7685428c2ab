/*
Package termgen generates random first-order-logic-style terms over a fixed
signature and writes them, one per line, to a destination.

# Concept

A term is a tree of function applications with constants at the leaves,
stored as its prefix (Polish notation) token sequence. The generator in
pkg/generator grows each term recursively up to a hard depth bound; the
Engine in this package drives a batch of independent generations and hands
the collection to a ports.Sink (a file by default, or memory, Redis, bbolt).

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/termgen"
		"github.com/aretw0/termgen/pkg/adapters/file"
		"github.com/aretw0/termgen/pkg/domain"
		"github.com/aretw0/termgen/pkg/generator"
	)

	func main() {
		sig, err := domain.NewSignature(
			map[string]int{"f": 2, "g": 1, "h": 3},
			[]string{"a", "b", "c", "d"},
		)
		if err != nil {
			log.Fatal(err)
		}

		gen, err := generator.New(sig, generator.WithMaxDepth(4), generator.WithLeafProbability(0.3))
		if err != nil {
			log.Fatal(err)
		}

		eng := termgen.New(gen, termgen.WithSink(file.New("termos.txt")))
		report, err := eng.Run(context.Background(), 10000)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("%d terms saved to %s", report.Count, report.Destination)
	}
*/
package termgen

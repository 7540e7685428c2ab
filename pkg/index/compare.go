package index

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/termgen/pkg/domain"
	"github.com/aretw0/termgen/pkg/ports"
)

// Lookup is the outcome of one query against one structure.
type Lookup struct {
	Found    bool
	Position int      // List only; -1 when absent
	Path     []string // Trie only; tokens matched before the walk ended
	Matches  []domain.Term
	Elapsed  time.Duration
}

// Comparison holds the same exact and prefix queries run on both structures.
type Comparison struct {
	Loaded      int
	TrieExact   Lookup
	ListExact   Lookup
	TriePrefix  Lookup
	ListPrefix  Lookup
	Distinct    int
	LoadElapsed time.Duration
}

// Load reads every term from r into a new Trie and List.
func Load(ctx context.Context, r ports.TermReader) (*Trie, *List, error) {
	terms, err := r.Read(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load terms: %w", err)
	}

	trie, list := NewTrie(), NewList()
	for _, term := range terms {
		trie.Insert(term)
		list.Insert(term)
	}
	return trie, list, nil
}

// Compare loads r and times an exact lookup of term and a prefix lookup of
// prefix on both structures.
func Compare(ctx context.Context, r ports.TermReader, term, prefix domain.Term) (Comparison, error) {
	start := time.Now()
	trie, list, err := Load(ctx, r)
	if err != nil {
		return Comparison{}, err
	}

	cmp := Comparison{
		Loaded:      list.Len(),
		Distinct:    trie.Len(),
		LoadElapsed: time.Since(start),
	}

	start = time.Now()
	found, path := trie.Contains(term)
	cmp.TrieExact = Lookup{Found: found, Position: -1, Path: path, Elapsed: time.Since(start)}

	start = time.Now()
	pos := list.Find(term)
	cmp.ListExact = Lookup{Found: pos >= 0, Position: pos, Elapsed: time.Since(start)}

	start = time.Now()
	matches := trie.WithPrefix(prefix)
	cmp.TriePrefix = Lookup{Found: len(matches) > 0, Position: -1, Matches: matches, Elapsed: time.Since(start)}

	start = time.Now()
	matches = list.WithPrefix(prefix)
	cmp.ListPrefix = Lookup{Found: len(matches) > 0, Position: -1, Matches: matches, Elapsed: time.Since(start)}

	return cmp, nil
}

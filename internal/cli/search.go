package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aretw0/termgen/internal/config"
	"github.com/aretw0/termgen/pkg/codec"
	"github.com/aretw0/termgen/pkg/domain"
	"github.com/aretw0/termgen/pkg/index"
)

// SearchOptions selects the queries run against a written collection.
type SearchOptions struct {
	Term   string
	Prefix string
	// Limit caps how many prefix matches are printed; 0 prints all.
	Limit int
	Out   io.Writer
}

// RunSearch loads the configured output into a trie and a list, runs the
// exact and prefix queries on both and prints results with timings.
func RunSearch(ctx context.Context, cfg config.Config, opts SearchOptions) (index.Comparison, error) {
	store, closeStore, err := createStore(cfg.Output)
	if err != nil {
		return index.Comparison{}, fmt.Errorf("error opening output: %w", err)
	}
	defer closeStore()

	term := codec.Tokenize(opts.Term)
	prefix := codec.Tokenize(opts.Prefix)

	cmp, err := index.Compare(ctx, store, term, prefix)
	if err != nil {
		return cmp, err
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	printSystemMessage(out, "Loaded %d terms (%d distinct) from %s in %s", cmp.Loaded, cmp.Distinct, store.Destination(), cmp.LoadElapsed)

	if len(term) > 0 {
		fmt.Fprintln(out, "Exact search:")
		if cmp.TrieExact.Found {
			fmt.Fprintf(out, "  (Trie) found, path: %s, steps: %d\n", strings.Join(cmp.TrieExact.Path, " "), len(cmp.TrieExact.Path))
		} else {
			fmt.Fprintf(out, "  (Trie) not found, path walked before failure: %s\n", strings.Join(cmp.TrieExact.Path, " "))
		}
		if cmp.ListExact.Found {
			fmt.Fprintf(out, "  (List) found at position %d\n", cmp.ListExact.Position)
		} else {
			fmt.Fprintln(out, "  (List) not found")
		}
	}

	if len(prefix) > 0 {
		fmt.Fprintf(out, "Terms starting with %q:\n", opts.Prefix)
		printMatches(out, cmp.TriePrefix.Matches, opts.Limit)
		fmt.Fprintf(out, "  (Trie) %d matches, (List) %d matches\n", len(cmp.TriePrefix.Matches), len(cmp.ListPrefix.Matches))
	}

	fmt.Fprintln(out, "Timings:")
	printTiming(out, "exact", cmp.TrieExact.Elapsed, cmp.ListExact.Elapsed, len(term) > 0)
	printTiming(out, "prefix", cmp.TriePrefix.Elapsed, cmp.ListPrefix.Elapsed, len(prefix) > 0)

	return cmp, nil
}

func printMatches(out io.Writer, matches []domain.Term, limit int) {
	for i, m := range matches {
		if limit > 0 && i >= limit {
			fmt.Fprintf(out, "  ... %d more\n", len(matches)-limit)
			return
		}
		fmt.Fprintf(out, "  %s\n", codec.Serialize(m))
	}
}

func printTiming(out io.Writer, label string, trie, list time.Duration, ran bool) {
	if !ran {
		return
	}
	fmt.Fprintf(out, "  %-6s (Trie) %dµs  (List) %dµs\n", label, trie.Microseconds(), list.Microseconds())
}

package index

import (
	"slices"

	"github.com/aretw0/termgen/pkg/domain"
)

type trieNode struct {
	children map[string]*trieNode
	terminal bool
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[string]*trieNode)}
}

// Trie stores terms token by token. Duplicates are stored once.
type Trie struct {
	root *trieNode
	size int
}

// NewTrie returns an empty Trie.
func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

// Insert adds term. Empty terms are ignored.
func (t *Trie) Insert(term domain.Term) {
	if len(term) == 0 {
		return
	}
	node := t.root
	for _, tok := range term {
		next, ok := node.children[tok]
		if !ok {
			next = newTrieNode()
			node.children[tok] = next
		}
		node = next
	}
	if !node.terminal {
		node.terminal = true
		t.size++
	}
}

// Len returns the number of distinct terms.
func (t *Trie) Len() int {
	return t.size
}

// Contains reports whether term was inserted. The returned path holds the
// tokens matched before the walk ended, which is the whole term on success.
func (t *Trie) Contains(term domain.Term) (bool, []string) {
	node := t.root
	path := make([]string, 0, len(term))
	for _, tok := range term {
		next, ok := node.children[tok]
		if !ok {
			return false, path
		}
		path = append(path, tok)
		node = next
	}
	return len(term) > 0 && node.terminal, path
}

// WithPrefix returns every stored term starting with prefix, ordered
// token by token lexicographically.
func (t *Trie) WithPrefix(prefix domain.Term) []domain.Term {
	node := t.root
	for _, tok := range prefix {
		next, ok := node.children[tok]
		if !ok {
			return nil
		}
		node = next
	}

	var out []domain.Term
	collect(node, slices.Clone(prefix), &out)
	return out
}

func collect(node *trieNode, path domain.Term, out *[]domain.Term) {
	if node.terminal {
		*out = append(*out, slices.Clone(path))
	}

	keys := make([]string, 0, len(node.children))
	for k := range node.children {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		collect(node.children[k], append(path, k), out)
	}
}

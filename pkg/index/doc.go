/*
Package index answers exact and prefix lookups over a generated term
collection.

Two structures are provided so their cost can be compared on the same data:

  - Trie: one node per token, shared prefixes stored once.
  - List: the collection in insertion order, scanned linearly.

Both treat a term as its token sequence; nothing is parsed into a tree.
*/
package index

/*
Package domain contains the core data model of termgen.

It defines the signature a term is built over, the term itself and the
events emitted while a batch is produced. This package is kept pure and free
of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Signature: function symbols with their arities plus the constant symbols.
  - Term: a prefix (Polish notation) token sequence describing a tree.
  - LifecycleHooks: callbacks fired by the batch driver for observability.
*/
package domain

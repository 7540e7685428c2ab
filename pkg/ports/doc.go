/*
Package ports defines the driven ports (interfaces) for termgen.

These interfaces decouple the batch driver from concrete destinations,
allowing generated terms to be written to files, memory, Redis or bbolt.

# Key Interfaces

  - Sink: accepts a whole term collection, replacing previous content.
  - TermReader: returns the collection currently held, in order.
  - Store: both of the above.
*/
package ports

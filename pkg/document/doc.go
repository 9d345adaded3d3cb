/*
Package document implements the path-addressed configuration tree the wizard fills in.

A Document is a tree of mappings (map[string]any) and sequences ([]any) with scalar
leaves, rooted at a mapping that always carries a "version" key.

# Paths

Paths are dot-separated segments:

  - "php.version" addresses the key "version" inside the mapping "php".
  - "php.extensions.base.0" addresses the first element of a sequence.
  - "php.extensions.base.[]" appends to a sequence (Set only, last segment only).
  - "php.extensions.base.[intl]" locates an element by value (Has and Unset, last segment only).

Get reads every segment literally, so "[]" and "[value]" are ordinary keys there.

Traversal never keeps references into the tree: every level returns its rewritten
child to the parent, which stores it back under the same key or index.
*/
package document

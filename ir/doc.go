// Package ir provides the intermediate representation for parti
// documents and patterns.
//
// All values compared by parti, whether parsed from YAML/JSON text or
// built from plain Go values with FromAny, are represented as Node
// trees.  A Node is a recursive tagged union: the Type field says
// which value fields are meaningful.  Pattern nodes may additionally
// carry a Tag ("!glob", "!not.and", ...) interpreted by the patop
// package, and the distinguished ignore sentinel (Ellipsis, IgnoreTag)
// which matches anything.
//
// Nodes maintain parent links so that any node can report its
// location (Path) in mismatch diagnostics.  Node structures are not
// safe for concurrent mutation.
package ir

// Package parti implements partial structural comparison of document
// values against patterns.
//
// A pattern declares only the structure it cares about: object
// patterns check a subset of keys, array patterns check a prefix,
// string patterns use '*' wildcards, floats compare approximately,
// and the ignore sentinel (parti.Ignore, '!ignore', a plain '...')
// matches anything.  Pattern tags (!glob, !re, !and, !or, !not,
// !type, !approx, !expr) are resolved through the patop registry.
//
// Compare returns an Outcome describing the first mismatch rather
// than a bare bool, so test failures carry a usable diagnostic.
package parti

// Package patop defines the pattern operators available in parti
// patterns via tags, such as !glob, !re, !and, !or, !not, !type,
// !approx, !expr and the !ignore sentinel.
//
// Operators are registered in a process-wide registry under their tag
// head.  Tags compose with '.', so "!not.glob 'h*o'" negates a glob
// match.  The root parti package resolves tags with SplitChild and
// Lookup while comparing.
package patop

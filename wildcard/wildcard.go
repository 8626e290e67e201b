// Package wildcard implements '*'-only pattern matching for string
// expectations: '*' matches any run of characters, including line
// breaks, and every other character is literal.
package wildcard

import (
	"regexp"
	"strings"
	"sync"
)

var cache sync.Map // pattern -> *regexp.Regexp

// Match reports whether value matches pattern.  The match is anchored
// to the full value.  A pattern without '*' requires exact equality.
func Match(pattern, value string) bool {
	if !strings.Contains(pattern, "*") {
		return pattern == value
	}
	re, ok := cache.Load(pattern)
	if !ok {
		re = compile(pattern)
		cache.Store(pattern, re)
	}
	return re.(*regexp.Regexp).MatchString(value)
}

func compile(pattern string) *regexp.Regexp {
	parts := strings.Split(pattern, "*")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	// (?s) so '*' runs across newlines
	return regexp.MustCompile("(?s)^" + strings.Join(parts, ".*") + "$")
}

package wildcard

import "testing"

type matchTest struct {
	pattern string
	value   string
	res     bool
}

var matchTests = []matchTest{
	{pattern: "foo*bar", value: "foobazbar", res: true},
	{pattern: "foo*bar", value: "foobar", res: true},
	{pattern: "foo*bar", value: "foobaz", res: false},
	{pattern: "foo", value: "foo", res: true},
	{pattern: "foo", value: "foobar", res: false},
	{pattern: "*", value: "", res: true},
	{pattern: "*", value: "anything\nat all", res: true},
	{pattern: "a*c", value: "a\nb\nc", res: true},
	{pattern: "a.c", value: "abc", res: false},
	{pattern: "a.c", value: "a.c", res: true},
	{pattern: "a[0]*", value: "a[0]xyz", res: true},
	{pattern: "", value: "", res: true},
	{pattern: "", value: "x", res: false},
	{pattern: "**x", value: "abcx", res: true},
}

func TestMatch(t *testing.T) {
	for _, mt := range matchTests {
		if got := Match(mt.pattern, mt.value); got != mt.res {
			t.Errorf("Match(%q, %q) = %t, want %t", mt.pattern, mt.value, got, mt.res)
		}
	}
}

func TestMatchCached(t *testing.T) {
	// second use hits the cache; result must be identical
	for range 2 {
		if !Match("h*o", "hello") {
			t.Error("h*o should match hello")
		}
	}
}

package ir

import (
	"reflect"
	"testing"
)

type tagArgsTest struct {
	tag  string
	head string
	args []string
	rest string
}

var tagArgsTests = []tagArgsTest{
	{tag: "!glob", head: "!glob"},
	{tag: "!not.glob", head: "!not", rest: "!glob"},
	{tag: "!approx(1e-3)", head: "!approx", args: []string{"1e-3"}},
	{tag: "!not.approx(0.5)", head: "!not", rest: "!approx(0.5)"},
	{tag: "!f(a,b)", head: "!f", args: []string{"a", "b"}},
	{tag: "!f(a,b).g", head: "!f", args: []string{"a", "b"}, rest: "!g"},
}

func TestTagArgs(t *testing.T) {
	for _, tt := range tagArgsTests {
		head, args, rest := TagArgs(tt.tag)
		if head != tt.head {
			t.Errorf("%q: head %q want %q", tt.tag, head, tt.head)
		}
		if !reflect.DeepEqual(args, tt.args) {
			t.Errorf("%q: args %v want %v", tt.tag, args, tt.args)
		}
		if rest != tt.rest {
			t.Errorf("%q: rest %q want %q", tt.tag, rest, tt.rest)
		}
	}
}

func TestTagHas(t *testing.T) {
	if !TagHas("!not.glob", "glob") {
		t.Error("expected !not.glob to have glob")
	}
	if !TagHas("!not.glob", "not") {
		t.Error("expected !not.glob to have not")
	}
	if TagHas("!not.glob", "and") {
		t.Error("did not expect !not.glob to have and")
	}
	if TagHas("", "glob") {
		t.Error("empty tag has nothing")
	}
}

func TestTagCompose(t *testing.T) {
	if got := TagCompose("!not", nil, "!glob"); got != "!not.glob" {
		t.Errorf("got %q", got)
	}
	if got := TagCompose("!approx", []string{"1e-3"}, ""); got != "!approx(1e-3)" {
		t.Errorf("got %q", got)
	}
}

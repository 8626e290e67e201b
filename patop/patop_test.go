package patop

import (
	"errors"
	"math"
	"testing"

	"github.com/parti-format/parti/ir"
)

func TestSplitChild(t *testing.T) {
	pat := ir.FromString("h*o").WithTag("!glob")
	tag, args, child, err := SplitChild(pat)
	if err != nil {
		t.Fatal(err)
	}
	if tag != "glob" || len(args) != 0 {
		t.Errorf("got tag %q args %v", tag, args)
	}
	if child.Tag != "" || child.String != "h*o" {
		t.Errorf("child not stripped: %+v", child)
	}
}

func TestSplitChildComposed(t *testing.T) {
	pat := ir.FromString("h*o").WithTag("!not.glob")
	tag, _, child, err := SplitChild(pat)
	if err != nil {
		t.Fatal(err)
	}
	if tag != "not" {
		t.Errorf("got tag %q", tag)
	}
	if child.Tag != "!glob" {
		t.Errorf("child tag %q", child.Tag)
	}
}

func TestSplitChildArgs(t *testing.T) {
	pat := ir.FromFloat(0.3).WithTag("!approx(0.5)")
	tag, args, _, err := SplitChild(pat)
	if err != nil {
		t.Fatal(err)
	}
	if tag != "approx" {
		t.Errorf("got tag %q", tag)
	}
	if len(args) != 1 || args[0] != "0.5" {
		t.Errorf("got args %v", args)
	}
}

func TestSplitChildForeignTag(t *testing.T) {
	pat := ir.FromString("x").WithTag("!mystery")
	tag, _, child, err := SplitChild(pat)
	if err != nil {
		t.Fatal(err)
	}
	if tag != "" || child != nil {
		t.Errorf("foreign tag resolved to %q", tag)
	}
}

func TestApproxEqual(t *testing.T) {
	for _, tc := range []struct {
		a, b, rel float64
		eq        bool
	}{
		{1, 1, 1e-6, true},
		{1, 1.0000001, 1e-6, true},
		{1, 1.1, 1e-6, false},
		{0, 1e-13, 1e-6, true},
		{0, 1e-6, 1e-6, false},
		{math.NaN(), math.NaN(), 1e-6, false},
		{math.Inf(1), math.Inf(1), 1e-6, true},
		{math.Inf(1), math.Inf(-1), 1e-6, false},
		{math.Inf(1), 1e300, 1e-6, false},
	} {
		got := ApproxEqual(tc.a, tc.b, tc.rel, DefaultAbsTol)
		if got != tc.eq {
			t.Errorf("ApproxEqual(%v, %v, %v): got %t", tc.a, tc.b, tc.rel, got)
		}
	}
}

func TestGlobRequiresString(t *testing.T) {
	_, err := Glob().Instance(ir.FromInt(1), nil)
	if err == nil {
		t.Error("expected error for non-string glob pattern")
	}
}

func TestApproxBadTolerance(t *testing.T) {
	_, err := Approx().Instance(ir.FromFloat(0.3), []string{"junk"})
	if err == nil {
		t.Error("expected error for bad tolerance")
	}
}

func TestTypeUnknownName(t *testing.T) {
	_, err := Type().Instance(ir.FromString("widget"), nil)
	if err == nil {
		t.Error("expected error for unknown type name")
	}
}

func TestExprBadProgram(t *testing.T) {
	_, err := Expr().Instance(ir.FromString("value >"), nil)
	if err == nil {
		t.Error("expected compile error")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	err := Register(Glob())
	if !errors.Is(err, ErrSymbolExists) {
		t.Errorf("got %v", err)
	}
}

func TestLookup(t *testing.T) {
	for _, n := range []string{"ignore", "glob", "re", "and", "or", "not", "type", "approx", "expr"} {
		if Lookup(n) == nil {
			t.Errorf("%s not registered", n)
		}
	}
	if Lookup("mystery") != nil {
		t.Error("unexpected symbol")
	}
}

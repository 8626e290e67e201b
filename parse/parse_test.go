package parse

import (
	"testing"

	"github.com/parti-format/parti/ir"
)

func TestParseScalars(t *testing.T) {
	y, err := Parse([]byte(`42`))
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.NumberType || y.Int64 == nil || *y.Int64 != 42 {
		t.Errorf("got %+v", y)
	}
	y, err = Parse([]byte(`1.5`))
	if err != nil {
		t.Fatal(err)
	}
	if y.Float64 == nil || *y.Float64 != 1.5 {
		t.Errorf("got %+v", y)
	}
	y, err = Parse([]byte(`hello`))
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.StringType || y.String != "hello" {
		t.Errorf("got %+v", y)
	}
	y, err = Parse([]byte(`null`))
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.NullType {
		t.Errorf("got %+v", y)
	}
}

func TestParseObject(t *testing.T) {
	y, err := Parse([]byte("a: b\nc:\n- 1\n- 2"))
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.ObjectType || len(y.Fields) != 2 {
		t.Fatalf("got %+v", y)
	}
	if a := ir.Get(y, "a"); a == nil || a.String != "b" {
		t.Errorf("a: %+v", a)
	}
	c := ir.Get(y, "c")
	if c == nil || c.Type != ir.ArrayType || len(c.Values) != 2 {
		t.Fatalf("c: %+v", c)
	}
	if got := c.Values[1].Path(); got != "$.c[1]" {
		t.Errorf("path %q", got)
	}
}

func TestParseSinglePairObject(t *testing.T) {
	y, err := Parse([]byte("a: b"))
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.ObjectType || len(y.Fields) != 1 {
		t.Fatalf("got %+v", y)
	}
}

func TestParseTags(t *testing.T) {
	y, err := Parse([]byte(`!glob 'h*o'`))
	if err != nil {
		t.Fatal(err)
	}
	if y.Tag != "!glob" || y.String != "h*o" {
		t.Errorf("got tag %q string %q", y.Tag, y.String)
	}
	y, err = Parse([]byte("a: !not.glob 'h*o'"))
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(y, "a").Tag; got != "!not.glob" {
		t.Errorf("got tag %q", got)
	}
}

func TestParseTaggedScalarTypes(t *testing.T) {
	y, err := Parse([]byte(`!approx(0.2) 0.3`))
	if err != nil {
		t.Fatal(err)
	}
	if y.Tag != "!approx(0.2)" || y.Type != ir.NumberType {
		t.Fatalf("got tag %q type %s", y.Tag, y.Type)
	}
	if y.Float64 == nil || *y.Float64 != 0.3 {
		t.Errorf("got %+v", y)
	}

	y, err = Parse([]byte(`!not 3`))
	if err != nil {
		t.Fatal(err)
	}
	if y.Int64 == nil || *y.Int64 != 3 {
		t.Errorf("got %+v", y)
	}

	y, err = Parse([]byte(`!not true`))
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.BoolType || !y.Bool {
		t.Errorf("got %+v", y)
	}

	// quoted scalars under a tag stay strings
	y, err = Parse([]byte(`!glob '3'`))
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.StringType || y.String != "3" {
		t.Errorf("got %+v", y)
	}

	// and so do plain non-numeric scalars
	y, err = Parse([]byte(`!glob h*o`))
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.StringType || y.String != "h*o" {
		t.Errorf("got %+v", y)
	}
}

func TestParseEllipsis(t *testing.T) {
	y, err := Parse([]byte("a: ..."))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Get(y, "a").IsEllipsis() {
		t.Errorf("expected ellipsis, got %+v", ir.Get(y, "a"))
	}

	// quoted '...' stays a string
	y, err = Parse([]byte(`a: '...'`))
	if err != nil {
		t.Fatal(err)
	}
	if a := ir.Get(y, "a"); a.IsEllipsis() || a.String != "..." {
		t.Errorf("got %+v", a)
	}

	// disabled by option
	y, err = Parse([]byte("a: ..."), NoEllipsis())
	if err != nil {
		t.Fatal(err)
	}
	if a := ir.Get(y, "a"); a.IsEllipsis() {
		t.Errorf("got %+v", a)
	}
}

func TestParseJSON(t *testing.T) {
	y, err := Parse([]byte(`{"a": [1, true, null], "b": "x"}`))
	if err != nil {
		t.Fatal(err)
	}
	a := ir.Get(y, "a")
	if a == nil || a.Type != ir.ArrayType || len(a.Values) != 3 {
		t.Fatalf("got %+v", a)
	}
	if a.Values[1].Type != ir.BoolType || !a.Values[1].Bool {
		t.Errorf("got %+v", a.Values[1])
	}
}

func TestParseAllDocs(t *testing.T) {
	docs, err := ParseAll([]byte("a: 1\n---\nb: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs", len(docs))
	}
}

func TestParseAnchors(t *testing.T) {
	y, err := Parse([]byte("a: &x 3\nb: *x"))
	if err != nil {
		t.Fatal(err)
	}
	b := ir.Get(y, "b")
	if b == nil || b.Int64 == nil || *b.Int64 != 3 {
		t.Errorf("got %+v", b)
	}
}

func TestParseError(t *testing.T) {
	if _, err := Parse([]byte("a: [1, 2")); err == nil {
		t.Error("expected parse error")
	}
}

func TestParseEmpty(t *testing.T) {
	y, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if y != nil {
		t.Errorf("got %+v", y)
	}
}

package parti

import (
	"fmt"
	"strings"

	"github.com/parti-format/parti/debug"
	"github.com/parti-format/parti/encode"
	"github.com/parti-format/parti/ir"
	"github.com/parti-format/parti/patop"
	"github.com/parti-format/parti/strdiff"
	"github.com/parti-format/parti/trace"
	"github.com/parti-format/parti/wildcard"
)

// Ignore is the sentinel value that matches any document value when
// used in a pattern built with CompareValues.
var Ignore = ir.Ignore

// Compare partially compares a document against a pattern.
//
// For objects, keys in the pattern are checked and others ignored.
// For arrays, positions up to the pattern's length are checked and
// the rest ignored.  Strings match with '*' wildcards, floats
// approximately, and everything else exactly.  This happens
// recursively, stopping at the first mismatch.
func Compare(doc, pattern *ir.Node, opts ...CompareOpt) Outcome {
	cfg := newCompareConfig(opts)
	c := &comparer{cfg: cfg}
	tr := trace.New(cfg.Trace)
	if tr.BeginGroup("Comparison") {
		defer tr.EndGroup()
	}
	out := c.compare(doc, pattern, tr)
	tr.Printf("---> %s", out)
	return out
}

// CompareValues is Compare over plain Go values (maps, slices and
// scalars, plus the Ignore sentinel).
func CompareValues(doc, pattern any, opts ...CompareOpt) Outcome {
	yDoc, err := ir.FromAny(doc)
	if err != nil {
		return Outcome{Error: fmt.Sprintf("document: %v", err), Path: "$"}
	}
	yPattern, err := ir.FromAny(pattern)
	if err != nil {
		return Outcome{Error: fmt.Sprintf("pattern: %v", err), Path: "$"}
	}
	return Compare(yDoc, yPattern, opts...)
}

type comparer struct {
	cfg *CompareConfig
}

func (c *comparer) compare(doc, pattern *ir.Node, tr *trace.Printer) Outcome {
	if doc == nil || pattern == nil {
		if doc == nil && pattern == nil {
			return Outcome{}
		}
		return Outcome{Error: "missing value", Path: "$"}
	}
	if debug.Match() {
		debug.Logf("compare type %s at %s with tag %q\n", pattern.Type, pattern.Path(), pattern.Tag)
	}
	tr.Printf("comparing")
	tr.Sub().Printf("%s", encode.MustString(doc))
	tr.Printf("|---- to ----")
	tr.Sub().Printf("%s", encode.MustString(pattern))

	if pattern.IsEllipsis() {
		tr.Errorf("ignoring ellipsis comparison")
		return Outcome{}
	}
	tag, args, child, err := patop.SplitChild(pattern)
	if err != nil {
		return c.mismatch(doc, tr, "%v", err)
	}
	if tag != "" {
		return c.opCompare(doc, tag, args, child, tr)
	}
	if doc.TypeName() != pattern.TypeName() {
		return c.mismatch(doc, tr, "different types (%s, %s) -> false",
			doc.TypeName(), pattern.TypeName())
	}
	switch pattern.Type {
	case ir.ObjectType:
		tr.Printf("|======= comparing as object")
		return c.compareObject(doc, pattern, tr)
	case ir.ArrayType:
		tr.Printf("|======= comparing as array")
		return c.compareArray(doc, pattern, tr)
	case ir.StringType:
		tr.Printf("|======= comparing as string")
		return c.compareString(doc, pattern, tr)
	case ir.NumberType:
		tr.Printf("|======= comparing as number")
		return c.compareNumber(doc, pattern, tr)
	case ir.BoolType:
		if doc.Bool != pattern.Bool {
			return c.mismatch(doc, tr, "%t != %t", doc.Bool, pattern.Bool)
		}
		return Outcome{}
	case ir.NullType:
		return Outcome{}
	}
	return c.mismatch(doc, tr, "unsupported pattern type %s", pattern.Type)
}

func (c *comparer) opCompare(doc *ir.Node, tag string, args []string, child *ir.Node, tr *trace.Printer) Outcome {
	tr.Printf("|======= comparing with !%s", tag)
	sym := patop.Lookup(tag)
	if sym == nil {
		return c.mismatch(doc, tr, "no pattern op for tag %q", tag)
	}
	opInst, err := sym.Instance(child, args)
	if err != nil {
		return c.mismatch(doc, tr, "%v", err)
	}
	sub := tr.Sub()
	m, err := opInst.Match(doc, func(d, p *ir.Node) (bool, error) {
		return c.compare(d, p, sub).Ok(), nil
	})
	if err != nil {
		return c.mismatch(doc, tr, "%v", err)
	}
	if !m {
		return c.mismatch(doc, tr, "!%s pattern did not match", tag)
	}
	return Outcome{}
}

func (c *comparer) compareObject(doc, pattern *ir.Node, tr *trace.Printer) Outcome {
	for i := range pattern.Fields {
		key := pattern.Fields[i].String
		docVal := ir.Get(doc, key)
		if docVal == nil {
			return c.mismatch(doc, tr, "key %q is in pattern but not in document", key)
		}
		out := c.compare(docVal, pattern.Values[i], tr.Sub())
		if !out.Ok() {
			return out
		}
	}
	return Outcome{}
}

func (c *comparer) compareArray(doc, pattern *ir.Node, tr *trace.Printer) Outcome {
	if len(doc.Values) < len(pattern.Values) {
		return c.mismatch(doc, tr, "pattern array is longer than document array (%d > %d)",
			len(pattern.Values), len(doc.Values))
	}
	for i := range pattern.Values {
		out := c.compare(doc.Values[i], pattern.Values[i], tr.Sub())
		if !out.Ok() {
			return out
		}
	}
	return Outcome{}
}

func (c *comparer) compareString(doc, pattern *ir.Node, tr *trace.Printer) Outcome {
	if wildcard.Match(pattern.String, doc.String) {
		return Outcome{}
	}
	if !strings.Contains(pattern.String, "*") {
		return c.mismatch(doc, tr, "%q != %q (string comparison)\n%s",
			doc.String, pattern.String, strdiff.Inline(doc.String, pattern.String))
	}
	return c.mismatch(doc, tr, "%q != %q (pattern matching)", doc.String, pattern.String)
}

func (c *comparer) compareNumber(doc, pattern *ir.Node, tr *trace.Printer) Outcome {
	switch {
	case pattern.Int64 != nil:
		if *doc.Int64 != *pattern.Int64 {
			return c.mismatch(doc, tr, "%d != %d", *doc.Int64, *pattern.Int64)
		}
	case pattern.Float64 != nil:
		if !patop.ApproxEqual(*doc.Float64, *pattern.Float64, c.cfg.RelTol, c.cfg.AbsTol) {
			return c.mismatch(doc, tr, "%v != %v (float comparison)", *doc.Float64, *pattern.Float64)
		}
	default:
		if doc.Number != pattern.Number {
			return c.mismatch(doc, tr, "%s != %s", doc.Number, pattern.Number)
		}
	}
	return Outcome{}
}

func (c *comparer) mismatch(doc *ir.Node, tr *trace.Printer, format string, args ...any) Outcome {
	out := Outcome{
		Error: fmt.Sprintf(format, args...),
		Path:  doc.Path(),
	}
	tr.Errorf("%s", out.Error)
	return out
}

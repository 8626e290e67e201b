// Package parse reads YAML (and hence JSON) documents and patterns
// into parti IR, preserving custom tags such as !glob and !not.and.
package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/parti-format/parti/ir"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
)

// Parse decodes the first document in d.  It returns nil for empty
// input.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	docs, err := ParseAll(d, opts...)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

// ParseAll decodes every document ('---' separated) in d.
func ParseAll(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := &parseOpts{ellipsis: true}
	for _, f := range opts {
		f(pOpts)
	}
	file, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ir.ErrParse, err)
	}
	var res []*ir.Node
	for _, doc := range file.Docs {
		if doc.Body == nil {
			continue
		}
		st := &parseState{opts: pOpts, anchors: map[string]*ir.Node{}}
		y, err := st.node(doc.Body)
		if err != nil {
			return nil, err
		}
		res = append(res, y)
	}
	return res, nil
}

type parseState struct {
	opts    *parseOpts
	anchors map[string]*ir.Node
}

func (st *parseState) node(n ast.Node) (*ir.Node, error) {
	switch x := n.(type) {
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.BoolNode:
		return ir.FromBool(x.Value), nil
	case *ast.IntegerNode:
		return intNode(x)
	case *ast.FloatNode:
		return ir.FromFloat(x.Value), nil
	case *ast.InfinityNode:
		return ir.FromFloat(x.Value), nil
	case *ast.NanNode:
		return &ir.Node{Type: ir.NumberType, Number: ".nan"}, nil
	case *ast.StringNode:
		return st.stringNode(x), nil
	case *ast.LiteralNode:
		return ir.FromString(x.Value.Value), nil
	case *ast.MappingNode:
		kvs := make([]ir.KeyVal, 0, len(x.Values))
		for _, mv := range x.Values {
			kv, err := st.keyVal(mv)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, kv)
		}
		return ir.FromKeyVals(kvs), nil
	case *ast.MappingValueNode:
		// goccy produces a bare MappingValueNode for a
		// single-pair mapping
		kv, err := st.keyVal(x)
		if err != nil {
			return nil, err
		}
		return ir.FromKeyVals([]ir.KeyVal{kv}), nil
	case *ast.SequenceNode:
		vals := make([]*ir.Node, 0, len(x.Values))
		for _, v := range x.Values {
			yv, err := st.node(v)
			if err != nil {
				return nil, err
			}
			vals = append(vals, yv)
		}
		return ir.FromSlice(vals), nil
	case *ast.TagNode:
		return st.tagNode(x)
	case *ast.AnchorNode:
		name := x.Name.GetToken().Value
		y, err := st.node(x.Value)
		if err != nil {
			return nil, err
		}
		st.anchors[name] = y
		return y, nil
	case *ast.AliasNode:
		name := x.Value.GetToken().Value
		y, ok := st.anchors[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown anchor %q", ir.ErrParse, name)
		}
		return y.Clone(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported node %T at %s", ir.ErrParse, n, n.GetToken().Position)
	}
}

func (st *parseState) keyVal(mv *ast.MappingValueNode) (ir.KeyVal, error) {
	key, err := st.key(mv.Key)
	if err != nil {
		return ir.KeyVal{}, err
	}
	val, err := st.node(mv.Value)
	if err != nil {
		return ir.KeyVal{}, err
	}
	return ir.KeyVal{Key: key, Val: val}, nil
}

func (st *parseState) key(k ast.MapKeyNode) (*ir.Node, error) {
	switch x := k.(type) {
	case *ast.StringNode:
		return ir.FromString(x.Value), nil
	case *ast.IntegerNode:
		return ir.FromString(fmt.Sprint(x.Value)), nil
	case *ast.BoolNode:
		return ir.FromString(x.GetToken().Value), nil
	default:
		return nil, fmt.Errorf("%w: unsupported object key %T", ir.ErrParse, k)
	}
}

func (st *parseState) stringNode(x *ast.StringNode) *ir.Node {
	if st.opts.ellipsis && x.Value == "..." && !quoted(x.GetToken()) {
		return ir.Ellipsis()
	}
	return ir.FromString(x.Value)
}

func quoted(tk *token.Token) bool {
	if tk == nil {
		return false
	}
	switch tk.Type {
	case token.SingleQuoteType, token.DoubleQuoteType:
		return true
	default:
		return false
	}
}

func (st *parseState) tagNode(x *ast.TagNode) (*ir.Node, error) {
	tag := x.Start.Value
	y, err := st.node(x.Value)
	if err != nil {
		return nil, err
	}
	// goccy yields a StringNode for any scalar under a custom tag, so
	// "!approx(0.2) 0.3" arrives as the string "0.3"; recover the
	// scalar's type unless it was quoted
	if sn, ok := x.Value.(*ast.StringNode); ok && y.Type == ir.StringType && !quoted(sn.GetToken()) {
		if rs := plainScalar(sn.Value); rs != nil {
			y = rs
		}
	}
	if strings.HasPrefix(tag, "!!") {
		// standard YAML tags carry no pattern semantics
		return y, nil
	}
	return y.WithTag(ir.TagCompose(tag, nil, y.Tag)), nil
}

// plainScalar resolves an unquoted scalar's type the way YAML would
// without a tag in the way.  It returns nil when the text is just a
// string.
func plainScalar(s string) *ir.Node {
	switch s {
	case "", "~", "null":
		return ir.Null()
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ir.FromInt(i)
	}
	// reject the "inf"/"nan" spellings ParseFloat accepts but YAML
	// does not
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return ir.FromFloat(f)
	}
	return nil
}

func intNode(x *ast.IntegerNode) (*ir.Node, error) {
	switch v := x.Value.(type) {
	case int64:
		return ir.FromInt(v), nil
	case uint64:
		y, err := ir.FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ir.ErrParse, err)
		}
		return y, nil
	case int:
		return ir.FromInt(int64(v)), nil
	default:
		return &ir.Node{Type: ir.NumberType, Number: x.GetToken().Value}, nil
	}
}

package patop

import (
	"fmt"

	"github.com/parti-format/parti/debug"
	"github.com/parti-format/parti/ir"
)

var orSym = &orSymbol{name: orName}

func Or() Symbol {
	return orSym
}

const (
	orName name = "or"
)

type orSymbol struct {
	name
}

func (s orSymbol) Instance(child *ir.Node, args []string) (Op, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("or op has no args, got %v", args)
	}
	if child.Type != ir.ArrayType {
		return nil, fmt.Errorf("or op applies to an array of patterns, got %s", child.Type)
	}
	return &orOp{op: op{name: s.name, child: child}}, nil
}

type orOp struct {
	op
}

func (o orOp) Match(doc *ir.Node, f MatchFunc) (bool, error) {
	if debug.Op() {
		debug.Logf("or op called on %s\n", doc.Path())
	}
	for _, sub := range o.child.Values {
		m, err := f(doc, sub)
		if err != nil {
			return false, err
		}
		if m {
			return true, nil
		}
	}
	return false, nil
}

package patop

import (
	"fmt"

	"github.com/parti-format/parti/debug"
	"github.com/parti-format/parti/ir"
)

var andSym = &andSymbol{name: andName}

func And() Symbol {
	return andSym
}

const (
	andName name = "and"
)

type andSymbol struct {
	name
}

func (s andSymbol) Instance(child *ir.Node, args []string) (Op, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("and op has no args, got %v", args)
	}
	if child.Type != ir.ArrayType {
		return nil, fmt.Errorf("and op applies to an array of patterns, got %s", child.Type)
	}
	return &andOp{op: op{name: s.name, child: child}}, nil
}

type andOp struct {
	op
}

func (a andOp) Match(doc *ir.Node, f MatchFunc) (bool, error) {
	if debug.Op() {
		debug.Logf("and op called on %s\n", doc.Path())
	}
	for _, sub := range a.child.Values {
		m, err := f(doc, sub)
		if err != nil {
			return false, err
		}
		if !m {
			return false, nil
		}
	}
	return true, nil
}

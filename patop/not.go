package patop

import (
	"fmt"

	"github.com/parti-format/parti/debug"
	"github.com/parti-format/parti/ir"
)

var notSym = &notSymbol{name: notName}

func Not() Symbol {
	return notSym
}

const (
	notName name = "not"
)

type notSymbol struct {
	name
}

func (s notSymbol) Instance(child *ir.Node, args []string) (Op, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("not op has no args, got %v", args)
	}
	return &notOp{op: op{name: s.name, child: child}}, nil
}

type notOp struct {
	op
}

func (n notOp) Match(doc *ir.Node, f MatchFunc) (bool, error) {
	if debug.Op() {
		debug.Logf("not op called on %s\n", doc.Path())
	}
	m, err := f(doc, n.child)
	if err != nil {
		return false, err
	}
	return !m, nil
}

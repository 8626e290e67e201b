package patop

import (
	"fmt"

	"github.com/parti-format/parti/debug"
	"github.com/parti-format/parti/ir"
)

var ignoreSym = &ignoreSymbol{name: ignoreName}

func Ignore() Symbol {
	return ignoreSym
}

const (
	ignoreName name = "ignore"
)

type ignoreSymbol struct {
	name
}

func (s ignoreSymbol) Instance(child *ir.Node, args []string) (Op, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("ignore op has no args, got %v", args)
	}
	return &ignoreOp{op: op{name: s.name, child: child}}, nil
}

type ignoreOp struct {
	op
}

func (g ignoreOp) Match(doc *ir.Node, f MatchFunc) (bool, error) {
	if debug.Op() {
		debug.Logf("ignore op called on %s\n", doc.Path())
	}
	return true, nil
}

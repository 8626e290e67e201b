package patop

import (
	"fmt"

	"github.com/parti-format/parti/debug"
	"github.com/parti-format/parti/ir"
	"github.com/parti-format/parti/wildcard"
)

var globSym = &globSymbol{name: globName}

func Glob() Symbol {
	return globSym
}

const (
	globName name = "glob"
)

type globSymbol struct {
	name
}

func (s globSymbol) Instance(child *ir.Node, args []string) (Op, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("glob op has no args, got %v", args)
	}
	if child.Type != ir.StringType {
		return nil, fmt.Errorf("cannot glob with non-string pattern (%s)", child.Type)
	}
	return &globOp{op: op{name: s.name, child: child}}, nil
}

type globOp struct {
	op
}

func (g globOp) Match(doc *ir.Node, f MatchFunc) (bool, error) {
	if debug.Op() {
		debug.Logf("glob op called on %s\n", doc.Path())
	}
	if doc.Type != ir.StringType {
		return false, nil
	}
	return wildcard.Match(g.child.String, doc.String), nil
}

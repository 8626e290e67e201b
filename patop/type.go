package patop

import (
	"fmt"

	"github.com/parti-format/parti/debug"
	"github.com/parti-format/parti/ir"
)

var typeSym = &typeSymbol{name: typeName}

func Type() Symbol {
	return typeSym
}

const (
	typeName name = "type"
)

type typeSymbol struct {
	name
}

func (s typeSymbol) Instance(child *ir.Node, args []string) (Op, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("type op has no args, got %v", args)
	}
	if child.Type != ir.StringType {
		return nil, fmt.Errorf("type op takes a type name, got %s", child.Type)
	}
	want := child.String
	switch want {
	case "int", "float":
	default:
		if _, err := ir.ParseType(want); err != nil {
			return nil, err
		}
	}
	return &typeOp{op: op{name: s.name, child: child}, want: want}, nil
}

type typeOp struct {
	op
	want string
}

func (t typeOp) Match(doc *ir.Node, f MatchFunc) (bool, error) {
	if debug.Op() {
		debug.Logf("type op match on %s\n", doc.Path())
	}
	if t.want == "number" {
		return doc.Type == ir.NumberType, nil
	}
	return doc.TypeName() == t.want, nil
}

package patop

import (
	"fmt"

	"github.com/parti-format/parti/debug"
	"github.com/parti-format/parti/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var exprSym = &exprSymbol{name: exprName}

func Expr() Symbol {
	return exprSym
}

const (
	exprName name = "expr"
)

type exprSymbol struct {
	name
}

func (s exprSymbol) Instance(child *ir.Node, args []string) (Op, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("expr op has no args, got %v", args)
	}
	if child.Type != ir.StringType {
		return nil, fmt.Errorf("expr op applies to a string program, got %s", child.Type)
	}
	prog, err := expr.Compile(child.String, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("expr op: %w", err)
	}
	return &exprOp{op: op{name: s.name, child: child}, prog: prog}, nil
}

type exprOp struct {
	op
	prog *vm.Program
}

// Match evaluates the program with the document value bound to
// "value" and requires a boolean result.
func (e exprOp) Match(doc *ir.Node, f MatchFunc) (bool, error) {
	if debug.Op() {
		debug.Logf("expr op called on %s\n", doc.Path())
	}
	out, err := expr.Run(e.prog, map[string]any{"value": ir.ToAny(doc)})
	if err != nil {
		return false, fmt.Errorf("expr op: %w", err)
	}
	res, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expr op result is %T, not bool", out)
	}
	return res, nil
}

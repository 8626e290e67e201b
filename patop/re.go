package patop

import (
	"fmt"
	"regexp"

	"github.com/parti-format/parti/debug"
	"github.com/parti-format/parti/ir"
)

var reSym = &reSymbol{name: reName}

func Re() Symbol {
	return reSym
}

const (
	reName name = "re"
)

type reSymbol struct {
	name
}

func (s reSymbol) Instance(child *ir.Node, args []string) (Op, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("re op has no args, got %v", args)
	}
	if child.Type != ir.StringType {
		return nil, fmt.Errorf("cannot re-match with non-string pattern (%s)", child.Type)
	}
	re, err := regexp.Compile("(?s)^(?:" + child.String + ")$")
	if err != nil {
		return nil, fmt.Errorf("re op: %w", err)
	}
	return &reOp{op: op{name: s.name, child: child}, re: re}, nil
}

type reOp struct {
	op
	re *regexp.Regexp
}

func (r reOp) Match(doc *ir.Node, f MatchFunc) (bool, error) {
	if debug.Op() {
		debug.Logf("re op called on %s\n", doc.Path())
	}
	if doc.Type != ir.StringType {
		return false, nil
	}
	return r.re.MatchString(doc.String), nil
}

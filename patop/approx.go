package patop

import (
	"fmt"
	"math"
	"strconv"

	"github.com/parti-format/parti/debug"
	"github.com/parti-format/parti/ir"
)

var approxSym = &approxSymbol{name: approxName}

func Approx() Symbol {
	return approxSym
}

const (
	approxName name = "approx"
)

// DefaultRelTol and DefaultAbsTol are the tolerances used for float
// comparison when no explicit tolerance is given.
const (
	DefaultRelTol = 1e-6
	DefaultAbsTol = 1e-12
)

type approxSymbol struct {
	name
}

func (s approxSymbol) Instance(child *ir.Node, args []string) (Op, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("approx op takes at most one arg, got %v", args)
	}
	if child.Type != ir.NumberType {
		return nil, fmt.Errorf("approx op applies to numbers, got %s", child.Type)
	}
	rel := DefaultRelTol
	if len(args) == 1 {
		var err error
		rel, err = strconv.ParseFloat(args[0], 64)
		if err != nil {
			return nil, fmt.Errorf("approx tolerance %q: %w", args[0], err)
		}
	}
	return &approxOp{op: op{name: s.name, child: child}, rel: rel}, nil
}

type approxOp struct {
	op
	rel float64
}

func (a approxOp) Match(doc *ir.Node, f MatchFunc) (bool, error) {
	if debug.Op() {
		debug.Logf("approx op called on %s\n", doc.Path())
	}
	if doc.Type != ir.NumberType {
		return false, nil
	}
	return ApproxEqual(numVal(doc), numVal(a.child), a.rel, DefaultAbsTol), nil
}

func numVal(y *ir.Node) float64 {
	switch {
	case y.Int64 != nil:
		return float64(*y.Int64)
	case y.Float64 != nil:
		return *y.Float64
	default:
		f, _ := strconv.ParseFloat(y.Number, 64)
		return f
	}
}

// ApproxEqual reports whether a equals b within the given relative
// and absolute tolerances.
func ApproxEqual(a, b, rel, abs float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= max(rel*math.Abs(b), abs)
}

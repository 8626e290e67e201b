package patop

import "github.com/parti-format/parti/ir"

// MatchFunc is the signature of the recursive comparison an operator
// may call on sub-patterns.
type MatchFunc func(doc, pattern *ir.Node) (bool, error)

type Op interface {
	Match(doc *ir.Node, f MatchFunc) (bool, error)
	String() string
}

type op struct {
	name  name
	child *ir.Node
}

func (o op) String() string {
	return o.name.String()
}

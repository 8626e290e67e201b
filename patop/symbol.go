package patop

import "github.com/parti-format/parti/ir"

// Symbol names an operator and instantiates it from a pattern node.
// The child node is the operator's tag-stripped pattern payload and
// args are the parenthesized tag arguments, if any.
type Symbol interface {
	String() string
	Instance(child *ir.Node, args []string) (Op, error)
}

type name string

func (s name) String() string {
	return string(s)
}

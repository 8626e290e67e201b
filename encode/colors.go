package encode

import (
	"github.com/parti-format/parti/ir"

	"github.com/fatih/color"
)

type Colors struct {
	Field func(string) string
	Tag   func(string) string
	Sep   func(string) string
	Value map[ir.Type]func(string) string
}

func noColors() *Colors {
	ident := func(s string) string { return s }
	c := &Colors{
		Field: ident,
		Tag:   ident,
		Sep:   ident,
		Value: map[ir.Type]func(string) string{},
	}
	for _, t := range ir.Types() {
		c.Value[t] = ident
	}
	return c
}

func NewColors() *Colors {
	c := noColors()
	c.Field = sprint(color.New(color.FgCyan))
	c.Tag = sprint(color.New(color.FgMagenta))
	c.Value[ir.StringType] = sprint(color.New(color.FgGreen))
	c.Value[ir.NumberType] = sprint(color.New(color.FgHiBlue))
	c.Value[ir.BoolType] = sprint(color.New(color.FgCyan))
	c.Value[ir.NullType] = sprint(color.New(color.FgHiMagenta))
	return c
}

func sprint(c *color.Color) func(string) string {
	return func(s string) string { return c.Sprint(s) }
}

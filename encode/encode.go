// Package encode renders parti IR as YAML or JSON, with optional
// color for terminal output.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/parti-format/parti/ir"
)

func Encode(y *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, f := range opts {
		f(es)
	}
	if es.colors == nil {
		es.colors = noColors()
	}
	if es.format == JSONFormat {
		d, err := json.MarshalIndent(ir.ToAny(y), "", "  ")
		if err != nil {
			return err
		}
		d = append(d, '\n')
		_, err = w.Write(d)
		return err
	}
	b := &strings.Builder{}
	es.node(b, y, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

func (es *EncState) node(b *strings.Builder, y *ir.Node, depth int) {
	switch y.Type {
	case ir.ObjectType:
		if len(y.Fields) == 0 {
			b.WriteString(es.tagPrefix(y) + "{}\n")
			return
		}
		es.object(b, y, depth)
	case ir.ArrayType:
		if len(y.Values) == 0 {
			b.WriteString(es.tagPrefix(y) + "[]\n")
			return
		}
		if y.Tag != "" {
			b.WriteString(strings.TrimSuffix(es.tagPrefix(y), " ") + "\n")
		}
		es.array(b, y, depth)
	default:
		b.WriteString(es.tagPrefix(y) + es.scalar(y) + "\n")
	}
}

func (es *EncState) object(b *strings.Builder, y *ir.Node, depth int) {
	if y.Tag != "" {
		b.WriteString(strings.TrimSuffix(es.tagPrefix(y), " ") + "\n")
	}
	pad := strings.Repeat("  ", depth)
	for i := range y.Fields {
		field := y.Fields[i]
		val := y.Values[i]
		b.WriteString(pad)
		b.WriteString(es.colors.Field(quoteIfNeeded(field.String)))
		b.WriteString(es.colors.Sep(":"))
		es.value(b, val, depth)
	}
}

func (es *EncState) array(b *strings.Builder, y *ir.Node, depth int) {
	pad := strings.Repeat("  ", depth)
	for _, val := range y.Values {
		b.WriteString(pad)
		b.WriteString(es.colors.Sep("-"))
		es.value(b, val, depth)
	}
}

// value writes a field or item value after its "key:" or "-" lead-in,
// already positioned on the lead-in's line.
func (es *EncState) value(b *strings.Builder, val *ir.Node, depth int) {
	switch val.Type {
	case ir.ObjectType:
		if len(val.Fields) == 0 {
			b.WriteString(" " + es.tagPrefix(val) + "{}\n")
			return
		}
		if val.Tag != "" {
			b.WriteString(" " + strings.TrimSuffix(es.tagPrefix(val), " "))
		}
		b.WriteString("\n")
		es.object(b, valNoTag(val), depth+1)
	case ir.ArrayType:
		if len(val.Values) == 0 {
			b.WriteString(" " + es.tagPrefix(val) + "[]\n")
			return
		}
		if val.Tag != "" {
			b.WriteString(" " + strings.TrimSuffix(es.tagPrefix(val), " "))
		}
		b.WriteString("\n")
		es.array(b, val, depth+1)
	default:
		b.WriteString(" " + es.tagPrefix(val) + es.scalar(val) + "\n")
	}
}

// valNoTag avoids re-emitting a tag already written by value.
func valNoTag(y *ir.Node) *ir.Node {
	if y.Tag == "" {
		return y
	}
	c := *y
	c.Tag = ""
	return &c
}

func (es *EncState) tagPrefix(y *ir.Node) string {
	if y.Tag == "" {
		return ""
	}
	return es.colors.Tag(y.Tag) + " "
}

func (es *EncState) scalar(y *ir.Node) string {
	val := es.colors.Value[y.Type]
	switch y.Type {
	case ir.NullType:
		return val("null")
	case ir.BoolType:
		return val(strconv.FormatBool(y.Bool))
	case ir.NumberType:
		return val(y.NumberString())
	case ir.StringType:
		return val(quoteIfNeeded(y.String))
	default:
		panic(fmt.Sprintf("scalar of type %s", y.Type))
	}
}

func quoteIfNeeded(s string) string {
	if needsQuote(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	switch s {
	case "null", "true", "false", "yes", "no", "~", "...":
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	if strings.TrimSpace(s) != s {
		return true
	}
	if strings.ContainsAny(s, "\n\t\"'#:{}[],|>") {
		return true
	}
	// these are only special as the first character of a plain scalar
	switch s[0] {
	case '-', '?', ' ', '*', '&', '!', '%', '@', '`':
		return true
	}
	return false
}

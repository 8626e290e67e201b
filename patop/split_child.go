package patop

import (
	"github.com/parti-format/parti/ir"
)

// SplitChild resolves the first registered operator in the pattern's
// tag.  It returns the operator's tag head without '!', its args, and
// the pattern with that head stripped.  Unregistered tag heads are
// skipped so patterns can carry foreign tags.
func SplitChild(pattern *ir.Node) (tag string, args []string, child *ir.Node, err error) {
	if pattern.Tag == "" {
		return "", nil, nil, nil
	}
	var rest = ""
	tag = pattern.Tag
	for {
		if tag == "" {
			return "", nil, nil, nil
		}
		tag, args, rest = ir.TagArgs(tag)
		tag = tag[1:]
		if Lookup(tag) == nil {
			tag = rest
			continue
		}
		child = pattern.Clone()
		child.Tag = rest
		return tag, args, child, nil
	}
}

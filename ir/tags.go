package ir

import "strings"

// Tags are '!' prefixed and dot-composed, e.g. "!not.glob".  A tag
// head may carry parenthesized args, e.g. "!approx(1e-3)".

func TagArgs(tag string) (string, []string, string) {
	var (
		head, rest string
		args       []string
		n          = len(tag)
		c          byte
		depth      int
		open       int
		argStart   int
	)
	for i := 0; i < n; i++ {
		c = tag[i]
		switch c {
		case '.':
			if depth != 0 {
				continue
			}
			if open != 0 {
				head = tag[:open]
			} else {
				head = tag[:i]
			}
			if i < n {
				rest = tag[i+1:]
			}
			return head, args, "!" + rest
		case '(':
			if depth == 0 {
				open = i
				argStart = i + 1
			}
			depth++
		case ')':
			depth--
			if depth != 0 {
				continue
			}
			if i != argStart && argStart != 0 {
				args = append(args, tag[argStart:i])
			}
			argStart = 0
		case ',':
			if depth != 1 {
				continue
			}
			if argStart != 0 {
				args = append(args, tag[argStart:i])
			}
			argStart = i + 1
		}
	}
	if rest != "" {
		rest = "!" + rest
	}
	if open != 0 {
		head = tag[:open]
	} else {
		head = tag
	}
	return head, args, rest
}

func TagCompose(tag string, args []string, oTag string) string {
	headTag := tag
	if len(args) != 0 {
		headTag += "(" + strings.Join(args, ",") + ")"
	}
	if oTag != "" {
		return headTag + "." + oTag[1:]
	}
	return headTag
}

// TagHas: what should be ! prefixed or bare; tag heads are compared
// without their '!' prefix.
func TagHas(tag, what string) bool {
	what = strings.TrimPrefix(what, "!")
	for {
		if tag == "" {
			return false
		}
		hd, _, rest := TagArgs(tag)
		if strings.TrimPrefix(hd, "!") == what {
			return true
		}
		tag = rest
	}
}

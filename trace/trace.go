// Package trace renders the step-by-step comparison trace used to
// debug partial-match failures, with GitHub Actions group markers
// when running on CI.
package trace

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes an indentation-structured trace.  A nil Printer
// discards everything, so callers need not branch on tracing being
// enabled.
type Printer struct {
	w     io.Writer
	depth int
}

func New(w io.Writer) *Printer {
	if w == nil {
		return nil
	}
	return &Printer{w: w}
}

// Sub returns a printer one level deeper.
func (p *Printer) Sub() *Printer {
	if p == nil {
		return nil
	}
	return &Printer{w: p.w, depth: p.depth + 1}
}

func (p *Printer) Printf(format string, args ...any) {
	if p == nil {
		return
	}
	text := fmt.Sprintf(format, args...)
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("|   ", p.depth), line)
	}
}

// Errorf prints a banner-marked error line.
func (p *Printer) Errorf(format string, args ...any) {
	if p == nil {
		return
	}
	p.Printf("| ****** "+format+" ******", args...)
}

// BeginGroup opens a GitHub Actions log group when on CI and at the
// trace root.  It returns true when a matching EndGroup is needed.
func (p *Printer) BeginGroup(name string) bool {
	if p == nil || p.depth != 0 || !OnCI() {
		return false
	}
	fmt.Fprintln(p.w, GroupBegin(name))
	return true
}

func (p *Printer) EndGroup() {
	if p == nil {
		return
	}
	fmt.Fprintln(p.w, GroupEnd())
}

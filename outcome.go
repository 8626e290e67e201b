package parti

import "fmt"

// Outcome is the result of a partial comparison.  Error is empty on a
// match; otherwise it describes the first mismatch found and Path
// locates it in the document.
type Outcome struct {
	Error string
	Path  string
}

func (o Outcome) Ok() bool {
	return o.Error == ""
}

func (o Outcome) String() string {
	if o.Ok() {
		return "true"
	}
	return "false"
}

// Describe renders the outcome for a failure report.
func (o Outcome) Describe() string {
	if o.Ok() {
		return "match"
	}
	return fmt.Sprintf("mismatch at %s: %s", o.Path, o.Error)
}

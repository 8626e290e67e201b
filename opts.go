package parti

import (
	"io"

	"github.com/parti-format/parti/patop"
)

type CompareConfig struct {
	RelTol float64
	AbsTol float64
	Trace  io.Writer
}

type CompareOpt func(*CompareConfig)

// WithTrace writes a step-by-step comparison trace to w.  On CI the
// trace is wrapped in a GitHub Actions log group.
func WithTrace(w io.Writer) CompareOpt {
	return func(c *CompareConfig) { c.Trace = w }
}

// Tolerance overrides the relative and absolute tolerances used for
// float comparison.
func Tolerance(rel, abs float64) CompareOpt {
	return func(c *CompareConfig) {
		c.RelTol = rel
		c.AbsTol = abs
	}
}

func newCompareConfig(opts []CompareOpt) *CompareConfig {
	cfg := &CompareConfig{
		RelTol: patop.DefaultRelTol,
		AbsTol: patop.DefaultAbsTol,
	}
	for _, f := range opts {
		f(cfg)
	}
	return cfg
}

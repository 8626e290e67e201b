package parse

type parseOpts struct {
	ellipsis bool
}

type ParseOption func(*parseOpts)

// NoEllipsis disables treating plain '...' scalars as the ignore
// sentinel.
func NoEllipsis() ParseOption {
	return func(o *parseOpts) { o.ellipsis = false }
}

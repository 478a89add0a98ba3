package pulsejet

import "github.com/logicomacorp/pulsejet/internal/mathshim"

// Option configures an Encode or Decode call. The zero value of each
// underlying config uses the accurate, math-package-backed default shim.
type Option struct {
	shim mathshim.Shim
}

// WithMathShim substitutes the four transcendental primitives (cos, sin,
// exp2, sqrt) the codec core uses. Use mathshim.NewFastTable() for the
// reduced-accuracy, table-driven approximation ported from the format's
// reference implementation, or any implementation of mathshim.Shim.
//
// The decoder is documented to tolerate a reduced-accuracy shim; using a
// different shim for encode vs. decode is legal (the format does not
// require bit-exact reconstruction), but using the same shim on both
// sides is recommended for reproducible output.
func WithMathShim(shim mathshim.Shim) Option {
	return Option{shim: shim}
}

func resolveShim(opts []Option) mathshim.Shim {
	for _, o := range opts {
		if o.shim != nil {
			return o.shim
		}
	}
	return mathshim.Default()
}

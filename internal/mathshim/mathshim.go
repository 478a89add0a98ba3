// Package mathshim defines the four transcendental primitives the codec
// core consumes, and provides the default implementations for them.
//
// The core never calls math.Cos/math.Sin/math.Exp2/math.Sqrt directly: it
// goes through a Shim so that a caller can substitute a reduced-accuracy,
// speed-optimized implementation (the original motivation, per the format's
// design notes, is running in a size-constrained environment where libm
// may be unavailable or undesirably large).
package mathshim

import "math"

// Shim is the capability interface the codec core depends on. All methods
// operate on float32 and must be reentrant; they need not be safe for
// concurrent use unless the caller calls them concurrently itself.
type Shim interface {
	Cos(x float32) float32
	Sin(x float32) float32
	Exp2(x float32) float32
	Sqrt(x float32) float32
}

// stdlib is the accurate, math-package-backed Shim.
type stdlib struct{}

func (stdlib) Cos(x float32) float32  { return float32(math.Cos(float64(x))) }
func (stdlib) Sin(x float32) float32  { return float32(math.Sin(float64(x))) }
func (stdlib) Exp2(x float32) float32 { return float32(math.Exp2(float64(x))) }
func (stdlib) Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// Default returns the accurate, stdlib-backed Shim. This is what Encode
// and Decode use when no Shim option is supplied.
func Default() Shim { return stdlib{} }

package mathshim

import (
	"math"

	"golang.org/x/sys/cpu"
)

// fastCosTableLog2Size mirrors the original demo's 1024-entry cosine table.
const (
	fastCosTableLog2Size = 10
	fastCosTableSize     = 1 << fastCosTableLog2Size
)

// fastTable is a table-driven cosine approximation with linear
// interpolation between samples, the same trade-off the reference demo's
// FastSinusoids makes to avoid a libm dependency in a size-constrained
// build. Sin is derived from Cos via the standard phase shift.
type fastTable struct {
	cos [fastCosTableSize + 1]float64
}

// NewFastTable builds the reduced-accuracy Shim. It does real work (filling
// a 1025-entry table) so it is meant to be constructed once and reused,
// mirroring FastSinusoids::Init being called once before any Encode/Decode
// call in the original demo.
func NewFastTable() Shim {
	t := &fastTable{}
	for i := range t.cos {
		phase := float64(i) * math.Pi * 2 / float64(fastCosTableSize)
		t.cos[i] = math.Cos(phase)
	}
	return t
}

func (t *fastTable) cosLookup(x float64) float64 {
	x = math.Abs(x)
	turns := x / (2 * math.Pi)
	frac := turns - math.Floor(turns)
	pos := frac * float64(fastCosTableSize)
	index := int(pos)
	fractMix := pos - float64(index)
	left := t.cos[index]
	right := t.cos[index+1]
	return left + (right-left)*fractMix
}

func (t *fastTable) Cos(x float32) float32 {
	return float32(t.cosLookup(float64(x)))
}

func (t *fastTable) Sin(x float32) float32 {
	return float32(t.cosLookup(float64(x) - math.Pi/2))
}

func (t *fastTable) Exp2(x float32) float32 { return float32(math.Exp2(float64(x))) }
func (t *fastTable) Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// FastTableVariant reports which table-driven cosine implementation is
// cheapest to use on the current CPU. The fast-table approximation itself
// is the same plain-Go code path regardless of the answer; this exists so
// callers that care can log/report it, the same way the teacher consults
// golang.org/x/sys/cpu before choosing an arch-specific code path for its
// IMDCT rather than silently hard-coding one option.
func FastTableVariant() string {
	switch {
	case cpu.X86.HasAVX2:
		return "table/avx2-host"
	case cpu.ARM64.HasASIMD:
		return "table/neon-host"
	default:
		return "table/generic"
	}
}

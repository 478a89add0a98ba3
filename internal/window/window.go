// Package window computes the MDCT analysis/synthesis envelope used by
// both the encoder and decoder. It must produce bit-identical values on
// both sides for a given Shim, since the envelope is never transmitted —
// only the window Mode is, and both sides recompute the window from it.
package window

import "github.com/logicomacorp/pulsejet/internal/mathshim"

// Mode selects one of the four MDCT window shapes. The numeric values
// match the single byte stored per frame in the windowMode stream.
type Mode uint8

const (
	Long  Mode = 0
	Short Mode = 1
	Start Mode = 2
	Stop  Mode = 3
)

func (m Mode) String() string {
	switch m {
	case Long:
		return "long"
	case Short:
		return "short"
	case Start:
		return "start"
	case Stop:
		return "stop"
	default:
		return "invalid"
	}
}

// vorbis computes sin(pi/2 * sin^2(pi/size * nPlusHalf)), the Vorbis-style
// sine-of-sine window shared by the Long/Short shapes and spliced into the
// Start/Stop shapes.
func vorbis(shim mathshim.Shim, nPlusHalf float32, size uint32) float32 {
	sine := shim.Sin(float32(piOverSize(size)) * nPlusHalf)
	return shim.Sin(halfPi * sine * sine)
}

// piOverSize avoids repeating the pi/size division pattern at call sites;
// kept as a plain float64->float32 computation since it is not itself a
// call into the injected Shim.
func piOverSize(size uint32) float64 {
	return float64(pi) / float64(size)
}

const (
	pi     = 3.14159265358979323846
	halfPi = float32(pi / 2)
)

// Envelope computes the window value for sample position n (0-based) of a
// subframe of the given size and mode, per the four cases in the format's
// window-function definition.
func Envelope(shim mathshim.Shim, n, size, longWindowSize, shortWindowSize uint32, mode Mode) float32 {
	nPlusHalf := float32(n) + 0.5

	switch mode {
	case Start:
		off := longWindowSize*3/4 - shortWindowSize/4
		switch {
		case n >= off+shortWindowSize/2:
			return 0
		case n >= off:
			return 1 - vorbis(shim, nPlusHalf-float32(off), shortWindowSize)
		case n >= longWindowSize/2:
			return 1
		}
	case Stop:
		off := longWindowSize/4 - shortWindowSize/4
		switch {
		case n < off:
			return 0
		case n < off+shortWindowSize/2:
			return vorbis(shim, nPlusHalf-float32(off), shortWindowSize)
		case n < longWindowSize/2:
			return 1
		}
	}
	return vorbis(shim, nPlusHalf, size)
}

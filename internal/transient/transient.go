// Package transient detects energy transients between frames and plans
// the per-frame window mode (Long/Short/Start/Stop) the encoder uses.
// Frame-energy analysis and the planning rules mirror the encoder path of
// the reference implementation; the decoder never runs this package — it
// reads window modes verbatim from the bitstream.
package transient

import "github.com/logicomacorp/pulsejet/internal/window"

// EnergyRatioThreshold is the frame-over-previous-frame energy ratio that
// marks a frame as transient.
const EnergyRatioThreshold = 2.0

// DetectFrames computes, for each frame, whether its energy is at least
// EnergyRatioThreshold times the previous frame's energy. The first frame
// is compared against a zero predecessor, so it is always transient, even
// when its own energy is zero.
func DetectFrames(frameEnergy []float32) []bool {
	isTransient := make([]bool, len(frameEnergy))
	var last float32
	for i, e := range frameEnergy {
		isTransient[i] = e >= last*EnergyRatioThreshold
		last = e
	}
	return isTransient
}

// PlanWindowModes derives the per-frame window mode from the transient map
// and a target bit rate. At or below 8.0 kbps, every frame is Long
// regardless of transients (low rates can't afford the short-window
// overhead). Otherwise a Short run is always flanked by Start before and
// Stop after, unless both neighbours are themselves Short.
func PlanWindowModes(isTransient []bool, targetBitRate float64) []window.Mode {
	modes := make([]window.Mode, len(isTransient))
	if targetBitRate <= 8.0 {
		for i := range modes {
			modes[i] = window.Long
		}
		return modes
	}
	for i, t := range isTransient {
		prevTransient := i > 0 && isTransient[i-1]
		nextTransient := i < len(isTransient)-1 && isTransient[i+1]
		switch {
		case t || (prevTransient && nextTransient):
			modes[i] = window.Short
		case nextTransient:
			modes[i] = window.Start
		case prevTransient:
			modes[i] = window.Stop
		default:
			modes[i] = window.Long
		}
	}
	return modes
}

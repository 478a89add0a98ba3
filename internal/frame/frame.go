// Package frame centralizes the per-frame subframe geometry so the
// encoder and decoder drivers cannot drift apart: both sides derive
// numSubframes, the subframe window offset, and the subframe window size
// from nothing but the window mode.
package frame

import "github.com/logicomacorp/pulsejet/internal/window"

// Size constants forming the codec's fixed contract.
const (
	Size                    = 1024               // samples per frame
	NumShortWindowsPerFrame = 8
	LongWindowSize          = Size * 2                            // 2048
	ShortWindowSize         = LongWindowSize / NumShortWindowsPerFrame // 256
)

// Geometry holds the subframe layout derived from a single frame's window
// mode.
type Geometry struct {
	NumSubframes         uint32
	SubframeWindowOffset uint32
	SubframeWindowSize   uint32
}

// Plan derives the subframe geometry for a frame's window mode.
func Plan(mode window.Mode) Geometry {
	if mode == window.Short {
		return Geometry{
			NumSubframes:         NumShortWindowsPerFrame,
			SubframeWindowOffset: LongWindowSize/4 - ShortWindowSize/4,
			SubframeWindowSize:   ShortWindowSize,
		}
	}
	return Geometry{
		NumSubframes:         1,
		SubframeWindowOffset: 0,
		SubframeWindowSize:   LongWindowSize,
	}
}

// SubframeSize is half the subframe window size (the number of MDCT bins
// / time-domain samples produced by one subframe's transform).
func (g Geometry) SubframeSize() uint32 { return g.SubframeWindowSize / 2 }

// WindowOffset returns the sample offset (within the frame's window
// region) of subframe i.
func (g Geometry) WindowOffset(i uint32) uint32 {
	return g.SubframeWindowOffset + i*g.SubframeSize()
}

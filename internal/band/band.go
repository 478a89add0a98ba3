// Package band defines the fixed perceptual band partition of the 1024
// MDCT bins of a long window, and the per-band bin quantization scale
// bases used by the rate controller.
package band

// NumBands is the number of perceptual bands a long subframe's spectrum is
// partitioned into.
const NumBands = 20

// NumTotalBins is the total number of MDCT bins carried per frame,
// Σ ToNumBins. The remaining bins up to a subframe's full size (up to
// LongWindowSize/2 = 1024) are neither transmitted nor reconstructed.
const NumTotalBins = 856

// ToNumBins gives, for each band, the number of long-window MDCT bins it
// spans. Every entry is divisible by 8 (the number of short subframes per
// frame), so short subframes always get an integer per-band bin count.
var ToNumBins = [NumBands]uint32{
	8, 8, 8, 8, 8, 8, 8, 8, 16, 16, 24, 32, 32, 40, 48, 64, 80, 120, 144, 176,
}

// BinQuantizeScaleBases weights each band's contribution to the bin
// quantization scale (§4.5 step 3); bands with more low-frequency content
// (lower index) get a larger base and thus a finer quantization (more
// quantization levels per bin).
var BinQuantizeScaleBases = [NumBands]uint32{
	200, 200, 200, 200, 200, 200, 200, 200,
	198, 193, 188, 183, 178, 173, 168, 163, 158, 153, 148, 129,
}

// BinsPerSubframe returns, for band b, the number of bins carried by a
// single subframe when a frame is split into numSubframes subframes
// (1 for Long/Start/Stop, 8 for Short).
func BinsPerSubframe(b int, numSubframes uint32) uint32 {
	return ToNumBins[b] / numSubframes
}

package quant

import (
	"github.com/logicomacorp/pulsejet/internal/band"
	"github.com/logicomacorp/pulsejet/internal/mathshim"
)

// LCG is the decoder's deterministic pseudo-random noise-fill generator.
// It uses the Numerical Recipes linear congruential parameters and must
// be reset (a fresh zero-value LCG) at the start of every Decode call so
// that decoding the same bytes twice yields identical output.
type LCG struct {
	state uint32
}

// NoiseSample returns the current noise sample (in [-1, 1], quantized to
// 1/127ths) without advancing the generator.
func (l *LCG) NoiseSample() float32 {
	return float32(int8(l.state>>16)) / 127
}

// Advance transitions the generator state.
func (l *LCG) Advance() {
	l.state = l.state*1664525 + 1013904223
}

// noiseFillThreshold is the nonzero-bin ratio below which a band is
// considered sparse enough to warrant synthetic flat-spectrum fill.
const noiseFillThreshold = 0.1

// ReconstructSubframe rebuilds a subframe's normalized MDCT bins from its
// transmitted bin quanta and band-energy residuals: it applies noise fill
// to sparse bands, reconstructs each band's absolute quantized energy
// from the running prediction, and rescales each band's bins to match
// that energy. predictions is mutated in place to carry forward to the
// next subframe.
func ReconstructSubframe(shim mathshim.Shim, binQ []int8, bandEnergyResiduals []uint8, predictions []uint8, numSubframes uint32, lcg *LCG) []float32 {
	bins := make([]float32, len(binQ))

	offset := 0
	for b := 0; b < band.NumBands; b++ {
		numBins := int(band.BinsPerSubframe(b, numSubframes))
		bandBins := bins[offset : offset+numBins]

		numNonzero := 0
		for i := 0; i < numBins; i++ {
			q := binQ[offset+i]
			if q != 0 {
				numNonzero++
			}
			bandBins[i] = float32(q)
		}

		binFill := float32(numNonzero) / float32(numBins)
		if binFill < noiseFillThreshold {
			sparsity := (noiseFillThreshold - binFill) / noiseFillThreshold
			gain := sparsity * sparsity
			for i := 0; i < numBins; i++ {
				bandBins[i] += lcg.NoiseSample() * gain
				lcg.Advance()
			}
		}

		residual := bandEnergyResiduals[b]
		quantizedBandEnergy := predictions[b] + residual
		predictions[b] = quantizedBandEnergy
		bandEnergy := shim.Exp2(float32(quantizedBandEnergy)/64*40-20) * float32(numBins)

		var sumSq float32
		for _, x := range bandBins {
			sumSq += x * x
		}
		bandBinEnergy := shim.Sqrt(Epsilon + sumSq)
		binScale := bandEnergy / bandBinEnergy
		for i := range bandBins {
			bandBins[i] *= binScale
		}

		offset += numBins
	}
	return bins
}

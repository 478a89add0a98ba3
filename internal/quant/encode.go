// Package quant implements the per-band energy quantization/prediction,
// per-bin amplitude quantization, the order-0 entropy estimator used as a
// cheap proxy for post-compression bit cost, and the exhaustive
// scaling-factor rate controller that ties them together.
package quant

import (
	"math"
	"runtime"
	"sync"

	"github.com/logicomacorp/pulsejet/internal/band"
	"github.com/logicomacorp/pulsejet/internal/mathshim"
)

// Epsilon guards every log2/sqrt/division in the quantizer against a
// zero argument.
const Epsilon = 1e-27

// MinScalingFactor and MaxScalingFactor bound the encoder's exhaustive
// per-subframe search.
const (
	MinScalingFactor = 1
	MaxScalingFactor = 500
)

// EstimateAdjustment discounts the raw order-0 entropy estimate to
// account for correlations a downstream general-purpose compressor tends
// to find but this simple model does not.
const EstimateAdjustment = 0.83

// Candidate is one scaling-factor trial's output: the per-band quantized
// energies (needed to seed next subframe's predictions), the residual and
// bin-quantum streams that would be appended to the container, and the
// adjusted bits estimate used to pick a winner.
type Candidate struct {
	QuantizedBandEnergies []uint8
	BandEnergyResiduals   []uint8
	BinQ                  []int8
	BitsEstimate          float64
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// encodeCandidate computes one scaling-factor trial's quantized streams
// for a subframe's windowed MDCT bins.
func encodeCandidate(shim mathshim.Shim, bins []float32, numSubframes, scalingFactor uint32, predictions []uint8) Candidate {
	c := Candidate{
		QuantizedBandEnergies: make([]uint8, band.NumBands),
		BandEnergyResiduals:   make([]uint8, band.NumBands),
		BinQ:                  make([]int8, 0, len(bins)),
	}

	offset := 0
	for b := 0; b < band.NumBands; b++ {
		numBins := int(band.BinsPerSubframe(b, numSubframes))
		bandBins := bins[offset : offset+numBins]

		var sumSq float32
		for _, x := range bandBins {
			sumSq += x * x
		}
		bandEnergy := shim.Sqrt(Epsilon + sumSq)

		linear := (clampF(log2Of(shim, bandEnergy/float32(numBins)), -20, 20) + 20) / 40
		quantizedBandEnergy := uint8(roundHalfAwayFromZero(linear * 64))
		c.QuantizedBandEnergies[b] = quantizedBandEnergy
		c.BandEnergyResiduals[b] = quantizedBandEnergy - predictions[b]

		binQuantizeScale := cube(float32(band.BinQuantizeScaleBases[b])/200) *
			(float32(scalingFactor) / float32(MaxScalingFactor)) * 127 * linear * linear

		for _, x := range bandBins {
			q := roundHalfAwayFromZero(x / (bandEnergy + Epsilon) * binQuantizeScale)
			c.BinQ = append(c.BinQ, clampInt8(q))
		}

		offset += numBins
	}
	return c
}

func cube(x float32) float32 { return x * x * x }

func log2Of(shim mathshim.Shim, x float32) float32 {
	// log2(x) = ln(x)/ln(2); the shim only exposes exp2, so invert it via
	// stdlib math.Log2 on the float32->float64 promoted value. This mirrors
	// how the reference implementation itself reaches for libm's log2f
	// directly rather than routing it through the shim (only cos/sin/exp2/
	// sqrt are injected primitives).
	return float32(math.Log2(float64(x)))
}

func roundHalfAwayFromZero(x float32) int32 {
	if x >= 0 {
		return int32(math.Floor(float64(x) + 0.5))
	}
	return int32(math.Ceil(float64(x) - 0.5))
}

func clampInt8(v int32) int8 {
	if v < -128 {
		return -128
	}
	if v > 127 {
		return 127
	}
	return int8(v)
}

// SearchScale performs the exhaustive scaling-factor search: for every
// candidate scaling factor in [MinScalingFactor, MaxScalingFactor], it
// quantizes the subframe, estimates its adjusted bit cost, and returns the
// candidate whose cost is closest to targetBitsWithSlack. Ties are broken
// by the lowest scaling factor (the original comparison uses a strict
// "<", so later equal-or-worse candidates never replace an earlier one).
//
// Candidate evaluation is embarrassingly parallel — each candidate only
// depends on bins, numSubframes, and predictions, none of which change
// during the search — so it is spread across a bounded worker pool. The
// reduction step scans candidates back in increasing scaling-factor order
// to preserve the documented tie-break bit-exactly.
func SearchScale(shim mathshim.Shim, bins []float32, numSubframes uint32, predictions []uint8, targetBitsWithSlack float64) Candidate {
	const n = MaxScalingFactor - MinScalingFactor + 1
	results := make([]Candidate, n)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	work := make(chan int, n)
	for i := 0; i < n; i++ {
		work <- i
	}
	close(work)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				scalingFactor := uint32(MinScalingFactor + i)
				results[i] = encodeCandidate(shim, bins, numSubframes, scalingFactor, predictions)
				results[i].BitsEstimate = (Order0BitsEstimate(results[i].BandEnergyResiduals) +
					Order0BitsEstimate(results[i].BinQ)) * EstimateAdjustment
			}
		}()
	}
	wg.Wait()

	best := results[0]
	bestDist := math.Abs(best.BitsEstimate - targetBitsWithSlack)
	for i := 1; i < n; i++ {
		dist := math.Abs(results[i].BitsEstimate - targetBitsWithSlack)
		if dist < bestDist {
			best = results[i]
			bestDist = dist
		}
	}
	return best
}

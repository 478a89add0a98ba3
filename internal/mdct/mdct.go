// Package mdct implements the direct (non-FFT) forward and inverse
// modified discrete cosine transform the codec's bitstream is defined in
// terms of. A faster transform is numerically permissible as long as it
// reproduces the same values to within float precision, but this format's
// reference implementation and byte-identical test corpus are both built
// against the O(N*M) direct sum, so that is what is implemented here.
package mdct

import "github.com/logicomacorp/pulsejet/internal/mathshim"

// Forward computes the MDCT of windowed time-domain samples w (length S)
// into frequency-domain bins X (length M = S/2):
//
//	X[k] = sum_n w[n] * cos(pi/M * (n + 0.5 + M/2) * (k + 0.5))
func Forward(shim mathshim.Shim, w []float32) []float32 {
	s := len(w)
	m := s / 2
	x := make([]float32, m)
	piOverM := pi32 / float32(m)
	half := float32(m / 2)
	for k := 0; k < m; k++ {
		var bin float32
		kTerm := float32(k) + 0.5
		for n := 0; n < s; n++ {
			angle := piOverM * (float32(n) + 0.5 + half) * kTerm
			bin += w[n] * shim.Cos(angle)
		}
		x[k] = bin
	}
	return x
}

// Inverse computes the IMDCT of frequency-domain bins X (length M) into
// time-domain samples y (length S = 2*M):
//
//	y[n] = sum_k (2/M) * X[k] * cos(pi/M * (n + 0.5 + M/2) * (k + 0.5))
func Inverse(shim mathshim.Shim, x []float32) []float32 {
	m := len(x)
	s := m * 2
	y := make([]float32, s)
	piOverM := pi32 / float32(m)
	half := float32(m / 2)
	scale := float32(2) / float32(m)
	for n := 0; n < s; n++ {
		nTerm := float32(n) + 0.5 + half
		var sample float32
		for k := 0; k < m; k++ {
			angle := piOverM * nTerm * (float32(k) + 0.5)
			sample += scale * x[k] * shim.Cos(angle)
		}
		y[n] = sample
	}
	return y
}

const pi32 = 3.14159265358979323846

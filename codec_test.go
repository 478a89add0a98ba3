package pulsejet

import (
	"math"
	"testing"

	"github.com/logicomacorp/pulsejet/internal/mathshim"
)

func sineWave(n int, sampleRate, freq float64) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(math.Sin(2 * math.Pi * freq * float64(i) / sampleRate))
	}
	return out
}

func TestEncodeDecodeRoundTripLength(t *testing.T) {
	const sampleRate = 44100.0
	samples := sineWave(4096, sampleRate, 440)

	encoded, bitsEstimate := Encode(samples, sampleRate, 64)
	if len(encoded) == 0 {
		t.Fatal("Encode returned empty output")
	}
	if bitsEstimate <= 0 {
		t.Errorf("bitsEstimate = %v, want > 0", bitsEstimate)
	}
	if !CheckSample(encoded) {
		t.Fatal("CheckSample(encoded) = false, want true")
	}
	if !CheckSampleVersion(encoded) {
		t.Fatal("CheckSampleVersion(encoded) = false, want true")
	}

	decoded := Decode(encoded)
	// The frame count is rounded up, so output length is a whole number
	// of frames covering at least the input.
	if len(decoded) < len(samples) {
		t.Errorf("len(decoded) = %d, want >= %d", len(decoded), len(samples))
	}
}

func TestEncodeDecodeRoundTripRecoversEnergy(t *testing.T) {
	const sampleRate = 44100.0
	samples := sineWave(4096, sampleRate, 440)

	encoded, _ := Encode(samples, sampleRate, 128)
	decoded := Decode(encoded)

	var inEnergy, outEnergy float64
	for _, s := range samples {
		inEnergy += float64(s) * float64(s)
	}
	for i := 0; i < len(samples); i++ {
		outEnergy += float64(decoded[i]) * float64(decoded[i])
	}
	if outEnergy <= 0 {
		t.Fatalf("decoded energy = %v, want > 0", outEnergy)
	}
	ratio := outEnergy / inEnergy
	if ratio < 0.1 || ratio > 10 {
		t.Errorf("decoded/input energy ratio = %v, want within an order of magnitude of 1", ratio)
	}
}

func TestEncodeDecodeSilence(t *testing.T) {
	const sampleRate = 44100.0
	samples := make([]float32, 2048)

	encoded, _ := Encode(samples, sampleRate, 64)
	decoded := Decode(encoded)
	for i, s := range decoded[:len(samples)] {
		// Every band is maximally sparse, so noise fill plus rescaling by
		// the tiny reconstructed floor energy leaves a negligible but
		// nonzero residual rather than bit-exact zero.
		if math.Abs(float64(s)) >= 1e-4 {
			t.Fatalf("decoded[%d] = %v, want magnitude < 1e-4 for silent input", i, s)
		}
	}
}

func TestEncodeLowBitRateForcesLongWindows(t *testing.T) {
	const sampleRate = 44100.0
	samples := sineWave(4096, sampleRate, 440)
	// A low enough target bit rate should still round-trip without error.
	encoded, _ := Encode(samples, sampleRate, 4)
	if !CheckSample(encoded) {
		t.Fatal("CheckSample(encoded) = false, want true")
	}
	Decode(encoded)
}

func TestSamplesFromBytesRoundTrip(t *testing.T) {
	samples := []float32{1, -1, 0.5, -0.25, 0}
	b := BytesFromSamples(samples)
	got, err := SamplesFromBytes(b)
	if err != nil {
		t.Fatalf("SamplesFromBytes: %v", err)
	}
	if len(got) != len(samples) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(samples))
	}
	for i := range samples {
		if got[i] != samples[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], samples[i])
		}
	}
}

func TestSamplesFromBytesUnaligned(t *testing.T) {
	_, err := SamplesFromBytes([]byte{1, 2, 3})
	if err != ErrInputSizeUnaligned {
		t.Errorf("err = %v, want ErrInputSizeUnaligned", err)
	}
}

func TestWithMathShimOverride(t *testing.T) {
	const sampleRate = 44100.0
	samples := sineWave(1024, sampleRate, 220)
	shim := mathshim.NewFastTable()
	encoded, _ := Encode(samples, sampleRate, 64, WithMathShim(shim))
	if !CheckSample(encoded) {
		t.Fatal("CheckSample(encoded) = false, want true")
	}
	Decode(encoded, WithMathShim(shim))
}

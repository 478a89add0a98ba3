package pulsejet

import (
	"github.com/logicomacorp/pulsejet/container"
	"github.com/logicomacorp/pulsejet/internal/band"
	"github.com/logicomacorp/pulsejet/internal/frame"
	"github.com/logicomacorp/pulsejet/internal/mdct"
	"github.com/logicomacorp/pulsejet/internal/quant"
	"github.com/logicomacorp/pulsejet/internal/transient"
	"github.com/logicomacorp/pulsejet/internal/window"
)

// Encode encodes a single-channel float32 PCM sample stream into a
// container byte sequence, along with an estimate (in bits) of the total
// encoded size before downstream general-purpose compression.
//
// sampleRate is in Hz; pulsejet's psychoacoustics are tuned to 44100Hz,
// but other rates are accepted. targetBitRate is in kilobits per second;
// there is no enforced bound, but the format plateaus in practice around
// 128kbps. ~64kbps is typically transparent; rates below 16kbps depend
// heavily on material.
//
// Encode always succeeds: unlike the original C++ API, it takes
// pre-decoded float32 samples, so there is no byte-alignment check to
// fail. Use SamplesFromBytes when starting from a raw byte buffer.
func Encode(samples []float32, sampleRate, targetBitRate float64, opts ...Option) ([]byte, float64) {
	shim := resolveShim(opts)

	targetBitsPerFrame := targetBitRate * 1000 * (float64(frame.Size) / sampleRate)

	numFrames := (len(samples) + frame.Size - 1) / frame.Size
	totalFrames := numFrames + 1
	numSamples := totalFrames * frame.Size
	numPadded := numSamples + 2*frame.Size

	padded := make([]float32, numPadded)
	copy(padded[frame.Size:], samples)
	for i := 0; i < frame.Size; i++ {
		padded[frame.Size-1-i] = padded[frame.Size+i]
		padded[numPadded-frame.Size+i] = padded[numPadded-frame.Size-1-i]
	}

	frameEnergy := make([]float32, totalFrames)
	for f := 0; f < totalFrames; f++ {
		offset := frame.Size/2 + f*frame.Size
		var energy float32
		for i := 0; i < frame.Size; i++ {
			s := padded[offset+i]
			energy += s * s
		}
		frameEnergy[f] = energy
	}
	isTransient := transient.DetectFrames(frameEnergy)
	windowModes := transient.PlanWindowModes(isTransient, targetBitRate)

	predictions := make([]uint8, band.NumBands)
	var slackBits float64
	var totalBitsEstimate float64

	windowModeStream := make([]byte, totalFrames)
	binQStream := make([]byte, 0, totalFrames*band.NumTotalBins)
	bandEnergyStream := make([]byte, 0, totalFrames*band.NumBands)

	for f := 0; f < totalFrames; f++ {
		mode := windowModes[f]
		windowModeStream[f] = byte(mode)
		geom := frame.Plan(mode)
		targetBitsPerSubframe := targetBitsPerFrame / float64(geom.NumSubframes)
		frameOffset := f * frame.Size

		for i := uint32(0); i < geom.NumSubframes; i++ {
			windowOffset := geom.WindowOffset(i)
			windowed := make([]float32, geom.SubframeWindowSize)
			for n := uint32(0); n < geom.SubframeWindowSize; n++ {
				s := padded[uint32(frameOffset)+windowOffset+n]
				w := window.Envelope(shim, n, geom.SubframeWindowSize, frame.LongWindowSize, frame.ShortWindowSize, mode)
				windowed[n] = s * w
			}

			bins := mdct.Forward(shim, windowed)

			targetWithSlack := targetBitsPerSubframe + slackBits
			best := quant.SearchScale(shim, bins, geom.NumSubframes, predictions, targetWithSlack)

			copy(predictions, best.QuantizedBandEnergies)
			bandEnergyStream = append(bandEnergyStream, best.BandEnergyResiduals...)
			for _, q := range best.BinQ {
				binQStream = append(binQStream, byte(q))
			}

			slackBits += targetBitsPerSubframe - best.BitsEstimate
			totalBitsEstimate += best.BitsEstimate
		}
	}

	header := container.Header{
		VersionMajor: container.CodecVersionMajor,
		VersionMinor: container.CodecVersionMinor,
		NumFrames:    uint16(numFrames),
	}
	out := container.Write(header, windowModeStream, binQStream, bandEnergyStream)
	return out, totalBitsEstimate
}

// Decode decodes a pulsejet container byte sequence into float32 PCM
// samples.
//
// Decode performs no validation of data: it trusts the container's frame
// count and stream lengths completely, by design, to keep the decoder
// minimal. Malformed or undersized input produces undefined output, not
// a panic from within the decode loop as long as data is at least
// container.HeaderSize bytes and its streams are at least as long as the
// header implies — callers that cannot guarantee this should use
// DecodeChecked, or validate with CheckSample/CheckSampleVersion first.
func Decode(data []byte, opts ...Option) []float32 {
	shim := resolveShim(opts)

	sample := container.Read(data)
	numOutputSamples := int(sample.Header.NumFrames) * frame.Size
	totalFrames := int(sample.Header.NumFrames) + 1
	numPadded := totalFrames*frame.Size + 2*frame.Size

	paddedOut := make([]float32, numPadded)
	predictions := make([]uint8, band.NumBands)
	lcg := &quant.LCG{}

	binQOffset := 0
	bandEnergyOffset := 0

	for f := 0; f < totalFrames; f++ {
		mode := window.Mode(sample.WindowModeStream[f])
		geom := frame.Plan(mode)
		subframeBinCount := int(band.NumTotalBins) / int(geom.NumSubframes)
		frameOffset := f * frame.Size

		for i := uint32(0); i < geom.NumSubframes; i++ {
			binQBytes := sample.BinQStream[binQOffset : binQOffset+subframeBinCount]
			binQ := make([]int8, subframeBinCount)
			for k, b := range binQBytes {
				binQ[k] = int8(b)
			}
			binQOffset += subframeBinCount

			bandEnergyResiduals := sample.BandEnergyStream[bandEnergyOffset : bandEnergyOffset+band.NumBands]
			bandEnergyOffset += band.NumBands

			reconstructed := quant.ReconstructSubframe(shim, binQ, bandEnergyResiduals, predictions, geom.NumSubframes, lcg)

			windowBins := make([]float32, geom.SubframeSize())
			copy(windowBins, reconstructed)

			y := mdct.Inverse(shim, windowBins)

			windowOffset := geom.WindowOffset(i)
			for n := uint32(0); n < geom.SubframeWindowSize; n++ {
				w := window.Envelope(shim, n, geom.SubframeWindowSize, frame.LongWindowSize, frame.ShortWindowSize, mode)
				paddedOut[uint32(frameOffset)+windowOffset+n] += y[n] * w
			}
		}
	}

	out := make([]float32, numOutputSamples)
	copy(out, paddedOut[frame.Size:frame.Size+numOutputSamples])
	return out
}

// SamplesFromBytes reinterprets a little-endian raw float32 buffer as PCM
// samples, the conversion the CLI performs on a raw input file before
// calling Encode. It returns ErrInputSizeUnaligned if len(data) is not a
// multiple of 4 — the one recoverable error condition on the encode side.
func SamplesFromBytes(data []byte) ([]float32, error) {
	if len(data)%4 != 0 {
		return nil, ErrInputSizeUnaligned
	}
	samples := make([]float32, len(data)/4)
	for i := range samples {
		samples[i] = float32FromLE(data[i*4 : i*4+4])
	}
	return samples, nil
}

// BytesFromSamples is the inverse of SamplesFromBytes, used by the CLI to
// write decoded output back out as raw float32 PCM.
func BytesFromSamples(samples []float32) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		putFloat32LE(out[i*4:i*4+4], s)
	}
	return out
}

func float32FromLE(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return float32FromBits(bits)
}

func putFloat32LE(b []byte, v float32) {
	bits := float32Bits(v)
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}

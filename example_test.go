package pulsejet_test

import (
	"fmt"
	"math"

	"github.com/logicomacorp/pulsejet"
)

func ExampleEncode() {
	// 20ms of 440Hz tone at 44.1kHz.
	const sampleRate = 44100.0
	samples := make([]float32, 882)
	for i := range samples {
		samples[i] = float32(math.Sin(2 * math.Pi * 440 * float64(i) / sampleRate))
	}

	encoded, _ := pulsejet.Encode(samples, sampleRate, 64)

	fmt.Printf("tag ok: %v\n", pulsejet.CheckSample(encoded))
	// Output: tag ok: true
}

func ExampleDecode() {
	const sampleRate = 44100.0
	samples := make([]float32, 882)
	encoded, _ := pulsejet.Encode(samples, sampleRate, 64)

	decoded := pulsejet.Decode(encoded)

	fmt.Printf("decoded at least as many samples as encoded: %v\n", len(decoded) >= len(samples))
	// Output: decoded at least as many samples as encoded: true
}

func Example_roundTrip() {
	const sampleRate = 44100.0
	input := make([]float32, 2048)
	for i := range input {
		input[i] = float32(math.Sin(float64(i) * 0.02))
	}

	encoded, _ := pulsejet.Encode(input, sampleRate, 96)
	output, err := pulsejet.DecodeChecked(encoded)
	if err != nil {
		fmt.Println("decode failed:", err)
		return
	}

	fmt.Printf("round trip produced output: %v\n", len(output) > 0)
	// Output: round trip produced output: true
}

func ExampleCodecVersionString() {
	fmt.Println(pulsejet.CodecVersionString())
	// Output: pulsejet v0.1
}

func ExampleSamplesFromBytes() {
	raw := pulsejet.BytesFromSamples([]float32{0, 0.5, -0.5, 1})
	samples, err := pulsejet.SamplesFromBytes(raw)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(samples)
	// Output: [0 0.5 -0.5 1]
}

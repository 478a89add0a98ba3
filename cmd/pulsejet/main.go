// Command pulsejet is a thin CLI wrapper around the pulsejet library:
// encode a raw little-endian float32 PCM file to a pulsejet sample, or
// decode a pulsejet sample back to raw float32 PCM. It sits outside the
// library — the library itself has no file I/O or CLI surface.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/logicomacorp/pulsejet"
	"github.com/logicomacorp/pulsejet/internal/mathshim"
)

// sampleRate is fixed at 44100Hz: pulsejet's psychoacoustics are tuned to
// that rate, and the CLI (unlike the library) does not expose a way to
// override it.
const sampleRate = 44100.0

func usage(prog string) {
	fmt.Printf("Usage:\n")
	fmt.Printf("  encode: %s -e <target bit rate in kbps> <in.raw> <out.pulsejet>\n", prog)
	fmt.Printf("  decode: %s -d <in.pulsejet> <out.raw>\n", prog)
}

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) < 4 {
		fmt.Println("ERROR: Invalid args")
		fmt.Println()
		usage(args[0])
		return 1
	}

	fmt.Printf("library version: %s\n", pulsejet.LibraryVersionString())
	fmt.Printf("codec version: %s\n", pulsejet.CodecVersionString())
	fmt.Printf("fast math variant: %s\n", mathshim.FastTableVariant())

	switch args[1] {
	case "-e":
		if len(args) != 5 {
			fmt.Println("ERROR: Invalid args")
			fmt.Println()
			usage(args[0])
			return 1
		}
		return runEncode(args[2], args[3], args[4])
	case "-d":
		if len(args) != 4 {
			fmt.Println("ERROR: Invalid args")
			fmt.Println()
			usage(args[0])
			return 1
		}
		return runDecode(args[2], args[3])
	default:
		fmt.Println("ERROR: Invalid args")
		fmt.Println()
		usage(args[0])
		return 1
	}
}

func runEncode(bitrateArg, inputPath, outputPath string) int {
	targetBitRate, err := strconv.ParseFloat(bitrateArg, 64)
	if err != nil {
		fmt.Printf("ERROR: Invalid target bit rate %q\n\n", bitrateArg)
		return 1
	}

	fmt.Print("reading ... ")
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Printf("ERROR: %v\n\n", err)
		return 1
	}
	fmt.Println("ok")

	fmt.Print("size check ... ")
	samples, err := pulsejet.SamplesFromBytes(raw)
	if err != nil {
		fmt.Println("ERROR: Input size is not aligned to float size")
		fmt.Println()
		return 1
	}
	fmt.Println("ok")

	fmt.Print("encoding ... ")
	encoded, totalBitsEstimate := pulsejet.Encode(samples, sampleRate, targetBitRate)
	bitRateEstimate := totalBitsEstimate / 1000.0 / (float64(len(samples)) / sampleRate)
	compressedSizeEstimate := uint32((totalBitsEstimate + 7) / 8)
	fmt.Printf("ok, compressed size estimate: %d byte(s) (~%.4gkbps)\n", compressedSizeEstimate, bitRateEstimate)

	fmt.Print("writing ... ")
	if err := os.WriteFile(outputPath, encoded, 0o644); err != nil {
		fmt.Printf("ERROR: %v\n\n", err)
		return 1
	}
	fmt.Println("ok")

	fmt.Println("encoding successful!")
	return 0
}

func runDecode(inputPath, outputPath string) int {
	fmt.Print("reading ... ")
	input, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Printf("ERROR: %v\n\n", err)
		return 1
	}
	fmt.Println("ok")

	fmt.Print("sample check ... ")
	if !pulsejet.CheckSample(input) {
		fmt.Println("ERROR: Input is not a pulsejet sample")
		fmt.Println()
		return 1
	}
	fmt.Println("ok")

	fmt.Printf("sample version: %s\n", pulsejet.SampleVersionString(input))
	fmt.Print("sample version check ... ")
	if !pulsejet.CheckSampleVersion(input) {
		fmt.Println("ERROR: Incompatible codec and sample versions")
		fmt.Println()
		return 1
	}
	fmt.Println("ok")

	fmt.Print("decoding ... ")
	decoded := pulsejet.Decode(input)
	fmt.Printf("ok, %d samples\n", len(decoded))

	fmt.Print("writing ... ")
	if err := os.WriteFile(outputPath, pulsejet.BytesFromSamples(decoded), 0o644); err != nil {
		fmt.Printf("ERROR: %v\n\n", err)
		return 1
	}
	fmt.Println("ok")

	fmt.Println("decoding successful!")
	return 0
}

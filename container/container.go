// Package container implements the fixed pulsejet sample layout: a
// 10-byte header followed by three concatenated byte streams
// (windowMode, binQ, bandEnergy). It has no dependency on the DSP
// pipeline and can be used on its own to inspect a sample's frame count
// without decoding it.
package container

import "encoding/binary"

// Tag is the 4-byte ASCII marker every pulsejet sample begins with.
const Tag = "PLSJ"

// CodecVersionMajor/Minor are the fixed codec version carried in every
// header. Major version gates decoder compatibility; minor version
// changes are decoder-transparent.
const (
	CodecVersionMajor uint16 = 0
	CodecVersionMinor uint16 = 1
)

// HeaderSize is the fixed number of bytes before the windowMode stream
// begins.
const HeaderSize = 10

// Header is the fixed-size prefix of an encoded sample.
type Header struct {
	VersionMajor uint16
	VersionMinor uint16
	// NumFrames is the header's frame count field: the *original*
	// (pre-"decode one extra frame") count. The number of frames the
	// streams actually carry is NumFrames+1.
	NumFrames uint16
}

// Sample is a fully assembled (but not DSP-decoded) pulsejet container:
// the header plus its three streams, already sliced to their documented
// lengths.
type Sample struct {
	Header           Header
	WindowModeStream []byte
	BinQStream       []byte
	BandEnergyStream []byte
}

// internalFrames is the number of frames the streams carry: one more than
// the header's NumFrames, since both encoder and decoder always process
// one extra (discarded) frame.
func (h Header) internalFrames() int { return int(h.NumFrames) + 1 }

// Write serializes a header and its three streams into the fixed
// container layout. The caller is responsible for the streams being
// exactly the lengths the header's NumFrames implies.
func Write(h Header, windowModeStream, binQStream, bandEnergyStream []byte) []byte {
	out := make([]byte, 0, HeaderSize+len(windowModeStream)+len(binQStream)+len(bandEnergyStream))
	out = append(out, Tag...)
	out = binary.LittleEndian.AppendUint16(out, h.VersionMajor)
	out = binary.LittleEndian.AppendUint16(out, h.VersionMinor)
	out = binary.LittleEndian.AppendUint16(out, h.NumFrames)
	out = append(out, windowModeStream...)
	out = append(out, binQStream...)
	out = append(out, bandEnergyStream...)
	return out
}

// numTotalBins must match internal/band.NumTotalBins; duplicated as a
// plain constant here so this package stays free of a DSP dependency.
const numTotalBins = 856

// bandCount must match internal/band.NumBands; see numTotalBins above.
const bandCount = 20

// CheckTag reports whether data begins with the pulsejet tag, using a
// length-bounded comparison rather than a NUL-terminated string compare
// (the format's own design notes call out the latter as a hazard when the
// caller supplies a shorter buffer than the documented minimum).
func CheckTag(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	return string(data[:4]) == Tag
}

// CheckVersion reports whether data's major version field matches
// CodecVersionMajor. data must be at least 6 bytes; shorter input is
// reported as a version mismatch rather than panicking.
func CheckVersion(data []byte) bool {
	if len(data) < 6 {
		return false
	}
	return binary.LittleEndian.Uint16(data[4:6]) == CodecVersionMajor
}

// ReadHeader parses the fixed 10-byte header. It does not validate the
// tag or version; callers should use CheckTag/CheckVersion first.
func ReadHeader(data []byte) Header {
	return Header{
		VersionMajor: binary.LittleEndian.Uint16(data[4:6]),
		VersionMinor: binary.LittleEndian.Uint16(data[6:8]),
		NumFrames:    binary.LittleEndian.Uint16(data[8:10]),
	}
}

// Read parses a full container: the header plus the three streams, sliced
// to their documented lengths. It performs no bounds checking beyond what
// Go's slicing does: a payload shorter than the header implies makes the
// slicing panic, and a malformed payload of full length yields undefined
// (but not memory-unsafe) output, per the format's decoder contract.
func Read(data []byte) Sample {
	h := ReadHeader(data)
	frames := h.internalFrames()

	windowModeLen := frames
	binQLen := frames * numTotalBins
	bandEnergyLen := frames * bandCount

	off := HeaderSize
	windowModeStream := data[off : off+windowModeLen]
	off += windowModeLen
	binQStream := data[off : off+binQLen]
	off += binQLen
	bandEnergyStream := data[off : off+bandEnergyLen]

	return Sample{
		Header:           h,
		WindowModeStream: windowModeStream,
		BinQStream:       binQStream,
		BandEnergyStream: bandEnergyStream,
	}
}

package pulsejet

import (
	"fmt"

	"github.com/logicomacorp/pulsejet/container"
)

// libraryVersion follows semver (https://semver.org) and is independent
// of the codec version carried in a sample's header.
const libraryVersion = "0.1.0"

// CheckSample reports whether data begins with the pulsejet tag.
//
// Unlike the original C++ implementation (which compares against a
// NUL-terminated string and is documented as unsafe on a buffer shorter
// than the tag), this performs a length-bounded compare: data shorter
// than 4 bytes is reported as not a sample rather than read past the end.
func CheckSample(data []byte) bool {
	return container.CheckTag(data)
}

// CheckSampleVersion reports whether data's major codec version matches
// the version this library decodes. It assumes data represents a
// pulsejet sample; callers should check CheckSample first.
func CheckSampleVersion(data []byte) bool {
	return container.CheckVersion(data)
}

// SampleVersionString returns a human-readable string for the codec
// version embedded in an encoded sample's header, of the form
// "pulsejet v<major>.<minor>". data must be at least container.HeaderSize
// (10) bytes, since the whole header is parsed.
func SampleVersionString(data []byte) string {
	h := container.ReadHeader(data)
	return versionString(h.VersionMajor, h.VersionMinor)
}

// CodecVersionString returns a human-readable string for the codec
// version this library encodes and decodes.
func CodecVersionString() string {
	return versionString(container.CodecVersionMajor, container.CodecVersionMinor)
}

// LibraryVersionString returns a human-readable string for this library's
// own (semver) version, independent of the codec version.
func LibraryVersionString() string {
	return "pulsejet v" + libraryVersion
}

func versionString(major, minor uint16) string {
	return fmt.Sprintf("pulsejet v%d.%d", major, minor)
}

// DecodeChecked validates data's tag and codec version before decoding,
// returning ErrNotASample or ErrIncompatibleVersion instead of decoding
// undefined output. Decode itself performs none of these checks, by
// design; DecodeChecked is the convenience wrapper for callers that want
// them.
func DecodeChecked(data []byte, opts ...Option) ([]float32, error) {
	if !CheckSample(data) {
		return nil, ErrNotASample
	}
	if !CheckSampleVersion(data) {
		return nil, ErrIncompatibleVersion
	}
	return Decode(data, opts...), nil
}

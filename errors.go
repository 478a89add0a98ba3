// errors.go defines public error types for the pulsejet package.

package pulsejet

import "errors"

// Public error types. The decoder itself never returns an error from
// inside the decode loop — it trusts its input completely, by design, to
// stay minimal (see CheckSample/CheckSampleVersion for the metadata
// checks a caller should perform before calling Decode). The only
// recoverable errors are the three below, all caller-side boundary checks.
var (
	// ErrInputSizeUnaligned indicates a raw byte buffer being converted to
	// float32 samples (e.g. by SamplesFromBytes) isn't a multiple of 4
	// bytes long.
	ErrInputSizeUnaligned = errors.New("pulsejet: input byte length is not a multiple of 4")

	// ErrNotASample indicates data does not begin with the pulsejet tag.
	// Returned by DecodeChecked; Decode itself performs no such check.
	ErrNotASample = errors.New("pulsejet: not a pulsejet sample")

	// ErrIncompatibleVersion indicates data's major codec version does not
	// match the version this library decodes. Returned by DecodeChecked.
	ErrIncompatibleVersion = errors.New("pulsejet: incompatible codec version")
)

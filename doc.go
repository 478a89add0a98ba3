// Package pulsejet implements the pulsejet audio codec: a lossy,
// frequency-domain codec for single-channel floating-point PCM tuned for
// very small encoded artifacts (commonly 2-128 kbps), intended for
// size-constrained distribution such as demos, intros, and games.
//
// pulsejet is frame-based. Each 1024-sample frame is analyzed with either
// one long (2048-sample) MDCT window or eight short (256-sample) windows,
// chosen by a transient detector so that percussive material gets the
// short windows' better time resolution. Each window's spectrum is
// partitioned into 20 perceptual bands; each band is quantized to an
// 8-bit energy value (delta-coded against the previous window's energy)
// and its normalized bins are quantized to signed bytes at a scale chosen
// by an exhaustive per-window search against a target bit budget.
//
// pulsejet does not itself entropy-code its output. It is designed to be
// paired with a general-purpose compressor (e.g. deflate, zstd) applied
// to the container bytes; the per-window order-0 entropy estimate computed
// during encoding is only a cheap proxy for what that downstream
// compressor will achieve.
//
// # Container format
//
// An encoded sample is a 10-byte header ("PLSJ" tag, codec version,
// frame count) followed by three concatenated byte streams: one window
// mode byte per internal frame, a flat array of signed bin quanta, and a
// flat array of band-energy residuals. See the container subpackage for
// the exact byte layout.
//
// # Math primitives
//
// The encoder and decoder consume exactly four transcendental primitives
// (cos, sin, exp2, sqrt) through an injected mathshim.Shim rather than
// calling the math package directly, so a caller in a size- or
// speed-constrained environment can substitute a reduced-accuracy
// implementation. See WithMathShim.
package pulsejet

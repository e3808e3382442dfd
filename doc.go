// Package wavefile models the single-fmt, single-data WAV (RIFF/WAVE)
// container and converts it to and from its byte-level layout.
//
// A WaveFile holds the fmt chunk scalars (format tag, channel count, sample
// rate, bit depth) and an owned raw sample payload. Encode assembles the
// canonical 44-byte header plus payload; Decode performs the inverse
// extraction from an existing buffer. Both are pure in-memory
// transformations; file access only happens through the ReadFile/WriteFile
// convenience helpers.
//
// Bridges to the go-audio ecosystem (IntBuffer) and to G.711 companded
// payloads are provided for callers that need to interpret the raw bytes.
package wavefile

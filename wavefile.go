package wavefile

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrMalformedHeader is returned when a required fixed tag or field in
	// the container header does not match the expected WAV layout.
	ErrMalformedHeader = errors.New("malformed wav header")
	// ErrTruncatedData is returned when the declared data chunk size exceeds
	// the bytes available in the input.
	ErrTruncatedData = errors.New("truncated wav data chunk")
	// ErrUnsupportedFormat is returned when an operation needs to interpret
	// the payload but the format tag or bit depth is not supported.
	ErrUnsupportedFormat = errors.New("unsupported wav audio format")
	// ErrInvalidConfig is returned for invalid construction parameters or a
	// payload exceeding the 32-bit RIFF size limit.
	ErrInvalidConfig = errors.New("invalid wav configuration")
)

// AudioFormat is the WAVE format tag stored in the fmt chunk. Values other
// than the named constants are carried opaquely so unrecognized tags survive
// a decode/encode round trip.
type AudioFormat uint16

const (
	// FormatPCM is linear PCM quantization.
	FormatPCM AudioFormat = 1
	// FormatIEEEFloat is IEEE floating point sample encoding.
	FormatIEEEFloat AudioFormat = 3
	// FormatALaw is ITU-T G.711 A-law companded encoding.
	FormatALaw AudioFormat = 6
	// FormatMuLaw is ITU-T G.711 mu-law companded encoding.
	FormatMuLaw AudioFormat = 7
	// FormatExtensible is the WAVE_FORMAT_EXTENSIBLE marker tag.
	FormatExtensible AudioFormat = 0xFFFE
)

// String implements the Stringer interface.
func (f AudioFormat) String() string {
	switch f {
	case FormatPCM:
		return "PCM"
	case FormatIEEEFloat:
		return "IEEE float"
	case FormatALaw:
		return "A-law"
	case FormatMuLaw:
		return "mu-law"
	case FormatExtensible:
		return "extensible"
	default:
		return fmt.Sprintf("format tag %d", uint16(f))
	}
}

// maxDataSize is the largest payload whose RIFF chunk size (36 + payload
// length) still fits in the 32-bit size field.
const maxDataSize = math.MaxUint32 - riffChunkBaseSize

// WaveFile is the in-memory representation of a single-fmt, single-data
// WAVE container: the fmt chunk scalars plus the raw interleaved sample
// payload. The payload is owned exclusively by the WaveFile and is never
// interpreted as waveform data by the codec itself.
type WaveFile struct {
	Format        AudioFormat
	NumChannels   uint16
	SampleRate    uint32
	BitsPerSample uint16

	data []byte
}

// New returns a WaveFile with an empty payload and the given fmt chunk
// scalars. The channel count and sample rate must be at least 1 and the bit
// depth a positive multiple of 8; violations return ErrInvalidConfig.
func New(format AudioFormat, numChannels uint16, sampleRate uint32, bitsPerSample uint16) (*WaveFile, error) {
	if numChannels < 1 {
		return nil, fmt.Errorf("%w: channel count %d", ErrInvalidConfig, numChannels)
	}

	if sampleRate < 1 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, sampleRate)
	}

	if bitsPerSample == 0 || bitsPerSample%8 != 0 {
		return nil, fmt.Errorf("%w: bit depth %d is not a positive multiple of 8", ErrInvalidConfig, bitsPerSample)
	}

	return &WaveFile{
		Format:        format,
		NumChannels:   numChannels,
		SampleRate:    sampleRate,
		BitsPerSample: bitsPerSample,
	}, nil
}

// AppendBytes appends raw bytes to the end of the sample payload, in order,
// without interpretation. It fails with ErrInvalidConfig if the payload
// would no longer be representable in the 32-bit RIFF size fields.
func (w *WaveFile) AppendBytes(p []byte) error {
	if uint64(len(w.data))+uint64(len(p)) > maxDataSize {
		return fmt.Errorf("%w: payload exceeds 32-bit RIFF size limit", ErrInvalidConfig)
	}

	w.data = append(w.data, p...)

	return nil
}

// Data returns the sample payload. The returned slice is owned by the
// WaveFile and must not be modified by the caller.
func (w *WaveFile) Data() []byte {
	if w == nil {
		return nil
	}

	return w.data
}

// ByteRate returns the average bytes per second derived from the current
// scalars.
func (w *WaveFile) ByteRate() uint32 {
	return w.SampleRate * uint32(w.BlockAlign())
}

// BlockAlign returns the byte size of one sample frame across all channels.
func (w *WaveFile) BlockAlign() uint16 {
	return w.NumChannels * (w.BitsPerSample / 8)
}

// NumFrames returns the number of complete sample frames in the payload.
func (w *WaveFile) NumFrames() int {
	align := int(w.BlockAlign())
	if align == 0 {
		return 0
	}

	return len(w.data) / align
}

// Duration returns the play time of the payload at the current sample rate.
func (w *WaveFile) Duration() time.Duration {
	if w == nil || w.SampleRate == 0 {
		return 0
	}

	return time.Duration(w.NumFrames()) * (time.Second / time.Duration(w.SampleRate))
}

// Clone returns a deep copy of the WaveFile, including the payload.
func (w *WaveFile) Clone() *WaveFile {
	if w == nil {
		return nil
	}

	out := *w
	out.data = append([]byte(nil), w.data...)

	return &out
}

// String implements the Stringer interface.
func (w *WaveFile) String() string {
	return fmt.Sprintf("Format: WAVE (%s) - %d channels @ %d / %d bits - Duration: %f seconds",
		w.Format, w.NumChannels, w.SampleRate, w.BitsPerSample, w.Duration().Seconds())
}

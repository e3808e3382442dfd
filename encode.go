package wavefile

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-audio/riff"
)

const (
	// headerSize is the byte length of the fixed header preceding the
	// payload in the single-fmt, single-data layout.
	headerSize = 44
	// fmtChunkSize is the fmt chunk body size for the PCM-style layout.
	fmtChunkSize = 16
	// riffChunkBaseSize is the RIFF chunk size contribution of the WAVE tag
	// plus the fmt and data chunk headers and the fmt body.
	riffChunkBaseSize = 36
)

// Encode serializes the WaveFile into the canonical 44-byte-header WAVE
// layout followed by the raw payload. The result is always exactly
// 44+len(data) bytes; no trailing pad byte is emitted for odd payloads as
// the data chunk is the last chunk in the container.
func (w *WaveFile) Encode() ([]byte, error) {
	if uint64(len(w.data)) > maxDataSize {
		return nil, fmt.Errorf("%w: payload exceeds 32-bit RIFF size limit", ErrInvalidConfig)
	}

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(w.data)))

	fields := []any{
		riff.RiffID,
		uint32(riffChunkBaseSize + len(w.data)),
		riff.WavFormatID,
		riff.FmtID,
		uint32(fmtChunkSize),
		uint16(w.Format),
		w.NumChannels,
		w.SampleRate,
		w.ByteRate(),
		w.BlockAlign(),
		w.BitsPerSample,
		riff.DataFormatID,
		uint32(len(w.data)),
	}

	for _, field := range fields {
		err := binary.Write(buf, binary.LittleEndian, field)
		if err != nil {
			return nil, fmt.Errorf("failed to write header field: %w", err)
		}
	}

	buf.Write(w.data)

	return buf.Bytes(), nil
}

package wavefile

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/riff"
)

// Decode extracts a WaveFile from a fully materialized byte buffer holding
// the canonical single-fmt, single-data WAVE layout. The fmt chunk scalars
// are taken at their fixed offsets; the format tag is carried opaquely even
// when it does not correspond to a named AudioFormat constant.
//
// Inputs that do not match the expected chunk layout fail with
// ErrMalformedHeader; an input shorter than the declared data chunk size
// fails with ErrTruncatedData. Bytes past the declared data size, such as a
// RIFF alignment pad written by another encoder, are ignored.
func Decode(p []byte) (*WaveFile, error) {
	if len(p) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the %d byte header", ErrMalformedHeader, len(p), headerSize)
	}

	if tagAt(p, 0) != riff.RiffID {
		return nil, fmt.Errorf("%w: missing RIFF tag", ErrMalformedHeader)
	}

	if tagAt(p, 8) != riff.WavFormatID {
		return nil, fmt.Errorf("%w: missing WAVE tag", ErrMalformedHeader)
	}

	if tagAt(p, 12) != riff.FmtID {
		return nil, fmt.Errorf("%w: missing fmt chunk", ErrMalformedHeader)
	}

	// The RIFF size is informational for the payload but can't be smaller
	// than the fixed fmt and data chunk region.
	riffSize := binary.LittleEndian.Uint32(p[4:8])
	if riffSize < riffChunkBaseSize {
		return nil, fmt.Errorf("%w: RIFF chunk size %d below minimum %d", ErrMalformedHeader, riffSize, riffChunkBaseSize)
	}

	// Only the fixed 16-byte fmt body is modeled; an extended fmt chunk
	// would shift every following offset.
	fmtSize := binary.LittleEndian.Uint32(p[16:20])
	if fmtSize != fmtChunkSize {
		return nil, fmt.Errorf("%w: fmt chunk size %d, layout requires %d", ErrMalformedHeader, fmtSize, fmtChunkSize)
	}

	if tagAt(p, 36) != riff.DataFormatID {
		return nil, fmt.Errorf("%w: missing data chunk", ErrMalformedHeader)
	}

	dataSize := binary.LittleEndian.Uint32(p[40:44])
	if uint64(dataSize) > uint64(len(p)-headerSize) {
		return nil, fmt.Errorf("%w: data chunk declares %d bytes, %d available", ErrTruncatedData, dataSize, len(p)-headerSize)
	}

	w := &WaveFile{
		Format:        AudioFormat(binary.LittleEndian.Uint16(p[20:22])),
		NumChannels:   binary.LittleEndian.Uint16(p[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(p[24:28]),
		BitsPerSample: binary.LittleEndian.Uint16(p[34:36]),
		data:          append([]byte(nil), p[headerSize:headerSize+int(dataSize)]...),
	}

	return w, nil
}

func tagAt(p []byte, offset int) [4]byte {
	var tag [4]byte
	copy(tag[:], p[offset:offset+4])

	return tag
}

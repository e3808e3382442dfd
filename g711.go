package wavefile

import (
	"encoding/binary"
	"fmt"

	"github.com/zaf/g711"
)

// ExpandG711 decompresses an A-law or mu-law payload into a new 16-bit PCM
// WaveFile with the same channel count and sample rate. The receiver is not
// modified.
func (w *WaveFile) ExpandG711() (*WaveFile, error) {
	var frameFn func(uint8) int16

	switch w.Format {
	case FormatALaw:
		frameFn = g711.DecodeAlawFrame
	case FormatMuLaw:
		frameFn = g711.DecodeUlawFrame
	default:
		return nil, fmt.Errorf("%w: %s is not a G.711 encoding", ErrUnsupportedFormat, w.Format)
	}

	if w.BitsPerSample != 8 {
		return nil, fmt.Errorf("%w: G.711 payload with bit depth %d", ErrUnsupportedFormat, w.BitsPerSample)
	}

	out, err := New(FormatPCM, w.NumChannels, w.SampleRate, 16)
	if err != nil {
		return nil, err
	}

	p := make([]byte, len(w.data)*2)
	for i, frame := range w.data {
		binary.LittleEndian.PutUint16(p[i*2:], uint16(frameFn(frame)))
	}

	err = out.AppendBytes(p)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// CompressG711 compands a 16-bit PCM payload into a new 8-bit A-law or
// mu-law WaveFile with the same channel count and sample rate. The target
// must be FormatALaw or FormatMuLaw.
func (w *WaveFile) CompressG711(target AudioFormat) (*WaveFile, error) {
	var frameFn func(int16) uint8

	switch target {
	case FormatALaw:
		frameFn = g711.EncodeAlawFrame
	case FormatMuLaw:
		frameFn = g711.EncodeUlawFrame
	default:
		return nil, fmt.Errorf("%w: %s is not a G.711 encoding", ErrUnsupportedFormat, target)
	}

	if w.Format != FormatPCM || w.BitsPerSample != 16 {
		return nil, fmt.Errorf("%w: G.711 companding needs a 16-bit PCM source, got %d-bit %s", ErrUnsupportedFormat, w.BitsPerSample, w.Format)
	}

	out, err := New(target, w.NumChannels, w.SampleRate, 8)
	if err != nil {
		return nil, err
	}

	numSamples := len(w.data) / 2

	p := make([]byte, numSamples)
	for i := 0; i < numSamples; i++ {
		p[i] = frameFn(int16(binary.LittleEndian.Uint16(w.data[i*2:])))
	}

	err = out.AppendBytes(p)
	if err != nil {
		return nil, err
	}

	return out, nil
}

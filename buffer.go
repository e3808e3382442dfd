package wavefile

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/go-audio/audio"
)

var errNilBuffer = errors.New("can't use a nil buffer")

// IntBuffer interprets the PCM payload as interleaved integer samples and
// returns them in an audio.IntBuffer. Only linear PCM payloads at 8, 16, 24
// or 32 bits are supported; 8-bit samples are unsigned per the WAV
// convention, all other depths are signed. A trailing partial frame is
// dropped.
func (w *WaveFile) IntBuffer() (*audio.IntBuffer, error) {
	if w.Format != FormatPCM {
		return nil, fmt.Errorf("%w: can't interpret %s payload as PCM samples", ErrUnsupportedFormat, w.Format)
	}

	bPerSample, err := w.bytesPerSample()
	if err != nil {
		return nil, err
	}

	numSamples := len(w.data) / bPerSample

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: int(w.NumChannels),
			SampleRate:  int(w.SampleRate),
		},
		SourceBitDepth: int(w.BitsPerSample),
		Data:           make([]int, numSamples),
	}

	for i := 0; i < numSamples; i++ {
		sample := w.data[i*bPerSample : (i+1)*bPerSample]

		switch w.BitsPerSample {
		case 8:
			buf.Data[i] = int(sample[0])
		case 16:
			buf.Data[i] = int(int16(binary.LittleEndian.Uint16(sample)))
		case 24:
			// sign-extend the 24-bit sample through the top byte
			buf.Data[i] = int(int32(sample[0]) | int32(sample[1])<<8 | int32(int8(sample[2]))<<16)
		case 32:
			buf.Data[i] = int(int32(binary.LittleEndian.Uint32(sample)))
		}
	}

	return buf, nil
}

// AppendBuffer serializes the buffer's interleaved samples at the file's
// bit depth and appends them to the payload. The buffer's channel layout is
// assumed to match the file's.
func (w *WaveFile) AppendBuffer(buf *audio.IntBuffer) error {
	if buf == nil {
		return errNilBuffer
	}

	if w.Format != FormatPCM {
		return fmt.Errorf("%w: can't serialize PCM samples into a %s payload", ErrUnsupportedFormat, w.Format)
	}

	bPerSample, err := w.bytesPerSample()
	if err != nil {
		return err
	}

	p := make([]byte, len(buf.Data)*bPerSample)

	for i, sample := range buf.Data {
		dst := p[i*bPerSample : (i+1)*bPerSample]

		switch w.BitsPerSample {
		case 8:
			dst[0] = uint8(sample)
		case 16:
			binary.LittleEndian.PutUint16(dst, uint16(int16(sample)))
		case 24:
			copy(dst, audio.Int32toInt24LEBytes(int32(sample)))
		case 32:
			binary.LittleEndian.PutUint32(dst, uint32(int32(sample)))
		}
	}

	return w.AppendBytes(p)
}

// FromBuffer builds a PCM WaveFile from the buffer's format and samples.
// The buffer's SourceBitDepth selects the storage bit depth and defaults to
// 16 when unset.
func FromBuffer(buf *audio.IntBuffer) (*WaveFile, error) {
	if buf == nil || buf.Format == nil {
		return nil, errNilBuffer
	}

	bitDepth := uint16(buf.SourceBitDepth)
	if bitDepth == 0 {
		bitDepth = 16
	}

	w, err := New(FormatPCM, uint16(buf.Format.NumChannels), uint32(buf.Format.SampleRate), bitDepth)
	if err != nil {
		return nil, err
	}

	err = w.AppendBuffer(buf)
	if err != nil {
		return nil, err
	}

	return w, nil
}

func (w *WaveFile) bytesPerSample() (int, error) {
	switch w.BitsPerSample {
	case 8, 16, 24, 32:
		return int(w.BitsPerSample) / 8, nil
	default:
		return 0, fmt.Errorf("%w: bit depth %d", ErrUnsupportedFormat, w.BitsPerSample)
	}
}

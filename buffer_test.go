package wavefile

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/go-audio/audio"
)

func TestBufferRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		bitDepth uint16
		samples  []int
	}{
		{"8-bit unsigned", 8, []int{0, 127, 128, 255}},
		{"16-bit", 16, []int{0, -32768, 32767, 1000, -1000}},
		{"24-bit", 24, []int{0, -8388608, 8388607, 123456}},
		{"32-bit", 32, []int{0, -2147483648, 2147483647, 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := New(FormatPCM, 1, 44100, tt.bitDepth)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}

			in := &audio.IntBuffer{
				Format:         &audio.Format{NumChannels: 1, SampleRate: 44100},
				SourceBitDepth: int(tt.bitDepth),
				Data:           tt.samples,
			}

			if err := w.AppendBuffer(in); err != nil {
				t.Fatalf("AppendBuffer failed: %v", err)
			}

			if len(w.Data()) != len(tt.samples)*int(tt.bitDepth)/8 {
				t.Fatalf("payload=%d bytes, want %d", len(w.Data()), len(tt.samples)*int(tt.bitDepth)/8)
			}

			out, err := w.IntBuffer()
			if err != nil {
				t.Fatalf("IntBuffer failed: %v", err)
			}

			if !reflect.DeepEqual(out.Data, tt.samples) {
				t.Fatalf("IntBuffer data=%v, want %v", out.Data, tt.samples)
			}

			if out.SourceBitDepth != int(tt.bitDepth) {
				t.Fatalf("SourceBitDepth=%d, want %d", out.SourceBitDepth, tt.bitDepth)
			}
		})
	}
}

func TestIntBufferRejectsNonPCM(t *testing.T) {
	w, err := New(FormatIEEEFloat, 2, 48000, 32)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	_, err = w.IntBuffer()
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("IntBuffer()=%v, want ErrUnsupportedFormat", err)
	}
}

func TestIntBufferDropsPartialFrame(t *testing.T) {
	w, err := New(FormatPCM, 1, 8000, 16)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// three bytes is one complete 16-bit sample plus one dangling byte
	if err := w.AppendBytes([]byte{0x01, 0x00, 0x02}); err != nil {
		t.Fatalf("AppendBytes failed: %v", err)
	}

	buf, err := w.IntBuffer()
	if err != nil {
		t.Fatalf("IntBuffer failed: %v", err)
	}

	if len(buf.Data) != 1 {
		t.Fatalf("IntBuffer has %d samples, want 1", len(buf.Data))
	}
}

func TestFromBuffer(t *testing.T) {
	in := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 22050},
		SourceBitDepth: 16,
		Data:           []int{1, -1, 2, -2},
	}

	w, err := FromBuffer(in)
	if err != nil {
		t.Fatalf("FromBuffer failed: %v", err)
	}

	if w.Format != FormatPCM {
		t.Fatalf("Format=%v, want PCM", w.Format)
	}

	if w.NumChannels != 2 || w.SampleRate != 22050 || w.BitsPerSample != 16 {
		t.Fatalf("unexpected scalars: %d ch, %d Hz, %d bits", w.NumChannels, w.SampleRate, w.BitsPerSample)
	}

	want := []byte{0x01, 0x00, 0xFF, 0xFF, 0x02, 0x00, 0xFE, 0xFF}
	if !bytes.Equal(w.Data(), want) {
		t.Fatalf("Data()=%v, want %v", w.Data(), want)
	}
}

func TestFromBufferDefaultsTo16Bits(t *testing.T) {
	in := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:   []int{5},
	}

	w, err := FromBuffer(in)
	if err != nil {
		t.Fatalf("FromBuffer failed: %v", err)
	}

	if w.BitsPerSample != 16 {
		t.Fatalf("BitsPerSample=%d, want 16", w.BitsPerSample)
	}
}

func TestFromBufferNil(t *testing.T) {
	if _, err := FromBuffer(nil); err == nil {
		t.Fatal("expected error for nil buffer")
	}
}

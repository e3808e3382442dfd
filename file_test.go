package wavefile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")

	w, err := New(FormatPCM, 2, 44100, 16)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := w.AppendBytes([]byte{0x00, 0x01, 0x02, 0x03}); err != nil {
		t.Fatalf("AppendBytes failed: %v", err)
	}

	if err := w.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}

	if fi.Size() != headerSize+4 {
		t.Fatalf("file size=%d, want %d", fi.Size(), headerSize+4)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if !bytes.Equal(got.Data(), w.Data()) {
		t.Fatalf("payload mismatch: got %v, want %v", got.Data(), w.Data())
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.wav"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadFileNotWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.wav")
	if err := os.WriteFile(path, []byte("this is not a wav file at all, just text"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := ReadFile(path)
	if !errors.Is(err, ErrMalformedHeader) {
		t.Fatalf("ReadFile()=%v, want ErrMalformedHeader", err)
	}
}

func TestWriteFileInvalidPath(t *testing.T) {
	w, err := New(FormatPCM, 1, 8000, 8)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := w.WriteFile("/nonexistent/dir/out.wav"); err == nil {
		t.Fatal("expected error for invalid output path")
	}
}

package wavefile

import (
	"fmt"
	"os"
)

// ReadFile reads and decodes the WAV file at the given path.
func ReadFile(path string) (*WaveFile, error) {
	p, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	w, err := Decode(p)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return w, nil
}

// WriteFile encodes the WaveFile and writes it to the given path.
func (w *WaveFile) WriteFile(path string) error {
	p, err := w.Encode()
	if err != nil {
		return err
	}

	err = os.WriteFile(path, p, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

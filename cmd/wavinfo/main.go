// This tool prints the container header fields of the passed wav file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/wavefile"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	wave, err := wavefile.ReadFile(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Format: %s\n", wave.Format)
	fmt.Fprintf(out, "Channels: %d\n", wave.NumChannels)
	fmt.Fprintf(out, "Sample rate: %d Hz\n", wave.SampleRate)
	fmt.Fprintf(out, "Bit depth: %d\n", wave.BitsPerSample)
	fmt.Fprintf(out, "Byte rate: %d\n", wave.ByteRate())
	fmt.Fprintf(out, "Block align: %d\n", wave.BlockAlign())
	fmt.Fprintf(out, "Frames: %d\n", wave.NumFrames())
	fmt.Fprintf(out, "Duration: %s\n", wave.Duration())

	return nil
}

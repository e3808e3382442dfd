// This tool converts a wav file into an identical aiff file and stores
// it in the same folder as the source.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/cwbudde/wavefile"
	"github.com/go-audio/aiff"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)

	path := flagSet.String("path", "", "The path to the wav file to convert to aiff")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *path == "" {
		return fmt.Errorf("you must set the -path flag")
	}

	wave, err := wavefile.ReadFile(*path)
	if err != nil {
		return err
	}

	buf, err := wave.IntBuffer()
	if err != nil {
		return err
	}

	outPath := (*path)[:len(*path)-len(filepath.Ext(*path))] + ".aif"

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer outFile.Close()

	encoder := aiff.NewEncoder(outFile, int(wave.SampleRate), int(wave.BitsPerSample), int(wave.NumChannels))

	err = encoder.Write(buf)
	if err != nil {
		return fmt.Errorf("failed to write aiff frames: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("failed to finalize %s: %w", outPath, err)
	}

	log.Printf("wav file converted to %s", outPath)

	return nil
}

package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/wavefile"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	log.Printf("generating a %f sec sine wav at %f hz", *length, *frequency)

	const sampleRate = 48000

	wave, err := wavefile.New(wavefile.FormatPCM, 1, sampleRate, 16)
	if err != nil {
		return err
	}

	numSamples := int(sampleRate * *length)
	payload := make([]byte, numSamples*2)

	for i := 0; i < numSamples; i++ {
		fv := math.Sin(float64(i) / sampleRate * *frequency * 2 * math.Pi)
		binary.LittleEndian.PutUint16(payload[i*2:], uint16(int16(math.Round(fv*32767))))
	}

	err = wave.AppendBytes(payload)
	if err != nil {
		return err
	}

	err = wave.WriteFile(*output)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", *output, err)
	}

	return nil
}

package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/sirupsen/logrus"
)

func renderCmd(args []string, log *logrus.Logger) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	grid := addGridFlags(fs)
	outPath := fs.String("out", "out.png", "output PNG path")
	_ = fs.Parse(args)

	master, preset, spec, err := grid.resolve()
	if err != nil {
		log.Fatal(err)
	}
	samples, err := computeGrid(*grid.kind, spec, master, preset)
	if err != nil {
		log.Fatal(err)
	}

	img := grayImage(samples, spec.Width, spec.Height)

	file, err := os.Create(*outPath)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		log.Fatal(err)
	}
	log.WithFields(logrus.Fields{
		"kind": *grid.kind,
		"out":  *outPath,
		"size": spec.Width * spec.Height,
	}).Info("rendered tile")
}

// grayImage maps samples to 8-bit gray, normalized over the tile's own range.
func grayImage(samples []float64, width, height int) *image.Gray {
	lo, hi := samples[0], samples[0]
	for _, v := range samples {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			v := (samples[i+j*width] - lo) / span
			img.SetGray(i, j, color.Gray{Y: uint8(v * 255)})
		}
	}
	return img
}

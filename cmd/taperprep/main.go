// Command taperprep prepares a grayscale image for spectral deconvolution.
//
// Usage:
//
//	taperprep -in blurred.png [flags]
//
// It decodes the input, applies the edge taper against an optional
// region-of-interest mask, and writes the tapered image. Optionally it also
// writes the DC-centered log-magnitude spectrum of the result and the
// intermediate taper stages.
//
// Examples:
//
//	taperprep -in blurred.png -out tapered.png
//	taperprep -in blurred.png -mask region.png -out tapered.png
//	taperprep -in blurred.jpg -width 640 -spectrum -out tapered.png
//	taperprep -in blurred.png -debug stages/taper -out tapered.png
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/nfnt/resize"

	"github.com/almondyoung/depth-aware-motion-deblurring/img/grid"
	"github.com/almondyoung/depth-aware-motion-deblurring/img/spectral"
	"github.com/almondyoung/depth-aware-motion-deblurring/img/taper"
)

func main() {
	var (
		inPath   = flag.String("in", "", "input image (PNG or JPEG)")
		maskPath = flag.String("mask", "", "region-of-interest mask image; omit for a full-frame mask")
		outPath  = flag.String("out", "tapered.png", "output image path")
		width    = flag.Uint("width", 0, "resize the input to this width before processing (0 = keep)")
		spectrum = flag.Bool("spectrum", false, "also write the log-magnitude spectrum next to the output")
		debug    = flag.String("debug", "", "prefix for PNG dumps of the intermediate taper stages")
	)
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "taperprep: -in is required")
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*inPath, *maskPath, *outPath, *width, *spectrum, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "taperprep: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, maskPath, outPath string, width uint, spectrum bool, debug string) error {
	src, err := loadGray(inPath, width)
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}

	mask := grid.FullMask(src.Rows, src.Cols)
	if maskPath != "" {
		mask, err = loadGray(maskPath, 0)
		if err != nil {
			return fmt.Errorf("load mask: %w", err)
		}
		if mask.Rows != src.Rows || mask.Cols != src.Cols {
			return fmt.Errorf("mask is %dx%d, input is %dx%d",
				mask.Cols, mask.Rows, src.Cols, src.Rows)
		}
	}

	var opts []taper.Option
	if debug != "" {
		opts = append(opts, taper.WithDebugSink(func(stage string, g *grid.Gray) {
			name := debug + "-" + stage + ".png"
			if err := writePNG(name, g); err != nil {
				fmt.Fprintf(os.Stderr, "taperprep: write %s: %v\n", name, err)
			}
		}))
	}

	tapered, err := taper.EdgeTaper(src, mask, src, opts...)
	if err != nil {
		return fmt.Errorf("edge taper: %w", err)
	}
	if err := writePNG(outPath, tapered); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if spectrum {
		spec, err := spectral.Spectrum(tapered.Real(), true)
		if err != nil {
			return fmt.Errorf("spectrum: %w", err)
		}
		view, err := spectral.LogMagnitude(spec)
		if err != nil {
			return fmt.Errorf("log magnitude: %w", err)
		}
		specPath := strings.TrimSuffix(outPath, ".png") + "_spectrum.png"
		if err := writePNG(specPath, grid.GrayFromReal(view)); err != nil {
			return fmt.Errorf("write spectrum: %w", err)
		}
	}
	return nil
}

func loadGray(path string, width uint) (*grid.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	if width > 0 {
		img = resize.Resize(width, 0, img, resize.Lanczos3)
	}
	return grid.FromImage(img), nil
}

func writePNG(path string, g *grid.Gray) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, g.Image())
}

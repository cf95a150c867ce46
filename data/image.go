package data

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Forwarder is anything that maps an input vector to an output vector.
type Forwarder interface {
	Forward(input []float64) ([]float64, error)
}

// RenderImage evaluates nw at every pixel (x, y) of a w x h grid, reading the
// first three outputs as 0-255 RGB, and scales the result to outW x outH.
func RenderImage(nw Forwarder, w, h, outW, outH int) (image.Image, error) {
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out, err := nw.Forward([]float64{float64(x), float64(y)})
			if err != nil {
				return nil, err
			}
			if len(out) < 3 {
				return nil, fmt.Errorf("pixel (%d, %d): need 3 outputs for RGB, got %d", x, y, len(out))
			}
			src.SetRGBA(x, y, color.RGBA{R: toByte(out[0]), G: toByte(out[1]), B: toByte(out[2]), A: 255})
		}
	}
	if outW == w && outH == h {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Over, nil)
	return dst, nil
}

// SaveImage writes img as BMP or PNG depending on the extension of path.
func SaveImage(path string, img image.Image) error {
	var encode func(*os.File, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		encode = func(f *os.File, m image.Image) error { return bmp.Encode(f, m) }
	case ".png":
		encode = func(f *os.File, m image.Image) error { return png.Encode(f, m) }
	default:
		return fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func toByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

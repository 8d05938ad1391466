// Package texture decodes image files into RGBA pixel data ready for upload.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	_ "golang.org/x/image/bmp" // BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// Options controls how decoded images are prepared.
type Options struct {
	// FlipY stores the bottom row first, matching OpenGL's texture origin.
	FlipY bool
	// MaxSize scales images down so neither side exceeds it. Zero disables scaling.
	MaxSize int
}

// DefaultOptions flips images for OpenGL and leaves their size alone.
func DefaultOptions() Options {
	return Options{FlipY: true}
}

// Decode decodes an image in any registered format and converts it to RGBA.
// It also returns the detected format name.
func Decode(data []byte, opts Options) (*image.RGBA, string, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}
	return Prepare(src, opts), format, nil
}

// Prepare converts src to RGBA with its origin at (0, 0), scaling and
// flipping according to opts.
func Prepare(src image.Image, opts Options) *image.RGBA {
	b := src.Bounds()
	w, h := fit(b.Dx(), b.Dy(), opts.MaxSize)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}

	if opts.FlipY {
		FlipVertical(dst)
	}
	return dst
}

// FlipVertical mirrors img top to bottom in place.
func FlipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// Checkerboard returns a size x size magenta and black checkerboard with
// cell-sized squares, used when a texture file cannot be loaded.
func Checkerboard(size, cell int) *image.RGBA {
	if cell < 1 {
		cell = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	magenta := color.RGBA{R: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, magenta)
			} else {
				img.SetRGBA(x, y, black)
			}
		}
	}
	return img
}

func fit(w, h, limit int) (int, int) {
	if limit <= 0 || (w <= limit && h <= limit) {
		return w, h
	}
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}

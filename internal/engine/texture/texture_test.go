package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

// twoRows returns a 2x2 image with a red top row and a blue bottom row.
func twoRows() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	for x := 0; x < 2; x++ {
		img.SetNRGBA(x, 0, red)
		img.SetNRGBA(x, 1, blue)
	}
	return img
}

func TestDecodeFlip(t *testing.T) {
	data := encodePNG(t, twoRows())

	tests := []struct {
		name     string
		opts     Options
		firstRow color.RGBA
	}{
		{name: "flipped", opts: DefaultOptions(), firstRow: color.RGBA{B: 255, A: 255}},
		{name: "unflipped", opts: Options{}, firstRow: color.RGBA{R: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, format, err := Decode(data, tt.opts)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if format != "png" {
				t.Errorf("format = %q, want png", format)
			}
			if got := img.RGBAAt(0, 0); got != tt.firstRow {
				t.Errorf("pixel (0,0) = %v, want %v", got, tt.firstRow)
			}
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, _, err := Decode([]byte("not an image"), DefaultOptions()); err == nil {
		t.Error("expected error for invalid data")
	}
}

func TestPrepareMaxSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 410, 210))

	img := Prepare(src, Options{MaxSize: 100})
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 || b.Min != (image.Point{}) {
		t.Errorf("bounds = %v, want 100x50 at origin", b)
	}

	img = Prepare(src, Options{})
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 200 || b.Min != (image.Point{}) {
		t.Errorf("bounds = %v, want 400x200 at origin", b)
	}
}

func TestFlipVerticalOddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	for y := 0; y < 3; y++ {
		img.SetRGBA(0, y, color.RGBA{R: uint8(y), A: 255})
	}
	FlipVertical(img)
	for y := 0; y < 3; y++ {
		if got := img.RGBAAt(0, y).R; got != uint8(2-y) {
			t.Errorf("row %d = %d, want %d", y, got, 2-y)
		}
	}
}

func TestCheckerboard(t *testing.T) {
	img := Checkerboard(8, 4)
	if img.Bounds().Dx() != 8 {
		t.Fatalf("size = %d, want 8", img.Bounds().Dx())
	}
	if img.RGBAAt(0, 0) == img.RGBAAt(4, 0) {
		t.Error("adjacent cells share a color")
	}
	if img.RGBAAt(0, 0) != img.RGBAAt(4, 4) {
		t.Error("diagonal cells differ")
	}
}

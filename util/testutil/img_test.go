package testutil

import (
	"image"
	"image/color"
	"testing"
)

func TestCountColor(t *testing.T) {
	r := image.Rect(0, 0, 4, 4)
	img := image.NewNRGBA(r)
	img.Set(1, 2, color.Black)
	img.Set(3, 3, color.Black)
	if n := CountColor(img, r, color.Black); n != 2 {
		t.Fatal(n)
	}
	// partially outside
	if n := CountColor(img, image.Rect(2, 2, 10, 10), color.Black); n != 1 {
		t.Fatal(n)
	}
	if n := CountColor(img, r, color.Transparent); n != 14 {
		t.Fatal(n)
	}
}

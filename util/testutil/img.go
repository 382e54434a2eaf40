package testutil

import (
	"image"
	"image/color"
)

// Counts the pixels in r with color c.
func CountColor(img image.Image, r image.Rectangle, c color.Color) int {
	c0 := color.RGBAModel.Convert(c)
	n := 0
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)) == c0 {
				n++
			}
		}
	}
	return n
}

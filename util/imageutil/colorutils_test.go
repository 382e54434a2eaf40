package imageutil

import (
	"image"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		s string
		c color.NRGBA
	}{
		{"#fff", color.NRGBA{255, 255, 255, 255}},
		{"#102030", color.NRGBA{0x10, 0x20, 0x30, 255}},
		{"#10203040", color.NRGBA{0x10, 0x20, 0x30, 0x40}},
		{"black", color.NRGBA{0, 0, 0, 255}},
		{"LightGray", color.NRGBA{0xd3, 0xd3, 0xd3, 0xff}},
	}
	for _, u := range tests {
		c, err := ParseColor(u.s)
		if err != nil {
			t.Fatal(err)
		}
		if c != u.c {
			t.Log(u.s, c)
			t.Fatal()
		}
	}
}

func TestParseColorAlphaPaint(t *testing.T) {
	c, err := ParseColor("#40404080")
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	FillRectangle(img, img.Bounds(), c)
	if u := img.NRGBAAt(1, 1); u != (color.NRGBA{64, 64, 64, 128}) {
		t.Fatal(u)
	}

	// premultiplied storage: 64*128/255
	img2 := image.NewRGBA(image.Rect(0, 0, 4, 4))
	FillRectangle(img2, img2.Bounds(), c)
	if u := img2.RGBAAt(1, 1); u != (color.RGBA{32, 32, 32, 128}) {
		t.Fatal(u)
	}
}

func TestParseColorErr(t *testing.T) {
	for _, s := range []string{"#12", "#12345", "#gggggg", "nocolor"} {
		if _, err := ParseColor(s); err == nil {
			t.Fatalf("expecting error: %v", s)
		}
	}
}

func TestTint(t *testing.T) {
	c := color.NRGBA{100, 100, 100, 255}
	if u := Tint(c, 1); u != (color.NRGBA{255, 255, 255, 255}) {
		t.Fatal(u)
	}
	if u := Tint(c, 0); u != c {
		t.Fatal(u)
	}
	c2 := color.NRGBA{0, 0, 0, 128}
	if u := Tint(c2, 0.5); u != (color.NRGBA{127, 127, 127, 128}) {
		t.Fatal(u)
	}
}

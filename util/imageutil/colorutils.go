package imageutil

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

func RgbaFromInt(u int) color.RGBA {
	v := u & 0xffffff
	r := uint8((v << 0) >> 16)
	g := uint8((v << 8) >> 16)
	b := uint8((v << 16) >> 16)
	return color.RGBA{r, g, b, 255}
}

//----------

// Accepts "#rgb", "#rrggbb", "#rrggbbaa" or a svg color name (ex: "lightgray"). The alpha is not premultiplied.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown color name: %q", s)
		}
		return nrgba(c), nil
	}

	h := s[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("bad color length: %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad color: %q: %w", s, err)
	}
	if len(h) == 6 {
		return nrgba(RgbaFromInt(int(v))), nil
	}
	c := RgbaFromInt(int(v >> 8))
	return color.NRGBA{c.R, c.G, c.B, uint8(v)}, nil
}

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

//----------

// Turn color lighter by v percent (0.0, 1.0). Keeps the alpha.
func Tint(c color.Color, v float64) color.Color {
	if v < 0 || v > 1 {
		panic("!")
	}
	c2 := nrgba(c)
	c2.R += uint8(v * float64((255 - c2.R)))
	c2.G += uint8(v * float64((255 - c2.G)))
	c2.B += uint8(v * float64((255 - c2.B)))
	return c2
}

package widget

import (
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	White color.Color = color.RGBA{255, 255, 255, 255}
	Black color.Color = color.RGBA{0, 0, 0, 255}

	// used if a color name is not found
	defaultThemeColor color.Color = color.RGBA{255, 255, 0, 255} // yellow
)

//----------

// nil is a valid receiver.
type Palette map[string]color.Color

// Falls back to the default palette, and then to a warning color (yellow).
func (pal Palette) Get(name string) color.Color {
	if c, ok := pal[name]; ok {
		return c
	}
	if c, ok := defaultPalette[name]; ok {
		return c
	}
	return defaultThemeColor
}

//----------

var defaultPalette = Palette{
	"fg":      Black,
	"bg":      White,
	"divider": color.RGBA{0xd3, 0xd3, 0xd3, 255},
}

//----------

type ThemeFont interface {
	Face() font.Face
}

//----------

// Truetype theme font.
type TTThemeFont struct {
	opt    *truetype.Options
	ttfont *truetype.Font
	face   font.Face
}

func NewTTThemeFont(ttf []byte, opt *truetype.Options) (*TTThemeFont, error) {
	ttfont, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return &TTThemeFont{opt: opt, ttfont: ttfont}, nil
}

// The face is created on first use and cached.
func (tf *TTThemeFont) Face() font.Face {
	if tf.face == nil {
		tf.face = truetype.NewFace(tf.ttfont, tf.opt)
	}
	return tf.face
}

//----------

var _dft ThemeFont

func DefaultThemeFont() ThemeFont {
	if _dft == nil {
		_dft = goregularThemeFont()
	}
	return _dft
}

func goregularThemeFont() *TTThemeFont {
	opt := &truetype.Options{}
	tf, err := NewTTThemeFont(goregular.TTF, opt)
	if err != nil {
		panic(err)
	}
	return tf
}

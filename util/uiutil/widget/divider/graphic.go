package divider

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jmigpin/listdivider/util/imageutil"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Divider graphic. Owned by the caller, the decorator only keeps references.
type Graphic interface {
	Thickness() int // height along the list scroll axis
	Paint(img draw.Image, r image.Rectangle)
}

func thickness(g Graphic) int {
	t := g.Thickness()
	if t < 0 {
		return 0
	}
	return t
}

//----------

// Solid strip.
type Fill struct {
	Color color.Color
	Size  int
}

func (f *Fill) Thickness() int {
	return f.Size
}
func (f *Fill) Paint(img draw.Image, r image.Rectangle) {
	imageutil.FillRectangle(img, r, f.Color)
}

//----------

// Paints the graphic away from the list left/right edges.
type Inset struct {
	Graphic
	Left, Right int
}

func (in *Inset) Paint(img draw.Image, r image.Rectangle) {
	r.Min.X += in.Left
	r.Max.X -= in.Right
	if r.Empty() {
		return
	}
	in.Graphic.Paint(img, r)
}

//----------

// Caption strip (ex: section title between groups of rows).
type Label struct {
	Text   string
	Face   font.Face
	Fg, Bg color.Color
	Pad    int
}

func (l *Label) Thickness() int {
	m := l.Face.Metrics()
	return (m.Ascent + m.Descent).Ceil() + 2*l.Pad
}

func (l *Label) Paint(img draw.Image, r image.Rectangle) {
	imageutil.FillRectangle(img, r, l.Bg)
	if l.Text == "" || l.Fg == nil {
		return
	}
	d := &font.Drawer{
		Dst:  imageutil.SubImage(img, r),
		Src:  image.NewUniform(l.Fg),
		Face: l.Face,
	}
	asc := l.Face.Metrics().Ascent.Ceil()
	d.Dot = fixed.P(r.Min.X+l.Pad, r.Min.Y+l.Pad+asc)
	d.DrawString(l.Text)
}

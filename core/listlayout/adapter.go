package listlayout

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jmigpin/listdivider/util/imageutil"
	"github.com/jmigpin/listdivider/util/uiutil/widget"
	"github.com/jmigpin/listdivider/util/uiutil/widget/divider"
	"golang.org/x/image/font"
)

const textPad = 2

// List adapter over the file rows.
type Adapter struct {
	items []*item
	face  font.Face
}

type item struct {
	typ    int
	height int
	text   string
	bg     color.Color
	fg     color.Color
	border color.Color
}

func (f *File) Adapter(tf widget.ThemeFont) (*Adapter, error) {
	a := &Adapter{face: tf.Face()}
	for _, rs := range f.Rows {
		id := f.typeIds[rs.Type]
		ts := f.Types[id]
		it := &item{typ: id, height: ts.Height, text: rs.Text}
		var err error
		if it.bg, err = parseColor(ts.Color, nil); err != nil {
			return nil, err
		}
		if it.fg, err = parseColor(ts.Fg, widget.Black); err != nil {
			return nil, err
		}
		if it.border, err = parseColor(ts.Border, nil); err != nil {
			return nil, err
		}
		a.items = append(a.items, it)
	}
	return a, nil
}

//----------

func (a *Adapter) ItemCount() int {
	return len(a.items)
}
func (a *Adapter) ItemType(i int) int {
	return a.items[i].typ
}
func (a *Adapter) MeasureItem(i int, width int) int {
	it := a.items[i]
	if it.height > 0 {
		return it.height
	}
	return a.label(it).Thickness()
}
func (a *Adapter) PaintItem(img draw.Image, i int, r image.Rectangle) {
	it := a.items[i]
	a.label(it).Paint(img, r)
	if it.border != nil {
		imageutil.BorderRectangle(img, r, it.border, 1)
	}
}

func (a *Adapter) label(it *item) *divider.Label {
	return &divider.Label{Text: it.text, Face: a.face, Fg: it.fg, Bg: it.bg, Pad: textPad}
}

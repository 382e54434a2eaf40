package listlayout

import (
	"fmt"

	"github.com/jmigpin/listdivider/util/imageutil"
	"github.com/jmigpin/listdivider/util/uiutil/widget"
	"github.com/jmigpin/listdivider/util/uiutil/widget/divider"
)

// Resolver with the file graphics. The theme default divider is available unless the file redefines it.
func (f *File) Resolver(tf widget.ThemeFont) (divider.MapResolver, error) {
	res := divider.DefaultResolver(nil)
	for name, gs := range f.Graphics {
		g, err := f.graphic(gs, tf)
		if err != nil {
			return nil, fmt.Errorf("graphics.%v: %w", name, err)
		}
		res[name] = g
	}
	return res, nil
}

func (f *File) graphic(gs *GraphicSpec, tf widget.ThemeFont) (divider.Graphic, error) {
	c, err := parseColor(gs.Color, nil)
	if err != nil {
		return nil, err
	}

	var g divider.Graphic
	if gs.Label != "" {
		fg, err := parseColor(gs.Fg, widget.Black)
		if err != nil {
			return nil, err
		}
		if c == nil {
			c = imageutil.Tint(fg, 0.85)
		}
		g = &divider.Label{
			Text: gs.Label,
			Face: tf.Face(),
			Fg:   fg,
			Bg:   c,
			Pad:  gs.Pad,
		}
	} else {
		if c == nil {
			c = widget.Palette(nil).Get("divider")
		}
		g = &divider.Fill{Color: c, Size: gs.Thickness}
	}

	if gs.Inset.Left != 0 || gs.Inset.Right != 0 {
		g = &divider.Inset{Graphic: g, Left: gs.Inset.Left, Right: gs.Inset.Right}
	}
	return g, nil
}

//----------

// Registers the file dividers. Unknown graphic names leave the slot without divider.
func (f *File) Builder(res divider.Resolver) *divider.Builder {
	b := divider.Vertical(res)
	for i, ts := range f.Types {
		switch ts.Divider {
		case "":
		case DefaultDivider:
			b.TypeDefault(i)
		default:
			b.TypeRes(i, ts.Divider)
		}
	}
	if f.First != "" {
		b.FirstRes(f.First)
	}
	if f.Last != "" {
		b.LastRes(f.Last)
	}
	if f.StopAfterLast {
		b.StopAfterLast()
	}
	return b
}

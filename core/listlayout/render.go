package listlayout

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/jmigpin/listdivider/util/uiutil/widget"
	"github.com/jmigpin/listdivider/util/uiutil/widget/divider"
)

type Render struct {
	File      *File
	Img       *image.NRGBA
	ListView  *widget.ListView
	Decorator *divider.Decorator
}

func (f *File) Render() (*Render, error) {
	// size fields can be changed after parsing
	if err := f.checkSize(); err != nil {
		return nil, err
	}
	tf := widget.DefaultThemeFont()
	res, err := f.Resolver(tf)
	if err != nil {
		return nil, err
	}
	adapter, err := f.Adapter(tf)
	if err != nil {
		return nil, err
	}
	bg, err := f.background()
	if err != nil {
		return nil, err
	}
	dec := f.Builder(res).Build()

	ctx := &widget.ImgContext{}
	lv := widget.NewListView(ctx, adapter)
	lv.Pad = f.Padding
	lv.RowMargin = f.RowMargin
	lv.Palette = widget.Palette{"bg": bg}
	lv.AddItemDecoration(dec)

	lv.Bounds = image.Rect(0, 0, f.Width, f.Height)
	lv.Layout()
	if f.Height == 0 {
		h := lv.ContentHeight()
		if h < 1 {
			h = 1
		}
		lv.Bounds.Max.Y = h
		lv.Layout()
	}
	lv.SetScrollY(f.Scroll)

	img := imaging.New(lv.Bounds.Dx(), lv.Bounds.Dy(), bg)
	ctx.Img = img
	lv.Paint()

	r := &Render{File: f, Img: img, ListView: lv, Decorator: dec}
	return r, nil
}

func (r *Render) Save(filename string) error {
	return imaging.Save(r.Img, filename)
}

package widget

import (
	"image"
	"image/draw"

	"github.com/jmigpin/listdivider/util/imageutil"
)

type ListAdapter interface {
	ItemCount() int
	ItemType(i int) int
	MeasureItem(i int, width int) int // height
	PaintItem(img draw.Image, i int, r image.Rectangle)
}

//----------

// Vertical list of adapter items. Rows are stacked top to bottom, each one taking its margins plus the space reserved by the item decorations.
type ListView struct {
	Bounds    image.Rectangle
	Pad       Insets
	RowMargin Insets
	Palette   Palette

	ctx     ImageContext
	adapter ListAdapter
	decs    []ItemDecoration

	scrollY       int
	rows          []*ListRow
	contentHeight int
}

func NewListView(ctx ImageContext, adapter ListAdapter) *ListView {
	return &ListView{ctx: ctx, adapter: adapter}
}

//----------

func (lv *ListView) AddItemDecoration(d ItemDecoration) {
	lv.decs = append(lv.decs, d)
}
func (lv *ListView) RemoveItemDecoration(d ItemDecoration) {
	for i, d2 := range lv.decs {
		if d2 == d {
			lv.decs = append(lv.decs[:i], lv.decs[i+1:]...)
			return
		}
	}
}
func (lv *ListView) ItemDecorations() []ItemDecoration {
	return lv.decs
}

//----------

func (lv *ListView) ScrollY() int {
	return lv.scrollY
}

// Clamped to the content height of the last layout.
func (lv *ListView) SetScrollY(y int) {
	my := lv.contentHeight - lv.Bounds.Dy()
	if y > my {
		y = my
	}
	if y < 0 {
		y = 0
	}
	if y != lv.scrollY {
		d := lv.scrollY - y
		lv.scrollY = y
		for _, r := range lv.rows {
			r.Bounds = r.Bounds.Add(image.Point{0, d})
		}
	}
}

func (lv *ListView) ScrollBy(dy int) {
	lv.SetScrollY(lv.scrollY + dy)
}

//----------

func (lv *ListView) ContentHeight() int {
	return lv.contentHeight
}

func (lv *ListView) contentWidth() int {
	w := lv.Bounds.Dx()
	w -= lv.Pad.Left + lv.Pad.Right
	w -= lv.RowMargin.Left + lv.RowMargin.Right
	if w < 0 {
		w = 0
	}
	return w
}

//----------

// Measures every item and sets the rows bounds. Offsets of all decorations are summed per row.
func (lv *ListView) Layout() {
	n := 0
	if lv.adapter != nil {
		n = lv.adapter.ItemCount()
	}
	rows := make([]*ListRow, 0, n)
	width := lv.contentWidth()
	x := lv.Pad.Left + lv.RowMargin.Left
	y := lv.Pad.Top
	for i := 0; i < n; i++ {
		row := &ListRow{
			Type:     lv.adapter.ItemType(i),
			Position: i,
			Count:    n,
			Margin:   lv.RowMargin,
		}
		for _, d := range lv.decs {
			row.Offsets = row.Offsets.Add(d.ItemOffsets(row))
		}

		h := lv.adapter.MeasureItem(i, width)
		if h < 0 {
			h = 0
		}

		y += row.Offsets.Top + row.Margin.Top
		row.Bounds = image.Rect(x, y, x+width, y+h)
		y += h + row.Margin.Bottom + row.Offsets.Bottom

		rows = append(rows, row)
	}
	lv.contentHeight = y + lv.Pad.Bottom

	// screen coordinates
	d := lv.Bounds.Min.Sub(image.Point{0, lv.scrollY})
	for _, r := range rows {
		r.Bounds = r.Bounds.Add(d)
	}
	lv.rows = rows

	// keep scroll inside the new content
	lv.SetScrollY(lv.scrollY)
}

//----------

func (lv *ListView) Rows() []*ListRow {
	return lv.rows
}

// Rows that have some part (including reserved space) inside the bounds, top to bottom.
func (lv *ListView) VisibleRows() []*ListRow {
	var u []*ListRow
	for _, r := range lv.rows {
		if r.OuterBounds().Overlaps(lv.Bounds) {
			u = append(u, r)
		}
	}
	return u
}

func (lv *ListView) Canvas() *ListCanvas {
	return &ListCanvas{
		Bounds:   lv.Bounds,
		PadLeft:  lv.Pad.Left,
		PadRight: lv.Pad.Right,
	}
}

//----------

func (lv *ListView) Paint() {
	img := imageutil.SubImage(lv.ctx.Image(), lv.Bounds)
	imageutil.FillRectangle(img, lv.Bounds, lv.Palette.Get("bg"))

	rows := lv.VisibleRows()
	for _, r := range rows {
		lv.adapter.PaintItem(img, r.Position, r.Bounds)
	}
	c := lv.Canvas()
	for _, d := range lv.decs {
		d.PaintDecoration(img, c, rows)
	}
}

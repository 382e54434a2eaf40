package widget

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/jmigpin/listdivider/util/imageutil"
)

type testAdapter struct {
	heights []int
	types   []int
	painted []int
}

func (ta *testAdapter) ItemCount() int               { return len(ta.heights) }
func (ta *testAdapter) MeasureItem(i, width int) int { return ta.heights[i] }
func (ta *testAdapter) ItemType(i int) int {
	if ta.types == nil {
		return 0
	}
	return ta.types[i]
}
func (ta *testAdapter) PaintItem(img draw.Image, i int, r image.Rectangle) {
	ta.painted = append(ta.painted, i)
	imageutil.FillRectangle(img, r, Black)
}

//----------

func testEdgeDecoration() *ItemDecorationFuncs {
	return &ItemDecorationFuncs{
		OffsetsFn: func(r *ListRow) ItemOffsets {
			if r.IsLast() {
				return ItemOffsets{Bottom: 8}
			}
			o := ItemOffsets{Bottom: 4}
			if r.IsFirst() {
				o.Top = 6
			}
			return o
		},
	}
}

//----------

func TestListViewLayout1(t *testing.T) {
	ta := &testAdapter{heights: []int{20, 20, 20}}
	lv := NewListView(nil, ta)
	lv.Bounds = image.Rect(0, 0, 100, 200)
	lv.AddItemDecoration(testEdgeDecoration())
	lv.Layout()

	rows := lv.Rows()
	if len(rows) != 3 {
		t.Fatal(len(rows))
	}
	if !(rows[0].Bounds == image.Rect(0, 6, 100, 26) &&
		rows[1].Bounds == image.Rect(0, 30, 100, 50) &&
		rows[2].Bounds == image.Rect(0, 54, 100, 74)) {
		t.Log(rows[0].Bounds, rows[1].Bounds, rows[2].Bounds)
		t.Fatal()
	}
	if lv.ContentHeight() != 82 {
		t.Fatal(lv.ContentHeight())
	}
	if rows[0].Offsets != (ItemOffsets{6, 4}) || rows[2].Offsets != (ItemOffsets{0, 8}) {
		t.Log(rows[0].Offsets, rows[2].Offsets)
		t.Fatal()
	}
	for i, r := range rows {
		if r.Position != i || r.Count != 3 {
			t.Fatal(r)
		}
	}
}

func TestListViewLayout2(t *testing.T) {
	ta := &testAdapter{heights: []int{10, 10}}
	lv := NewListView(nil, ta)
	lv.Bounds = image.Rect(10, 10, 110, 210)
	lv.Pad = Insets{Top: 2, Left: 5, Right: 5}
	lv.RowMargin = Insets{1, 3, 1, 3}
	lv.Layout()

	rows := lv.Rows()
	if !(rows[0].Bounds == image.Rect(18, 13, 102, 23) &&
		rows[1].Bounds == image.Rect(18, 25, 102, 35)) {
		t.Log(rows[0].Bounds, rows[1].Bounds)
		t.Fatal()
	}
	if lv.ContentHeight() != 26 {
		t.Fatal(lv.ContentHeight())
	}
	c := lv.Canvas()
	l, r := c.ContentX()
	if l != 15 || r != 105 {
		t.Fatal(l, r)
	}
}

func TestListViewScroll(t *testing.T) {
	ta := &testAdapter{heights: []int{20, 20, 20}}
	lv := NewListView(nil, ta)
	lv.Bounds = image.Rect(0, 0, 100, 40)
	lv.AddItemDecoration(testEdgeDecoration())
	lv.Layout()

	lv.SetScrollY(100)
	if lv.ScrollY() != 42 {
		t.Fatal(lv.ScrollY())
	}
	rows := lv.Rows()
	if rows[0].Bounds != image.Rect(0, -36, 100, -16) {
		t.Fatal(rows[0].Bounds)
	}
	vis := lv.VisibleRows()
	if len(vis) != 2 || vis[0].Position != 1 || vis[1].Position != 2 {
		t.Log(vis)
		t.Fatal()
	}

	// relayout keeps the scroll
	lv.Layout()
	if lv.Rows()[0].Bounds != image.Rect(0, -36, 100, -16) {
		t.Fatal(lv.Rows()[0].Bounds)
	}

	lv.ScrollBy(-1000)
	if lv.ScrollY() != 0 || lv.Rows()[0].Bounds != image.Rect(0, 6, 100, 26) {
		t.Fatal(lv.ScrollY(), lv.Rows()[0].Bounds)
	}
}

func TestListViewPaint(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	ta := &testAdapter{heights: []int{20, 20, 20}}
	lv := NewListView(&ImgContext{Img: img}, ta)
	lv.Bounds = image.Rect(0, 0, 100, 60)
	lv.Pad = Insets{Left: 4, Right: 6}

	var calls []int
	d := testEdgeDecoration()
	d.PaintFn = func(img draw.Image, c *ListCanvas, rows []*ListRow) {
		l, r := c.ContentX()
		if l != 4 || r != 94 {
			t.Fatal(l, r)
		}
		calls = append(calls, len(rows))
	}
	lv.AddItemDecoration(d)
	lv.Layout()
	lv.Paint()

	// third row starts at 54, still visible
	if len(ta.painted) != 3 {
		t.Fatal(ta.painted)
	}
	if len(calls) != 1 || calls[0] != 3 {
		t.Fatal(calls)
	}

	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}
	if img.RGBAAt(50, 10) != black {
		t.Fatal(img.RGBAAt(50, 10))
	}
	if img.RGBAAt(50, 27) != white { // reserved space under row 0
		t.Fatal(img.RGBAAt(50, 27))
	}
	if img.RGBAAt(50, 70) != (color.RGBA{}) { // outside the list bounds
		t.Fatal(img.RGBAAt(50, 70))
	}

	lv.RemoveItemDecoration(d)
	if len(lv.ItemDecorations()) != 0 {
		t.Fatal()
	}
}

package widget

import (
	"image/draw"
)

// Callbacks used by the list view on every layout and paint pass. Both run synchronously on the ui goroutine.
type ItemDecoration interface {
	// Space to reserve above and below the row. Called before the row bounds are known.
	ItemOffsets(row *ListRow) ItemOffsets
	// Called after the visible rows are painted, with the rows in the order they were laid out.
	PaintDecoration(img draw.Image, c *ListCanvas, rows []*ListRow)
}

//----------

type ItemDecorationFuncs struct {
	OffsetsFn func(*ListRow) ItemOffsets
	PaintFn   func(draw.Image, *ListCanvas, []*ListRow)
}

func (d *ItemDecorationFuncs) ItemOffsets(row *ListRow) ItemOffsets {
	if d.OffsetsFn == nil {
		return ItemOffsets{}
	}
	return d.OffsetsFn(row)
}
func (d *ItemDecorationFuncs) PaintDecoration(img draw.Image, c *ListCanvas, rows []*ListRow) {
	if d.PaintFn != nil {
		d.PaintFn(img, c, rows)
	}
}

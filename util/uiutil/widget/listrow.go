package widget

import (
	"image"
)

type Insets struct {
	Top, Right, Bottom, Left int
}

//----------

// Reserved space around a row, requested by item decorations during the measure pass.
type ItemOffsets struct {
	Top, Bottom int
}

func (o ItemOffsets) Add(u ItemOffsets) ItemOffsets {
	return ItemOffsets{o.Top + u.Top, o.Bottom + u.Bottom}
}

//----------

// Per-pass snapshot of a laid out row. Created by the list view on every layout and not reused across passes.
type ListRow struct {
	Type     int // adapter item type
	Position int // adapter position
	Count    int // adapter item count at layout time
	Bounds   image.Rectangle
	Margin   Insets

	Offsets ItemOffsets // sum of the decorations offsets, set after the measure pass
}

func (r *ListRow) IsFirst() bool {
	return r.Position == 0
}
func (r *ListRow) IsLast() bool {
	return r.Position == r.Count-1
}

// Position and count are consistent.
func (r *ListRow) Valid() bool {
	return r.Count > 0 && r.Position >= 0 && r.Position < r.Count
}

// Bounds including the margins and the reserved offsets.
func (r *ListRow) OuterBounds() image.Rectangle {
	u := r.Bounds
	u.Min.Y -= r.Margin.Top + r.Offsets.Top
	u.Max.Y += r.Margin.Bottom + r.Offsets.Bottom
	return u
}

//----------

// Paint area given to decorations.
type ListCanvas struct {
	Bounds            image.Rectangle
	PadLeft, PadRight int
}

// Horizontal span of the content, independent of the rows margins.
func (c *ListCanvas) ContentX() (int, int) {
	return c.Bounds.Min.X + c.PadLeft, c.Bounds.Max.X - c.PadRight
}

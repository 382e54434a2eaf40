package divider

import (
	"image"
	"image/draw"

	"github.com/jmigpin/listdivider/util/uiutil/widget"
)

type BoxKind int

const (
	TypeBox BoxKind = iota
	FirstBox
	LastBox
)

func (k BoxKind) String() string {
	switch k {
	case TypeBox:
		return "type"
	case FirstBox:
		return "first"
	case LastBox:
		return "last"
	}
	return "?"
}

//----------

// Paint area of one divider.
type Box struct {
	Row     *widget.ListRow
	Kind    BoxKind
	Graphic Graphic
	Rect    image.Rectangle
}

//----------

// Immutable, safe to share between list views on the same goroutine.
type Decorator struct {
	types         map[int]Graphic
	first, last   Graphic
	stopAfterLast bool
}

var _ widget.ItemDecoration = (*Decorator)(nil)

func (d *Decorator) Type(t int) Graphic {
	return d.types[t]
}
func (d *Decorator) First() Graphic {
	return d.first
}
func (d *Decorator) Last() Graphic {
	return d.last
}

//----------

// The last row only reserves space for the last divider, even if it is also the first row.
func (d *Decorator) ItemOffsets(row *widget.ListRow) widget.ItemOffsets {
	o := widget.ItemOffsets{}
	if !row.Valid() {
		Logf("invalid row: pos=%v count=%v", row.Position, row.Count)
		return o
	}

	if row.IsLast() {
		if d.last != nil {
			o.Bottom = thickness(d.last)
		}
		return o
	}

	if g, ok := d.types[row.Type]; ok {
		o.Bottom = thickness(g)
	}
	if row.IsFirst() && d.first != nil {
		o.Top = thickness(d.first)
	}
	return o
}

//----------

// Dividers of the given rows, in row order. Type dividers go below the row, the first divider above it. The last row only gets the last divider.
func (d *Decorator) Boxes(c *widget.ListCanvas, rows []*widget.ListRow) []Box {
	left, right := c.ContentX()
	below := func(row *widget.ListRow, k BoxKind, g Graphic) Box {
		top := row.Bounds.Max.Y + row.Margin.Bottom
		r := image.Rect(left, top, right, top+thickness(g))
		return Box{Row: row, Kind: k, Graphic: g, Rect: r}
	}

	var boxes []Box
	for _, row := range rows {
		if !row.Valid() {
			Logf("invalid row: pos=%v count=%v", row.Position, row.Count)
			continue
		}

		if row.IsLast() {
			if d.last != nil {
				boxes = append(boxes, below(row, LastBox, d.last))
			}
			if d.stopAfterLast {
				break
			}
			continue
		}

		if g, ok := d.types[row.Type]; ok {
			boxes = append(boxes, below(row, TypeBox, g))
		}

		if row.IsFirst() && d.first != nil {
			bottom := row.Bounds.Min.Y - row.Margin.Top
			r := image.Rect(left, bottom-thickness(d.first), right, bottom)
			boxes = append(boxes, Box{Row: row, Kind: FirstBox, Graphic: d.first, Rect: r})
		}
	}
	return boxes
}

func (d *Decorator) PaintDecoration(img draw.Image, c *widget.ListCanvas, rows []*widget.ListRow) {
	boxes := d.Boxes(c, rows)
	if Debug {
		Dump(boxes)
	}
	for _, b := range boxes {
		b.Graphic.Paint(img, b.Rect)
	}
}

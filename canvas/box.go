// Package canvas composites positioned, prioritised boxes into a single
// frame for a small display.
//
// A Canvas owns every box it holds, keyed by a caller chosen id. Boxes are
// either image boxes, which wrap a caller supplied picture, or text boxes,
// which render their own picture from text and a TextStyle. Flatten paints
// the visible boxes over the background in ascending priority order.
//
// A Canvas is not safe for concurrent use.
package canvas

import (
	"fmt"
	"image"
)

// Kind tags the box variants.
type Kind int

const (
	KindImage Kind = iota
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "ImageBox"
	case KindText:
		return "TextBox"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Box is a rectangular raster positioned on a canvas. The set of
// implementations is closed: *ImageBox and *TextBox.
type Box interface {
	Kind() Kind

	// Position is the top-left corner of the box in canvas coordinates.
	// It may lie partly or wholly outside the canvas.
	Position() image.Point

	// Size is derived from the box content.
	Size() image.Point

	Priority() int
	Visible() bool

	// Raster returns the box's pixels, sized exactly to Size with origin
	// (0, 0). The buffer belongs to the box; callers must not modify it.
	Raster() *image.RGBA

	base() *boxBase
}

// boxBase holds the state shared by all box variants.
type boxBase struct {
	position image.Point
	size     image.Point
	priority int
	visible  bool
	raster   *image.RGBA
}

func (b *boxBase) Position() image.Point { return b.position }
func (b *boxBase) Size() image.Point     { return b.size }
func (b *boxBase) Priority() int         { return b.priority }
func (b *boxBase) Visible() bool         { return b.visible }
func (b *boxBase) Raster() *image.RGBA   { return b.raster }
func (b *boxBase) base() *boxBase        { return b }

// shift moves the box by d.
func (b *boxBase) shift(d image.Point) {
	b.position = b.position.Add(d)
}

// align moves the box to an edge or the centre of a canvas of size cs.
func (b *boxBase) align(cs image.Point, h HAlign, v VAlign) {
	switch h {
	case Left:
		b.position.X = 0
	case Center:
		b.position.X = floorDiv(cs.X-b.size.X, 2)
	case Right:
		b.position.X = cs.X - b.size.X
	}

	switch v {
	case Top:
		b.position.Y = 0
	case Middle:
		b.position.Y = floorDiv(cs.Y-b.size.Y, 2)
	case Bottom:
		b.position.Y = cs.Y - b.size.Y
	}
}

// invert replaces every colour channel c with its inverse, leaving alpha
// alone. Pixels are premultiplied so the inverse of c under alpha a is
// a-c, which makes invert its own inverse.
func (b *boxBase) invert() {
	p := b.raster.Pix
	for i := 0; i+3 < len(p); i += 4 {
		a := p[i+3]
		p[i+0] = a - p[i+0]
		p[i+1] = a - p[i+1]
		p[i+2] = a - p[i+2]
	}
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

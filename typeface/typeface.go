// Package typeface measures and draws multi-line text onto Go images.
//
// A Face wraps a golang.org/x/image/font.Face. Lines are separated by '\n'
// and laid out top to bottom with a caller supplied gap between them.
package typeface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Align positions each line of a multi-line string within the width of the
// widest line.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return fmt.Sprintf("Align(%d)", int(a))
}

// Valid reports whether a is one of the defined alignments.
func (a Align) Valid() bool {
	return a >= AlignLeft && a <= AlignRight
}

// ParseAlign converts "left", "center" or "right" into an Align.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(s) {
	case "left", "":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("unknown text alignment %q", s)
}

// Face is the text capability used by text boxes.
type Face interface {
	// Name identifies the face in logs and dumps.
	Name() string

	// Height is the height of a single line in pixels.
	Height() int

	// Measure returns the extent of text, accounting for every line and
	// spacing extra pixels between consecutive lines.
	Measure(text string, spacing int) image.Point

	// Draw renders text with its top-left corner at at.
	Draw(dst draw.Image, at image.Point, text string, c color.Color, spacing int, align Align)
}

// face implements Face over an x/image font face.
type face struct {
	name   string
	f      font.Face
	ascent int
	height int
}

var _ = Face((*face)(nil))

// New wraps f as a Face.
func New(name string, f font.Face) Face {
	m := f.Metrics()
	ascent := m.Ascent.Ceil()
	return &face{
		name:   name,
		f:      f,
		ascent: ascent,
		height: ascent + m.Descent.Ceil(),
	}
}

func (fc *face) Name() string { return fc.name }
func (fc *face) Height() int  { return fc.height }

func (fc *face) Measure(text string, spacing int) image.Point {
	lines := Lines(text)
	w := 0
	for _, l := range lines {
		if lw := font.MeasureString(fc.f, l).Ceil(); lw > w {
			w = lw
		}
	}
	return image.Pt(w, BlockHeight(len(lines), fc.height, spacing))
}

func (fc *face) Draw(dst draw.Image, at image.Point, text string, c color.Color, spacing int, align Align) {
	lines := Lines(text)
	widths := make([]int, len(lines))
	maxw := 0
	for i, l := range lines {
		widths[i] = font.MeasureString(fc.f, l).Ceil()
		if widths[i] > maxw {
			maxw = widths[i]
		}
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: fc.f,
	}
	for i, l := range lines {
		x := at.X + AlignOffset(align, widths[i], maxw)
		y := at.Y + i*(fc.height+spacing) + fc.ascent
		d.Dot = fixed.P(x, y)
		d.DrawString(l)
	}
}

// Lines splits text into the lines a Face lays out. There is always at
// least one line.
func Lines(text string) []string {
	return strings.Split(text, "\n")
}

// BlockHeight is the pixel height of n lines of height lh separated by
// spacing pixels.
func BlockHeight(n, lh, spacing int) int {
	if n <= 0 {
		return 0
	}
	return n*lh + (n-1)*spacing
}

// AlignOffset returns the x offset of a line of width w inside a block of
// width maxw.
func AlignOffset(align Align, w, maxw int) int {
	switch align {
	case AlignCenter:
		return (maxw - w) / 2
	case AlignRight:
		return maxw - w
	}
	return 0
}

package osdtest

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"
	"unicode/utf8"

	"github.com/rjkroege/picroscope/typeface"
)

var _ = typeface.Face((*mockFace)(nil))

// mockFace implements typeface.Face as a fixed-width font whose glyphs
// are solid cells. Spaces leave their cell empty.
type mockFace struct {
	width, height int

	mu      sync.Mutex
	drawops []string
}

// NewFace returns a typeface.Face with width x height pixel glyph cells.
func NewFace(width, height int) typeface.Face {
	return &mockFace{
		width:  width,
		height: height,
	}
}

func (f *mockFace) Name() string { return fmt.Sprintf("mock%dx%d", f.width, f.height) }
func (f *mockFace) Height() int  { return f.height }

func (f *mockFace) Measure(text string, spacing int) image.Point {
	lines := typeface.Lines(text)
	w := 0
	for _, l := range lines {
		if lw := f.width * utf8.RuneCountInString(l); lw > w {
			w = lw
		}
	}
	return image.Pt(w, typeface.BlockHeight(len(lines), f.height, spacing))
}

func (f *mockFace) Draw(dst draw.Image, at image.Point, text string, c color.Color, spacing int, align typeface.Align) {
	f.mu.Lock()
	f.drawops = append(f.drawops, fmt.Sprintf("string %q atpoint: %v align: %v", text, at, align))
	f.mu.Unlock()

	lines := typeface.Lines(text)
	maxw := f.Measure(text, spacing).X
	src := image.NewUniform(c)
	for i, l := range lines {
		w := f.width * utf8.RuneCountInString(l)
		x := at.X + typeface.AlignOffset(align, w, maxw)
		y := at.Y + i*(f.height+spacing)
		for _, r := range l {
			if r != ' ' {
				cell := image.Rect(x, y, x+f.width, y+f.height)
				draw.Draw(dst, cell, src, image.Point{}, draw.Over)
			}
			x += f.width
		}
	}
}

// FaceDrawOps returns the strings drawn with a face made by NewFace.
func FaceDrawOps(f typeface.Face) []string {
	mf := f.(*mockFace)
	mf.mu.Lock()
	defer mf.mu.Unlock()
	ops := make([]string, len(mf.drawops))
	copy(ops, mf.drawops)
	return ops
}

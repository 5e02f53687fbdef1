// Package osdtest contains test doubles for the OSD packages: a recording
// draw.Display, a fixed-width typeface.Face and a recording canvas.Sink.
package osdtest

import (
	"fmt"
	"image"
	"sync"

	"github.com/rjkroege/picroscope/draw"
)

var _ = draw.Display((*mockDisplay)(nil))

// GettableDrawOps display implementations can provide a list of the
// executed draw ops.
type GettableDrawOps interface {
	DrawOps() []string
	Clear()
}

// mockDisplay implements draw.Display.
type mockDisplay struct {
	mu          sync.Mutex
	drawops     []string
	screenimage *mockImage
	flushes     int
}

// NewDisplay returns a mock draw.Display whose screen image has bounds r.
func NewDisplay(r image.Rectangle) draw.Display {
	md := &mockDisplay{}
	md.screenimage = &mockImage{d: md, n: "screen", c: draw.Notacolor, r: r}
	return md
}

func (d *mockDisplay) ScreenImage() draw.Image { return d.screenimage }

func (d *mockDisplay) White() draw.Image {
	return &mockImage{d: d, n: "white", c: draw.White}
}

func (d *mockDisplay) Black() draw.Image {
	return &mockImage{d: d, n: "black", c: draw.Black}
}

func (d *mockDisplay) InitKeyboard() *draw.Keyboardctl { return &draw.Keyboardctl{} }
func (d *mockDisplay) InitMouse() *draw.Mousectl       { return &draw.Mousectl{} }

func (d *mockDisplay) AllocImage(r image.Rectangle, pix draw.Pix, repl bool, val draw.Color) (draw.Image, error) {
	if r.Empty() {
		return nil, fmt.Errorf("allocimage: empty rectangle %v", r)
	}
	d.record(fmt.Sprintf("alloc %v", r))
	return &mockImage{
		d:    d,
		n:    fmt.Sprintf("img-%v", r),
		r:    r,
		c:    val,
		pix:  pix,
		repl: repl,
	}, nil
}

func (d *mockDisplay) Attach(ref int) error { return nil }

func (d *mockDisplay) Flush() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.flushes++
	d.drawops = append(d.drawops, "flush")
	return nil
}

func (d *mockDisplay) DrawOps() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	ops := make([]string, len(d.drawops))
	copy(ops, d.drawops)
	return ops
}

func (d *mockDisplay) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drawops = nil
}

func (d *mockDisplay) record(op string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drawops = append(d.drawops, op)
}

var _ = draw.Image((*mockImage)(nil))

// mockImage implements draw.Image. Loaded pixel data is kept so that tests
// can check what would have reached the window.
type mockImage struct {
	d    *mockDisplay
	n    string
	r    image.Rectangle
	c    draw.Color
	pix  draw.Pix
	repl bool
	data []byte
}

func (i *mockImage) Display() draw.Display { return i.d }
func (i *mockImage) Pix() draw.Pix         { return i.pix }
func (i *mockImage) R() image.Rectangle    { return i.r }

func (i *mockImage) Draw(r image.Rectangle, src, mask draw.Image, p1 image.Point) {
	srcname := "nil"
	if msrc, ok := src.(*mockImage); ok {
		srcname = msrc.n
	}
	maskname := "nil"
	if mmask, ok := mask.(*mockImage); ok {
		maskname = mmask.n
	}
	i.d.record(fmt.Sprintf("%s <- draw r: %v src: %s mask %s p1: %v", i.n, r, srcname, maskname, p1))
}

func (i *mockImage) Free() error {
	i.d.record(fmt.Sprintf("free %s", i.n))
	return nil
}

func (i *mockImage) Load(r image.Rectangle, data []byte) (int, error) {
	if !r.In(i.r) {
		return 0, fmt.Errorf("load: %v outside %v", r, i.r)
	}
	i.data = append(i.data[:0], data...)
	i.d.record(fmt.Sprintf("%s <- load r: %v bytes: %d", i.n, r, len(data)))
	return len(data), nil
}

// LoadedBytes returns the pixel data last loaded into img, which must come
// from a display made by NewDisplay.
func LoadedBytes(img draw.Image) []byte {
	return img.(*mockImage).data
}

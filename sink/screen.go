// Package sink provides the outputs a flattened canvas can be presented
// to: a devdraw window, PNG files, and small LCD panels.
package sink

import (
	"fmt"
	"image"

	"github.com/rjkroege/picroscope/canvas"
	"github.com/rjkroege/picroscope/draw"
	xdraw "golang.org/x/image/draw"
)

var _ = canvas.Sink((*Screen)(nil))

// Screen shows frames centred in a devdraw window, each pixel blown up to
// a zoom x zoom square so that tiny LCD sized canvases stay legible.
type Screen struct {
	display draw.Display
	zoom    int

	frame draw.Image // devdraw copy of the last frame
	last  *image.RGBA
}

// NewScreen returns a Screen drawing on d.
func NewScreen(d draw.Display, zoom int) *Screen {
	if zoom < 1 {
		zoom = 1
	}
	return &Screen{
		display: d,
		zoom:    zoom,
	}
}

// OpenScreen opens a window big enough for a canvas of size at the given
// zoom. Asynchronous display errors are sent to errch.
func OpenScreen(errch chan<- error, label string, size image.Point, zoom int) (*Screen, error) {
	if zoom < 1 {
		zoom = 1
	}
	winsize := fmt.Sprintf("%dx%d", size.X*zoom, size.Y*zoom)
	d, err := new(draw.Device).NewDisplay(errch, "", label, winsize)
	if err != nil {
		return nil, fmt.Errorf("can't open display: %w", err)
	}
	return NewScreen(d, zoom), nil
}

// Display returns the window's display, for reading mouse and keyboard.
func (s *Screen) Display() draw.Display { return s.display }

// Clear paints the window black.
func (s *Screen) Clear() error {
	screen := s.display.ScreenImage()
	screen.Draw(screen.R(), s.display.Black(), nil, image.Point{})
	return s.display.Flush()
}

// Show converts img to a devdraw image and draws it in the middle of the
// window.
func (s *Screen) Show(img image.Image) error {
	src := zoomed(img, s.zoom)
	r := src.Bounds()
	if s.frame == nil || s.frame.R() != r {
		if s.frame != nil {
			s.frame.Free()
			s.frame = nil
		}
		f, err := s.display.AllocImage(r, draw.RGBA32, false, draw.Transparent)
		if err != nil {
			return fmt.Errorf("screen: allocimage %v: %w", r, err)
		}
		s.frame = f
	}
	if _, err := s.frame.Load(r, draw.RGBA32Bytes(src)); err != nil {
		return fmt.Errorf("screen: load: %w", err)
	}
	s.last = src

	screen := s.display.ScreenImage()
	sr := screen.R()
	off := sr.Min.Add(sr.Size().Sub(r.Size()).Div(2))
	screen.Draw(sr, s.display.Black(), nil, image.Point{})
	screen.Draw(r.Add(off), s.frame, nil, image.Point{})
	return s.display.Flush()
}

// Resize reattaches to the window after the user has resized it and
// redraws the last frame.
func (s *Screen) Resize() error {
	if err := s.display.Attach(draw.Refnone); err != nil {
		return fmt.Errorf("failed to attach to window: %w", err)
	}
	if s.last == nil {
		return s.Clear()
	}
	return s.Show(s.last)
}

// zoomed returns img scaled by an integer factor with nearest neighbour
// sampling, its origin moved to (0, 0).
func zoomed(img image.Image, zoom int) *image.RGBA {
	sr := img.Bounds()
	dst := image.NewRGBA(image.Rectangle{Max: sr.Size().Mul(zoom)})
	if zoom == 1 {
		xdraw.Copy(dst, image.Point{}, img, sr, xdraw.Src, nil)
		return dst
	}
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, sr, xdraw.Src, nil)
	return dst
}

package osdtest

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Sink records the frames shown to it. Set Err to make every call fail.
type Sink struct {
	Frames []*image.RGBA
	Clears int
	Err    error
}

func (s *Sink) Clear() error {
	if s.Err != nil {
		return s.Err
	}
	s.Clears++
	return nil
}

// Show keeps a private copy of img.
func (s *Sink) Show(img image.Image) error {
	if s.Err != nil {
		return s.Err
	}
	cp := image.NewRGBA(img.Bounds())
	xdraw.Copy(cp, cp.Bounds().Min, img, img.Bounds(), xdraw.Src, nil)
	s.Frames = append(s.Frames, cp)
	return nil
}

// Last returns the most recent frame or nil.
func (s *Sink) Last() *image.RGBA {
	if len(s.Frames) == 0 {
		return nil
	}
	return s.Frames[len(s.Frames)-1]
}

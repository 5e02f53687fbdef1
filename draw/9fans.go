package draw

import (
	draw "9fans.net/go/draw"
)

const (
	Refnone = draw.Refnone

	KeyDelete = 0x7F
	KeyEscape = 0x1B
	KeyF1     = 0xF001

	Black       = draw.Black
	Notacolor   = draw.Notacolor
	Transparent = draw.Transparent
	White       = draw.White
)

// RGBA32 is the pixel format frames are loaded in.
var RGBA32 = draw.RGBA32

type (
	Color       = draw.Color
	drawDisplay = draw.Display
	drawImage   = draw.Image
	Keyboardctl = draw.Keyboardctl
	Mousectl    = draw.Mousectl
	Mouse       = draw.Mouse
	Pix         = draw.Pix
)

var Init = draw.Init

type Device struct{}

// NewDisplay opens a devdraw window of winsize ("WxH") titled label.
func (dev *Device) NewDisplay(errch chan<- error, fontname, label, winsize string) (Display, error) {
	d, err := Init(errch, fontname, label, winsize)
	if err != nil {
		return nil, err
	}
	return &displayImpl{d}, nil
}

// Package lcd drives a PCD8544 (Nokia 5110) 84x48 monochrome panel.
//
// The controller is write only: commands and pixel data go over SPI, with
// a separate D/C line selecting which one a byte is. The display RAM is six
// banks of 84 bytes; each byte is a column of eight pixels, LSB on top.
package lcd

import (
	"fmt"
	"image"
	"image/color"
	"time"

	xdraw "golang.org/x/image/draw"
)

const (
	Width  = 84
	Height = 48
	Banks  = Height / 8
)

// Controller commands.
const (
	cmdFunctionSet    = 0x20
	cmdExtended       = 0x01
	cmdDisplayControl = 0x08
	cmdDisplayNormal  = 0x04
	cmdSetYAddr       = 0x40
	cmdSetXAddr       = 0x80

	// extended instruction set
	cmdSetBias = 0x10
	cmdSetVop  = 0x80
)

// Threshold is the luminance below which a pixel is drawn dark.
const Threshold = 0x80

// bus is the wire to the controller.
type bus interface {
	// command sends bytes with D/C low.
	command(b ...byte) error
	// data sends bytes with D/C high.
	data(b []byte) error
	// reset pulses the RST line.
	reset() error
	Close() error
}

// PCD8544 buffers one frame and sends it to the panel on Display.
type PCD8544 struct {
	bus      bus
	contrast uint8
	bias     uint8
	buf      [Width * Banks]byte
}

func newPCD8544(b bus, cfg Config) (*PCD8544, error) {
	d := &PCD8544{
		bus:      b,
		contrast: cfg.Contrast,
		bias:     cfg.Bias,
	}
	if err := d.init(); err != nil {
		b.Close()
		return nil, err
	}
	return d, nil
}

func (d *PCD8544) init() error {
	if err := d.bus.reset(); err != nil {
		return fmt.Errorf("lcd: reset: %w", err)
	}
	err := d.bus.command(
		cmdFunctionSet|cmdExtended,
		cmdSetBias|(d.bias&0x07),
		cmdSetVop|(d.contrast&0x7f),
		cmdFunctionSet,
		cmdDisplayControl|cmdDisplayNormal,
	)
	if err != nil {
		return fmt.Errorf("lcd: init: %w", err)
	}
	return nil
}

// SetContrast changes the operating voltage, 0 to 127.
func (d *PCD8544) SetContrast(v uint8) error {
	d.contrast = v & 0x7f
	return d.bus.command(cmdFunctionSet|cmdExtended, cmdSetVop|d.contrast, cmdFunctionSet)
}

// Clear blanks the buffer. The panel keeps showing the old frame until
// Display.
func (d *PCD8544) Clear() error {
	d.buf = [Width * Banks]byte{}
	return nil
}

// Image loads img into the buffer. Images of another size are scaled to
// fit, keeping their aspect ratio, and centred on a light background.
func (d *PCD8544) Image(img image.Image) error {
	d.buf = pack(fit(img))
	return nil
}

// Display sends the buffer to the panel.
func (d *PCD8544) Display() error {
	if err := d.bus.command(cmdSetYAddr, cmdSetXAddr); err != nil {
		return fmt.Errorf("lcd: display: %w", err)
	}
	if err := d.bus.data(d.buf[:]); err != nil {
		return fmt.Errorf("lcd: display: %w", err)
	}
	return nil
}

// Close releases the SPI device and GPIO lines.
func (d *PCD8544) Close() error {
	return d.bus.Close()
}

// fit scales img into a Width x Height image.
func fit(img image.Image) image.Image {
	sr := img.Bounds()
	if sr.Dx() == Width && sr.Dy() == Height {
		return img
	}
	dst := image.NewGray(image.Rect(0, 0, Width, Height))
	xdraw.Draw(dst, dst.Bounds(), image.White, image.Point{}, xdraw.Src)
	if sr.Empty() {
		return dst
	}

	w, h := Width, sr.Dy()*Width/sr.Dx()
	if h > Height {
		w, h = sr.Dx()*Height/sr.Dy(), Height
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	x, y := (Width-w)/2, (Height-h)/2
	xdraw.ApproxBiLinear.Scale(dst, image.Rect(x, y, x+w, y+h), img, sr, xdraw.Over, nil)
	return dst
}

// pack thresholds the top left Width x Height pixels of img into the
// controller's bank layout. A set bit is a dark pixel.
func pack(img image.Image) [Width * Banks]byte {
	var buf [Width * Banks]byte
	r := img.Bounds()
	for y := 0; y < Height && y < r.Dy(); y++ {
		for x := 0; x < Width && x < r.Dx(); x++ {
			g := color.GrayModel.Convert(img.At(r.Min.X+x, r.Min.Y+y)).(color.Gray)
			if g.Y < Threshold {
				buf[x+(y/8)*Width] |= 1 << uint(y%8)
			}
		}
	}
	return buf
}

// Config describes how the panel is wired.
type Config struct {
	// Device is the spidev node, e.g. /dev/spidev0.0.
	Device  string
	SpeedHz uint32

	// DC and RST are GPIO line numbers.
	DC  int
	RST int

	Contrast uint8
	Bias     uint8

	// ResetPulse is how long RST is held low.
	ResetPulse time.Duration
}

// DefaultConfig matches the usual Raspberry Pi wiring.
func DefaultConfig() Config {
	return Config{
		Device:     "/dev/spidev0.0",
		SpeedHz:    4000000,
		DC:         23,
		RST:        24,
		Contrast:   60,
		Bias:       4,
		ResetPulse: 100 * time.Millisecond,
	}
}

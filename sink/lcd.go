package sink

import (
	"image"

	"github.com/rjkroege/picroscope/canvas"
)

var (
	_ = canvas.Sink((*LCDSink)(nil))
	_ = canvas.Sink((*Discard)(nil))
)

// LCD is a panel driver that buffers an image and pushes it to the glass on
// Display. lcd.PCD8544 is one.
type LCD interface {
	Clear() error
	Image(img image.Image) error
	Display() error
}

// LCDSink presents frames on an LCD panel.
type LCDSink struct {
	dev LCD
}

// NewLCD returns a sink for dev.
func NewLCD(dev LCD) *LCDSink {
	return &LCDSink{dev: dev}
}

// Clear blanks the panel.
func (s *LCDSink) Clear() error {
	if err := s.dev.Clear(); err != nil {
		return err
	}
	return s.dev.Display()
}

// Show loads img into the panel buffer and refreshes the panel.
func (s *LCDSink) Show(img image.Image) error {
	if err := s.dev.Image(img); err != nil {
		return err
	}
	return s.dev.Display()
}

// Discard drops frames, counting them. Used for dry runs.
type Discard struct {
	Frames int
}

func (d *Discard) Clear() error { return nil }

func (d *Discard) Show(img image.Image) error {
	d.Frames++
	return nil
}

package sink

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/rjkroege/picroscope/canvas"
)

var _ = canvas.Sink((*PNG)(nil))

// PNG writes every frame to a file. If Path contains a printf verb such as
// "frame-%03d.png" each frame gets its own file numbered from 0; otherwise
// the file is overwritten.
type PNG struct {
	Path string

	n int
}

// Clear does nothing: there is no persistent surface to blank.
func (p *PNG) Clear() error { return nil }

// Show encodes img into the next file. The file is written under a
// temporary name and renamed so readers never see a partial image.
func (p *PNG) Show(img image.Image) error {
	path := p.Path
	if strings.Contains(path, "%") {
		path = fmt.Sprintf(path, p.n)
	}
	p.n++

	tmp, err := os.CreateTemp(filepath.Dir(path), ".osd-*.png")
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("png: encoding %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("png: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("png: %w", err)
	}
	return nil
}

// Frames returns how many frames have been written.
func (p *PNG) Frames() int { return p.n }

// Package panel lays the camera settings out on a canvas as an overlay:
// one framed row per parameter, its label on the left and its value in the
// middle.
package panel

import (
	"image"
	"image/color"
	"strings"

	"github.com/rjkroege/picroscope/canvas"
	"github.com/rjkroege/picroscope/settings"
	"github.com/rjkroege/picroscope/typeface"
	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"
)

// backgroundID is the panel's own box. Every other panel box id starts
// with it and a dot.
const backgroundID = "panel"

// Priorities put the panel above scene boxes, text above the rows and the
// rows above the background.
const (
	backgroundPriority = 100 + iota
	rowPriority
	textPriority
)

var (
	// BackgroundColor is dark blue at half opacity, premultiplied, so the
	// picture underneath shows through.
	BackgroundColor = color.RGBA{0, 0, 0x45, 0x80}
	RowColor        = colornames.Blue
	OutlineColor    = colornames.White
	LabelColor      = colornames.Red
	ValueColor      = colornames.Orange
)

// Panel owns the boxes it adds to a canvas. Boxes added by others are
// left alone.
type Panel struct {
	c    *canvas.Canvas
	face typeface.Face

	names []string // parameters shown, in row order
}

// New returns a panel drawing on c with face. A nil face uses the canvas
// default.
func New(c *canvas.Canvas, face typeface.Face) *Panel {
	if face == nil {
		face = canvas.DefaultFace
	}
	return &Panel{c: c, face: face}
}

// Margin is the gap around and between rows.
func (p *Panel) Margin() int {
	m := p.c.Size().X / 32
	if m < 1 {
		m = 1
	}
	return m
}

// Row returns the rectangle of row i when n rows are shown.
func (p *Panel) Row(i, n int) image.Rectangle {
	size := p.c.Size()
	m := p.Margin()
	h := (size.Y - m*(n+1)) / n
	if h < 1 {
		h = 1
	}
	y := m*(i+1) + h*i
	return image.Rect(m, y, size.X-m, y+h)
}

// Update shows params, one per row. Rows for parameters that are no
// longer present are removed.
func (p *Panel) Update(params []settings.Param) error {
	if !sameNames(p.names, params) {
		if err := p.Remove(); err != nil {
			return err
		}
	}
	if len(params) == 0 {
		return nil
	}

	size := p.c.Size()
	bg := framed(image.Rectangle{Max: size}, BackgroundColor)
	if err := p.put(backgroundID, bg, image.Point{}, backgroundPriority); err != nil {
		return err
	}

	m := p.Margin()
	for i, prm := range params {
		r := p.Row(i, len(params))
		if err := p.put(rowID(prm.Name), framed(image.Rectangle{Max: r.Size()}, RowColor), r.Min, rowPriority); err != nil {
			return err
		}

		label := settings.FormatLabel(prm.Name)
		lsz, err := p.text(labelID(prm.Name), label, LabelColor)
		if err != nil {
			return err
		}
		y := r.Min.Y + (r.Dy()-lsz.Y)/2
		if err := p.c.SetPosition(labelID(prm.Name), image.Pt(r.Min.X+m, y)); err != nil {
			return err
		}

		vsz, err := p.text(valueID(prm.Name), prm.Value, ValueColor)
		if err != nil {
			return err
		}
		if err := p.c.SetPosition(valueID(prm.Name), image.Pt((size.X-vsz.X)/2, y)); err != nil {
			return err
		}
	}

	p.names = p.names[:0]
	for _, prm := range params {
		p.names = append(p.names, prm.Name)
	}
	return nil
}

// Remove deletes every box the panel added.
func (p *Panel) Remove() error {
	if len(p.names) == 0 {
		return nil
	}
	ids := []string{backgroundID}
	for _, n := range p.names {
		ids = append(ids, rowID(n), labelID(n), valueID(n))
	}
	for _, id := range ids {
		if err := p.c.DeleteBox(id); err != nil {
			return err
		}
	}
	p.names = nil
	return nil
}

// put adds or replaces an image box and places it.
func (p *Panel) put(id string, img image.Image, at image.Point, priority int) error {
	if _, err := p.c.Box(id); err != nil {
		if err := p.c.AddImageBox(id, img, priority); err != nil {
			return err
		}
	} else if err := p.c.EditImageBox(id, img); err != nil {
		return err
	}
	return p.c.SetPosition(id, at)
}

// text adds or edits a text box and returns its size.
func (p *Panel) text(id, s string, c color.Color) (image.Point, error) {
	opts := []canvas.TextOption{
		canvas.WithText(s),
		canvas.WithTextColor(c),
		canvas.WithFace(p.face),
		canvas.WithPadding(0),
		canvas.WithPriority(textPriority),
	}
	var err error
	if _, lerr := p.c.Box(id); lerr != nil {
		err = p.c.AddTextBox(id, s, opts...)
	} else {
		err = p.c.EditTextBox(id, opts...)
	}
	if err != nil {
		return image.Point{}, err
	}
	b, err := p.c.Box(id)
	if err != nil {
		return image.Point{}, err
	}
	return b.Size(), nil
}

// framed returns a rectangle of fill outlined by a one pixel stroke.
func framed(r image.Rectangle, fill color.Color) *image.RGBA {
	img := image.NewRGBA(r)
	xdraw.Draw(img, r, image.NewUniform(OutlineColor), image.Point{}, xdraw.Src)
	xdraw.Draw(img, r.Inset(1), image.NewUniform(fill), image.Point{}, xdraw.Src)
	return img
}

func sameNames(names []string, params []settings.Param) bool {
	if len(names) != len(params) {
		return false
	}
	for i := range names {
		if names[i] != params[i].Name {
			return false
		}
	}
	return true
}

// Reserved reports whether id is one the panel may use. Boxes placed on
// the same canvas by others must avoid these ids.
func Reserved(id string) bool {
	return id == backgroundID || strings.HasPrefix(id, backgroundID+".")
}

func rowID(name string) string   { return "panel.row." + name }
func labelID(name string) string { return "panel.label." + name }
func valueID(name string) string { return "panel.value." + name }

package canvas

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// TextBox renders its own picture from a TextStyle and sizes itself to fit
// the text.
type TextBox struct {
	boxBase
	style TextStyle
}

var _ = Box((*TextBox)(nil))

func newTextBox(text string, opts []TextOption) (*TextBox, error) {
	st := DefaultTextStyle()
	st.Text = text
	for _, o := range opts {
		o(&st)
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}

	b := &TextBox{
		boxBase: boxBase{visible: true},
	}
	b.commit(st)
	return b, nil
}

func (b *TextBox) Kind() Kind { return KindText }

// Style returns the current properties. The priority reflects any
// Canvas.SetPriority since the last edit.
func (b *TextBox) Style() TextStyle {
	st := b.style
	st.Priority = b.priority
	return st
}

// Text returns the current text.
func (b *TextBox) Text() string { return b.style.Text }

// edit applies opts over the current style. Nothing changes if the result
// is invalid.
func (b *TextBox) edit(opts []TextOption) error {
	st := b.Style()
	for _, o := range opts {
		o(&st)
	}
	if err := st.Validate(); err != nil {
		return err
	}
	b.commit(st)
	return nil
}

func (b *TextBox) commit(st TextStyle) {
	b.style = st
	b.priority = st.Priority
	b.redraw()
}

// redraw rebuilds the raster from the style. Any change of text, face,
// spacing, padding or frame width changes the size.
func (b *TextBox) redraw() {
	st := &b.style
	inset := st.Padding + st.FrameWidth
	m := st.Face.Measure(st.Text, st.Spacing)
	size := m.Add(image.Pt(2*inset, 2*inset))

	img := image.NewRGBA(image.Rectangle{Max: size})
	if st.BoxColor != nil {
		xdraw.Draw(img, img.Bounds(), image.NewUniform(st.BoxColor), image.Point{}, xdraw.Src)
	}
	st.Face.Draw(img, image.Pt(inset, inset), st.Text, st.TextColor, st.Spacing, st.Align)
	drawFrame(img, st.FrameWidth, st.TextColor)

	b.size = size
	b.raster = img
}

// drawFrame draws width concentric one pixel strokes flush with the
// edges of img.
func drawFrame(img *image.RGBA, width int, c color.Color) {
	src := image.NewUniform(c)
	r := img.Bounds()
	w, h := r.Dx(), r.Dy()
	stroke := func(sr image.Rectangle) {
		xdraw.Draw(img, sr, src, image.Point{}, xdraw.Src)
	}
	for i := 0; i < width; i++ {
		stroke(image.Rect(i, 0, i+1, h))     // left
		stroke(image.Rect(0, i, w, i+1))     // top
		stroke(image.Rect(w-1-i, 0, w-i, h)) // right
		stroke(image.Rect(0, h-1-i, w, h-i)) // bottom
	}
}

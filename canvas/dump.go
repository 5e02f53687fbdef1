package canvas

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/sanity-io/litter"
)

// boxState is the printable part of a box. Pixel data is left out.
type boxState struct {
	ID       string
	Kind     string
	Position image.Point
	Size     image.Point
	Priority int
	Visible  bool

	Text       string
	Face       string
	TextColor  string
	BoxColor   string
	Align      string
	Spacing    int
	Padding    int
	FrameWidth int
}

var dumpOptions = litter.Options{
	HidePrivateFields: true,
	Compact:           false,
	StripPackageNames: true,
}

// Dump describes the box with the given id in Go syntax.
func (c *Canvas) Dump(id string) (string, error) {
	b, err := c.lookup(id)
	if err != nil {
		return "", err
	}
	st := boxState{
		ID:       id,
		Kind:     b.Kind().String(),
		Position: b.Position(),
		Size:     b.Size(),
		Priority: b.Priority(),
		Visible:  b.Visible(),
	}
	if tb, ok := b.(*TextBox); ok {
		s := tb.Style()
		st.Text = s.Text
		st.Face = s.Face.Name()
		st.TextColor = colorString(s.TextColor)
		st.BoxColor = colorString(s.BoxColor)
		st.Align = s.Align.String()
		st.Spacing = s.Spacing
		st.Padding = s.Padding
		st.FrameWidth = s.FrameWidth
	}
	return dumpOptions.Sdump(st), nil
}

// LogBoxes logs every box in insertion order.
func (c *Canvas) LogBoxes() {
	for _, id := range c.order {
		d, _ := c.Dump(id)
		log.Printf("##### %s: %s #####\n%s", c.boxes[id].Kind(), id, d)
	}
}

func colorString(c color.Color) string {
	if c == nil {
		return ""
	}
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8)
}

package canvas

import (
	"fmt"
	"image/color"

	"github.com/rjkroege/picroscope/typeface"
)

// TextStyle is the complete set of properties a text box is rendered from.
type TextStyle struct {
	Text string

	// TextColor paints the glyphs and the frame.
	TextColor color.Color

	// BoxColor fills the box behind the text. nil leaves it transparent.
	BoxColor color.Color

	Face typeface.Face

	// Spacing is the extra gap in pixels between lines.
	Spacing int

	// Align places each line within the text block.
	Align typeface.Align

	// Padding is the gap between the frame and the text.
	Padding int

	// FrameWidth is the thickness of the outline drawn just inside the box
	// edge. 0 draws no frame.
	FrameWidth int

	Priority int
}

// DefaultFace is used by text boxes that are not given a face.
var DefaultFace = typeface.Default()

// DefaultTextStyle returns the style a text box starts from.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		TextColor: color.White,
		Face:      DefaultFace,
		Align:     typeface.AlignLeft,
		Padding:   5,
	}
}

// Validate reports the first property that cannot be rendered.
func (s *TextStyle) Validate() error {
	switch {
	case s.Face == nil:
		return fmt.Errorf("%w: no face", ErrInvalidStyle)
	case s.TextColor == nil:
		return fmt.Errorf("%w: no text colour", ErrInvalidStyle)
	case !s.Align.Valid():
		return fmt.Errorf("%w: bad text alignment %v", ErrInvalidStyle, s.Align)
	case s.Spacing < 0:
		return fmt.Errorf("%w: negative spacing %d", ErrInvalidStyle, s.Spacing)
	case s.Padding < 0:
		return fmt.Errorf("%w: negative padding %d", ErrInvalidStyle, s.Padding)
	case s.FrameWidth < 0:
		return fmt.Errorf("%w: negative frame width %d", ErrInvalidStyle, s.FrameWidth)
	}
	return nil
}

// TextOption sets one property of a TextStyle. Editing a text box applies
// only the options given; everything else keeps its current value.
type TextOption func(*TextStyle)

// WithText replaces the text.
func WithText(text string) TextOption {
	return func(s *TextStyle) {
		s.Text = text
	}
}

// WithTextColor sets the colour of the glyphs and the frame.
func WithTextColor(c color.Color) TextOption {
	return func(s *TextStyle) {
		s.TextColor = c
	}
}

// WithBoxColor sets the background fill. nil makes it transparent.
func WithBoxColor(c color.Color) TextOption {
	return func(s *TextStyle) {
		s.BoxColor = c
	}
}

// WithFace sets the font face.
func WithFace(f typeface.Face) TextOption {
	return func(s *TextStyle) {
		s.Face = f
	}
}

// WithSpacing sets the gap between lines.
func WithSpacing(n int) TextOption {
	return func(s *TextStyle) {
		s.Spacing = n
	}
}

// WithTextAlign sets the alignment of lines within the box.
func WithTextAlign(a typeface.Align) TextOption {
	return func(s *TextStyle) {
		s.Align = a
	}
}

// WithPadding sets the gap between the frame and the text.
func WithPadding(n int) TextOption {
	return func(s *TextStyle) {
		s.Padding = n
	}
}

// WithFrameWidth sets the outline thickness.
func WithFrameWidth(n int) TextOption {
	return func(s *TextStyle) {
		s.FrameWidth = n
	}
}

// WithPriority sets the paint priority.
func WithPriority(p int) TextOption {
	return func(s *TextStyle) {
		s.Priority = p
	}
}

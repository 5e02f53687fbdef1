package scene

import (
	"fmt"
	"image"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/rjkroege/picroscope/canvas"
	"github.com/rjkroege/picroscope/typeface"
)

// FontLoader resolves a font name and size to a face. *typeface.Loader is
// one.
type FontLoader interface {
	Face(name string, size float64) (typeface.Face, error)
}

// Build creates the canvas the scene describes. Every text box gets its
// face from fonts; a nil fonts uses a fresh typeface.Loader.
func (s *Scene) Build(fonts FontLoader) (*canvas.Canvas, error) {
	if fonts == nil {
		fonts = &typeface.Loader{}
	}
	size := image.Pt(DefaultSize[0], DefaultSize[1])
	if s.Size != nil {
		size = image.Pt(s.Size[0], s.Size[1])
	}
	bg, err := canvas.ParseColor(s.Background)
	if err != nil {
		return nil, fmt.Errorf("scene: background: %w", err)
	}

	c := canvas.New(size, bg)
	for i := range s.Boxes {
		if err := s.add(c, &s.Boxes[i], fonts); err != nil {
			return nil, fmt.Errorf("scene: box %q: %w", s.Boxes[i].ID, err)
		}
	}
	return c, nil
}

func (s *Scene) add(c *canvas.Canvas, b *Box, fonts FontLoader) error {
	switch b.Kind {
	case "image":
		path := b.Image
		if !filepath.IsAbs(path) && s.Dir != "" {
			path = filepath.Join(s.Dir, path)
		}
		img, err := LoadImage(path)
		if err != nil {
			return err
		}
		if err := c.AddImageBox(b.ID, img, b.Priority); err != nil {
			return err
		}
	default:
		st := b.Style
		if err := mergo.Merge(&st, s.Defaults, mergo.WithoutDereference); err != nil {
			return err
		}
		opts, err := st.options(fonts)
		if err != nil {
			return err
		}
		opts = append(opts, canvas.WithPriority(b.Priority))
		if err := c.AddTextBox(b.ID, b.Text, opts...); err != nil {
			return err
		}
	}
	return s.place(c, b)
}

// place applies position, alignment, shift, inversion and visibility, in
// that order.
func (s *Scene) place(c *canvas.Canvas, b *Box) error {
	if b.Position != nil {
		if err := c.SetPosition(b.ID, image.Pt(b.Position[0], b.Position[1])); err != nil {
			return err
		}
	}
	if b.Align != nil {
		h, err := canvas.ParseHAlign(b.Align[0])
		if err != nil {
			return err
		}
		v, err := canvas.ParseVAlign(b.Align[1])
		if err != nil {
			return err
		}
		if err := c.Align(b.ID, h, v); err != nil {
			return err
		}
	}
	if b.Shift != nil {
		if err := c.Shift(b.ID, image.Pt(b.Shift[0], b.Shift[1])); err != nil {
			return err
		}
	}
	if b.Invert {
		if err := c.Invert(b.ID); err != nil {
			return err
		}
	}
	if b.Hidden {
		return c.HideBox(b.ID)
	}
	return nil
}

// options converts the style to canvas options. The face always comes
// from fonts, which decides what an unnamed font means. Other unset
// properties produce no option so the canvas defaults apply.
func (st Style) options(fonts FontLoader) ([]canvas.TextOption, error) {
	var opts []canvas.TextOption

	size := st.FontSize
	if size == 0 {
		size = DefaultFontSize
	}
	f, err := fonts.Face(st.Font, size)
	if err != nil {
		return nil, err
	}
	opts = append(opts, canvas.WithFace(f))

	if st.TextColor != "" {
		col, err := canvas.ParseColor(st.TextColor)
		if err != nil {
			return nil, fmt.Errorf("text_color: %w", err)
		}
		opts = append(opts, canvas.WithTextColor(col))
	}
	if st.BoxColor != "" {
		col, err := canvas.ParseColor(st.BoxColor)
		if err != nil {
			return nil, fmt.Errorf("box_color: %w", err)
		}
		opts = append(opts, canvas.WithBoxColor(col))
	}
	if st.TextAlign != "" {
		a, err := typeface.ParseAlign(st.TextAlign)
		if err != nil {
			return nil, err
		}
		opts = append(opts, canvas.WithTextAlign(a))
	}
	if st.Spacing != nil {
		opts = append(opts, canvas.WithSpacing(*st.Spacing))
	}
	if st.Padding != nil {
		opts = append(opts, canvas.WithPadding(*st.Padding))
	}
	if st.FrameWidth != nil {
		opts = append(opts, canvas.WithFrameWidth(*st.FrameWidth))
	}
	return opts, nil
}

package canvas

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"sort"

	xdraw "golang.org/x/image/draw"
)

// Debug enables logging of every registry mutation.
var Debug = false

func debugf(format string, args ...interface{}) {
	if Debug {
		log.Printf(format, args...)
	}
}

// Sink receives flattened frames. Implementations drive an LCD, a window
// or a file; failures are reported to the caller of Present as is.
type Sink interface {
	Clear() error
	Show(img image.Image) error
}

// Canvas is the registry of boxes for one output surface.
type Canvas struct {
	size image.Point
	base color.Color

	boxes map[string]Box
	order []string // ids in insertion order
}

// New returns an empty canvas of the given size. A nil base colour
// gives a black background.
func New(size image.Point, base color.Color) *Canvas {
	if base == nil {
		base = color.Black
	}
	return &Canvas{
		size:  size,
		base:  base,
		boxes: make(map[string]Box),
	}
}

// Size returns the canvas size that Align positions against.
func (c *Canvas) Size() image.Point { return c.size }

// BaseColor returns the background colour.
func (c *Canvas) BaseColor() color.Color { return c.base }

// Len returns the number of boxes.
func (c *Canvas) Len() int { return len(c.boxes) }

// IDs returns the box ids in insertion order.
func (c *Canvas) IDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

func (c *Canvas) insert(id string, b Box) {
	c.boxes[id] = b
	c.order = append(c.order, id)
	debugf("canvas: add %s %q size %v priority %d", b.Kind(), id, b.Size(), b.Priority())
}

func (c *Canvas) lookup(id string) (Box, error) {
	b, ok := c.boxes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return b, nil
}

// AddImageBox adds a box showing img at (0, 0).
func (c *Canvas) AddImageBox(id string, img image.Image, priority int) error {
	if _, ok := c.boxes[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	c.insert(id, newImageBox(img, priority))
	return nil
}

// AddTextBox adds a text box at (0, 0). Properties not set by opts take
// the values of DefaultTextStyle.
func (c *Canvas) AddTextBox(id, text string, opts ...TextOption) error {
	if _, ok := c.boxes[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	b, err := newTextBox(text, opts)
	if err != nil {
		return fmt.Errorf("text box %q: %w", id, err)
	}
	c.insert(id, b)
	return nil
}

// Box returns the box with the given id for reading its properties.
func (c *Canvas) Box(id string) (Box, error) {
	return c.lookup(id)
}

// EditImageBox replaces the picture of an image box.
func (c *Canvas) EditImageBox(id string, img image.Image) error {
	b, err := c.lookup(id)
	if err != nil {
		return err
	}
	ib, ok := b.(*ImageBox)
	if !ok {
		return fmt.Errorf("%w: EditImageBox on %s %q", ErrWrongBoxType, b.Kind(), id)
	}
	ib.changeImage(img)
	debugf("canvas: edit image %q size %v", id, ib.size)
	return nil
}

// EditTextBox applies opts to a text box and redraws it.
func (c *Canvas) EditTextBox(id string, opts ...TextOption) error {
	b, err := c.lookup(id)
	if err != nil {
		return err
	}
	tb, ok := b.(*TextBox)
	if !ok {
		return fmt.Errorf("%w: EditTextBox on %s %q", ErrWrongBoxType, b.Kind(), id)
	}
	if err := tb.edit(opts); err != nil {
		return fmt.Errorf("text box %q: %w", id, err)
	}
	debugf("canvas: edit text %q size %v", id, tb.size)
	return nil
}

// SetPriority sets the paint priority of a box.
func (c *Canvas) SetPriority(id string, p int) error {
	b, err := c.lookup(id)
	if err != nil {
		return err
	}
	b.base().priority = p
	return nil
}

// HideBox excludes a box from Flatten without removing it.
func (c *Canvas) HideBox(id string) error {
	b, err := c.lookup(id)
	if err != nil {
		return err
	}
	b.base().visible = false
	return nil
}

// ShowBox makes a hidden box visible again.
func (c *Canvas) ShowBox(id string) error {
	b, err := c.lookup(id)
	if err != nil {
		return err
	}
	b.base().visible = true
	return nil
}

// SetPosition moves the top-left corner of a box to pt.
func (c *Canvas) SetPosition(id string, pt image.Point) error {
	b, err := c.lookup(id)
	if err != nil {
		return err
	}
	b.base().position = pt
	return nil
}

// Shift moves a box by d.
func (c *Canvas) Shift(id string, d image.Point) error {
	b, err := c.lookup(id)
	if err != nil {
		return err
	}
	b.base().shift(d)
	return nil
}

// Align moves a box to an edge or the centre of the canvas on either or
// both axes. HNone and VNone leave that axis alone.
func (c *Canvas) Align(id string, h HAlign, v VAlign) error {
	b, err := c.lookup(id)
	if err != nil {
		return err
	}
	b.base().align(c.size, h, v)
	return nil
}

// Invert inverts the colours of a box, keeping its transparency.
func (c *Canvas) Invert(id string) error {
	b, err := c.lookup(id)
	if err != nil {
		return err
	}
	b.base().invert()
	return nil
}

// DeleteBox removes a box.
func (c *Canvas) DeleteBox(id string) error {
	if _, err := c.lookup(id); err != nil {
		return err
	}
	delete(c.boxes, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	debugf("canvas: delete %q", id)
	return nil
}

// paintOrder returns the visible boxes, lowest priority first. Boxes of
// equal priority keep their insertion order.
func (c *Canvas) paintOrder() []Box {
	boxes := make([]Box, 0, len(c.order))
	for _, id := range c.order {
		if b := c.boxes[id]; b.Visible() {
			boxes = append(boxes, b)
		}
	}
	sort.SliceStable(boxes, func(i, j int) bool {
		return boxes[i].Priority() < boxes[j].Priority()
	})
	return boxes
}

// Flatten paints the visible boxes over a fresh background and returns
// the result. Each box is blended through its own alpha channel and
// clipped to the canvas. The canvas and its boxes are not modified.
func (c *Canvas) Flatten() *image.RGBA {
	screen := image.NewRGBA(image.Rectangle{Max: c.size})
	xdraw.Draw(screen, screen.Bounds(), image.NewUniform(c.base), image.Point{}, xdraw.Src)
	for _, b := range c.paintOrder() {
		r := b.Raster()
		xdraw.Copy(screen, b.Position(), r, r.Bounds(), xdraw.Over, nil)
	}
	return screen
}

// Present flattens the canvas and hands the frame to s.
func (c *Canvas) Present(s Sink) error {
	return s.Show(c.Flatten())
}

package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rjkroege/picroscope/canvas"
	"github.com/rjkroege/picroscope/osdtest"
	"github.com/rjkroege/picroscope/typeface"
	"github.com/stretchr/testify/require"
)

type fakeFonts struct {
	asked []string
}

func (f *fakeFonts) Face(name string, size float64) (typeface.Face, error) {
	f.asked = append(f.asked, fmt.Sprintf("%s@%g", name, size))
	if name == "missing" {
		return nil, errors.New("no such font")
	}
	return osdtest.NewFace(6, 10), nil
}

func mustLoad(t *testing.T, doc string) *Scene {
	t.Helper()
	s, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	return s
}

func textStyle(t *testing.T, c *canvas.Canvas, id string) canvas.TextStyle {
	t.Helper()
	b, err := c.Box(id)
	require.NoError(t, err)
	tb, ok := b.(*canvas.TextBox)
	require.True(t, ok, "%s is a %v", id, b.Kind())
	return tb.Style()
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	for _, doc := range []string{
		"colour: red\n",
		"boxes:\n  - id: a\n    colour: red\n",
		"defaults:\n  fontsize: 3\n",
	} {
		_, err := Load(strings.NewReader(doc))
		require.Error(t, err, doc)
	}
}

func TestLoadValidates(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":       "",
		"size":        "size: [1]\n",
		"negative":    "size: [-1, 4]\n",
		"no id":       "boxes:\n  - text: hi\n",
		"duplicate":   "boxes:\n  - id: a\n  - id: a\n",
		"kind":        "boxes:\n  - id: a\n    kind: video\n",
		"no image":    "boxes:\n  - id: a\n    kind: image\n",
		"position":    "boxes:\n  - id: a\n    position: [1, 2, 3]\n",
		"align arity": "boxes:\n  - id: a\n    align: [left]\n",
		"image text":  "boxes:\n  - id: a\n    kind: image\n    image: a.png\n    text: hi\n",
		"image style": "boxes:\n  - id: a\n    kind: image\n    image: a.png\n    padding: 0\n",
		"panel":       "boxes:\n  - id: panel\n",
		"panel row":   "boxes:\n  - id: panel.row.iso\n    kind: image\n    image: a.png\n",
	} {
		_, err := Load(strings.NewReader(doc))
		require.Error(t, err, name)
	}
}

func TestLoadAllowsPanelLikeIDs(t *testing.T) {
	s := mustLoad(t, "boxes:\n  - id: panelist\n  - id: my.panel\n")
	require.Len(t, s.Boxes, 2)
}

func TestBuildDefaults(t *testing.T) {
	s := mustLoad(t, `
boxes:
  - id: plain
    text: hi
`)
	fonts := &fakeFonts{}
	c, err := s.Build(fonts)
	require.NoError(t, err)
	require.Equal(t, image.Pt(200, 100), c.Size())
	require.Equal(t, color.Color(color.Black), c.BaseColor())
	require.Equal(t, []string{"@13"}, fonts.asked, "an unnamed font is still resolved by the loader")

	st := textStyle(t, c, "plain")
	require.Equal(t, 5, st.Padding)
	b, err := c.Box("plain")
	require.NoError(t, err)
	require.Equal(t, image.Pt(12+10, 10+10), b.Size())
}

func TestBuildDefaultLoader(t *testing.T) {
	s := mustLoad(t, "boxes:\n  - id: plain\n    text: hi\n    padding: 0\n")
	c, err := s.Build(nil)
	require.NoError(t, err)
	b, err := c.Box("plain")
	require.NoError(t, err)
	require.Equal(t, canvas.DefaultFace.Measure("hi", 0), b.Size())
}

func TestBuildMergesDefaults(t *testing.T) {
	s := mustLoad(t, `
size: [320, 240]
background: grey
defaults:
  font: goregular
  font_size: 18
  text_color: red
  padding: 2
  frame_width: 1
boxes:
  - id: a
    text: hi
    padding: 0
    text_align: right
    priority: 3
  - id: b
    text: hello
    text_color: "#00ff0080"
    font_size: 9
`)
	fonts := &fakeFonts{}
	c, err := s.Build(fonts)
	require.NoError(t, err)
	require.Equal(t, image.Pt(320, 240), c.Size())
	require.Equal(t, []string{"goregular@18", "goregular@9"}, fonts.asked)

	a := textStyle(t, c, "a")
	require.Equal(t, 0, a.Padding, "explicit zero beats the default")
	require.Equal(t, 1, a.FrameWidth)
	require.Equal(t, typeface.AlignRight, a.Align)
	require.Equal(t, 3, a.Priority)
	r, g, b, _ := a.TextColor.RGBA()
	require.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b})

	box, err := c.Box("a")
	require.NoError(t, err)
	require.Equal(t, image.Pt(12+2, 10+2), box.Size())

	bst := textStyle(t, c, "b")
	require.Equal(t, color.NRGBA{0, 0xff, 0, 0x80}, bst.TextColor)
	require.Equal(t, 2, bst.Padding)

	// The scene itself is not modified by merging.
	require.Nil(t, s.Boxes[1].Padding)
}

func TestBuildPlacement(t *testing.T) {
	s := mustLoad(t, `
size: [100, 50]
boxes:
  - id: pos
    text: ab
    padding: 0
    position: [10, 20]
    shift: [-5, 1]
  - id: corner
    text: ab
    padding: 0
    align: [right, bottom]
    hidden: true
  - id: inv
    text: ab
    padding: 0
    box_color: red
    invert: true
`)
	c, err := s.Build(&fakeFonts{})
	require.NoError(t, err)

	b, err := c.Box("pos")
	require.NoError(t, err)
	require.Equal(t, image.Pt(5, 21), b.Position())

	b, err = c.Box("corner")
	require.NoError(t, err)
	require.Equal(t, image.Pt(100-12, 50-10), b.Position())
	require.False(t, b.Visible())

	b, err = c.Box("inv")
	require.NoError(t, err)
	// A white glyph cell inverts to black, the red fill to cyan.
	require.Equal(t, color.RGBA{0, 0, 0, 0xff}, b.Raster().RGBAAt(0, 0))
}

func TestBuildErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"background": "background: mauvish\n",
		"box colour": "boxes:\n  - id: a\n    box_color: '#12'\n",
		"align":      "boxes:\n  - id: a\n    align: [up, down]\n",
		"text align": "boxes:\n  - id: a\n    text_align: justify\n",
		"font":       "boxes:\n  - id: a\n    font: missing\n",
		"no colour":  "boxes:\n  - id: a\n    text_color: none\n",
		"no file":    "boxes:\n  - id: a\n    kind: image\n    image: /does/not/exist.png\n",
	} {
		s := mustLoad(t, doc)
		_, err := s.Build(&fakeFonts{})
		require.Error(t, err, name)
	}

	s := mustLoad(t, "boxes:\n  - id: a\n    text_color: none\n")
	_, err := s.Build(&fakeFonts{})
	require.ErrorIs(t, err, canvas.ErrInvalidStyle)
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestLoadFileImageBox(t *testing.T) {
	dir := t.TempDir()
	logo := image.NewRGBA(image.Rect(0, 0, 8, 4))
	logo.SetRGBA(0, 0, color.RGBA{0x10, 0x20, 0x30, 0xff})
	writePNG(t, filepath.Join(dir, "logo.png"), logo)

	doc := "size: [40, 20]\nboxes:\n  - id: logo\n    kind: image\n    image: logo.png\n    priority: 8\n    align: [right, bottom]\n"
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, dir, s.Dir)

	c, err := s.Build(nil)
	require.NoError(t, err)
	b, err := c.Box("logo")
	require.NoError(t, err)
	require.Equal(t, canvas.KindImage, b.Kind())
	require.Equal(t, image.Pt(8, 4), b.Size())
	require.Equal(t, image.Pt(32, 16), b.Position())
	require.Equal(t, 8, b.Priority())
	require.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0xff}, c.Flatten().RGBAAt(32, 16))
}

func TestLoadImageLimits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wide.png")
	writePNG(t, path, image.NewGray(image.Rect(0, 0, MaxImageWidth+1, 1)))
	_, err := LoadImage(path)
	require.ErrorContains(t, err, "too large")

	require.Error(t, checkSize(MaxImageWidth, MaxImageHeight/2+1))
	require.NoError(t, checkSize(MaxImageWidth, MaxImageHeight/4))

	path = filepath.Join(dir, "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not a picture"), 0o644))
	_, err = LoadImage(path)
	require.Error(t, err)
}

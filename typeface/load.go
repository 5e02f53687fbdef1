package typeface

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DPI used for every scalable face. Sizes are therefore in pixels.
const DPI = 72

// Default returns the built-in 7x13 bitmap face. It needs no font files,
// which makes it the fallback on headless devices.
func Default() Face {
	return New("basicfont7x13", basicfont.Face7x13)
}

// GoRegular returns the embedded Go Regular face at size pixels.
func GoRegular(size float64) (Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse goregular: %w", err)
	}
	ff, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create goregular face: %w", err)
	}
	return New(fmt.Sprintf("goregular-%g", size), ff), nil
}

// Load reads a TrueType font file such as
// /usr/share/fonts/truetype/freefont/FreeSans.ttf and returns a face at
// size pixels.
func Load(path string, size float64) (Face, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	f, err := truetype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	ff := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     DPI,
		Hinting: font.HintingFull,
	})
	name := fmt.Sprintf("%s-%g", filepath.Base(path), size)
	return New(name, ff), nil
}

// Loader resolves font references from scene files and the command line.
// The zero value is ready to use.
type Loader struct {
	cache map[string]Face
}

// Face returns the face for name at size. name is "default" (or empty),
// "goregular", or a path to a TrueType file. Faces are cached per
// name and size.
func (l *Loader) Face(name string, size float64) (Face, error) {
	if name == "" || name == "default" {
		return Default(), nil
	}
	key := fmt.Sprintf("%s@%g", name, size)
	if f, ok := l.cache[key]; ok {
		return f, nil
	}
	var (
		f   Face
		err error
	)
	if name == "goregular" {
		f, err = GoRegular(size)
	} else {
		f, err = Load(name, size)
	}
	if err != nil {
		return nil, err
	}
	if l.cache == nil {
		l.cache = make(map[string]Face)
	}
	l.cache[key] = f
	return f, nil
}

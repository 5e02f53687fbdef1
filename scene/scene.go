// Package scene reads canvas layouts from YAML files.
//
// A scene names the canvas size and background, a set of default text
// properties, and the boxes to place:
//
//	size: [200, 100]
//	background: grey
//	defaults:
//	  font: goregular
//	  font_size: 18
//	boxes:
//	  - id: logo
//	    kind: image
//	    image: overlay_small.png
//	    priority: 8
//	    align: [right, bottom]
//	  - id: raoulduke
//	    text: "This is\nBat country!"
//	    text_align: center
//	    frame_width: 1
//	    box_color: yellowgreen
//
// Text properties set on a box override the defaults; unset ones are
// taken from them.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rjkroege/picroscope/panel"
	"gopkg.in/yaml.v3"
)

// DefaultSize is used when a scene gives no size.
var DefaultSize = [2]int{200, 100}

// DefaultFontSize is used when a box gives no font size.
const DefaultFontSize = 13

// Style holds the text properties a scene can set. Pointer fields
// distinguish an explicit zero from unset.
type Style struct {
	Font       string  `yaml:"font"`
	FontSize   float64 `yaml:"font_size"`
	TextColor  string  `yaml:"text_color"`
	BoxColor   string  `yaml:"box_color"`
	TextAlign  string  `yaml:"text_align"`
	Spacing    *int    `yaml:"spacing"`
	Padding    *int    `yaml:"padding"`
	FrameWidth *int    `yaml:"frame_width"`
}

// Box is one entry of the boxes list.
type Box struct {
	ID    string `yaml:"id"`
	Kind  string `yaml:"kind"` // "text" (the default) or "image"
	Text  string `yaml:"text"`
	Image string `yaml:"image"`

	Style `yaml:",inline"`

	Priority int      `yaml:"priority"`
	Position []int    `yaml:"position"`
	Align    []string `yaml:"align"`
	Shift    []int    `yaml:"shift"`
	Hidden   bool     `yaml:"hidden"`
	Invert   bool     `yaml:"invert"`
}

// Scene is a decoded scene file.
type Scene struct {
	Size       []int  `yaml:"size"`
	Background string `yaml:"background"`
	Defaults   Style  `yaml:"defaults"`
	Boxes      []Box  `yaml:"boxes"`

	// Dir is where relative image paths are resolved from.
	Dir string `yaml:"-"`
}

// Load decodes a scene. Unknown keys are errors.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("scene: empty document")
		}
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads the scene at path. Image paths in it are relative to
// the file's directory.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Dir = filepath.Dir(path)
	return s, nil
}

func (s *Scene) validate() error {
	if s.Size != nil && (len(s.Size) != 2 || s.Size[0] <= 0 || s.Size[1] <= 0) {
		return fmt.Errorf("scene: size must be two positive numbers, got %v", s.Size)
	}
	seen := make(map[string]bool, len(s.Boxes))
	for i, b := range s.Boxes {
		if b.ID == "" {
			return fmt.Errorf("scene: box %d has no id", i)
		}
		if seen[b.ID] {
			return fmt.Errorf("scene: box id %q used twice", b.ID)
		}
		seen[b.ID] = true
		if panel.Reserved(b.ID) {
			return fmt.Errorf("scene: box id %q is reserved for the settings panel", b.ID)
		}

		switch b.Kind {
		case "", "text":
		case "image":
			if b.Image == "" {
				return fmt.Errorf("scene: image box %q has no image", b.ID)
			}
			if b.Text != "" || b.Style != (Style{}) {
				return fmt.Errorf("scene: image box %q has text properties", b.ID)
			}
		default:
			return fmt.Errorf("scene: box %q has unknown kind %q", b.ID, b.Kind)
		}
		for name, v := range map[string][]int{"position": b.Position, "shift": b.Shift} {
			if v != nil && len(v) != 2 {
				return fmt.Errorf("scene: box %q %s needs two numbers, got %v", b.ID, name, v)
			}
		}
		if b.Align != nil && len(b.Align) != 2 {
			return fmt.Errorf("scene: box %q align needs [horizontal, vertical], got %v", b.ID, b.Align)
		}
	}
	return nil
}

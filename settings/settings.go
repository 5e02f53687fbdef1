// Package settings holds the camera parameters the OSD panel displays and
// the rules for stepping them from the mouse or keyboard.
package settings

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// Direction selects how Step moves an item.
type Direction int

const (
	Down  Direction = -1
	Reset Direction = 0
	Up    Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Reset:
		return "reset"
	case Up:
		return "up"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// Item is one adjustable parameter. A range item moves by one between Min
// and Max. A list item walks Values, and Min and Max are its first and
// last entries.
type Item struct {
	Name    string
	Default int
	Min     int
	Max     int
	Values  []int
	Index   int

	value int
}

// NewRange makes an item that takes every integer in [min, max].
func NewRange(name string, def, min, max int) *Item {
	return &Item{
		Name:    name,
		Default: def,
		Min:     min,
		Max:     max,
		value:   def,
	}
}

// NewList makes an item that takes the values in order, starting at
// values[index]. The default is the first value.
func NewList(name string, values []int, index int) *Item {
	if len(values) == 0 {
		panic("settings: NewList with no values")
	}
	if index < 0 || index >= len(values) {
		index = 0
	}
	return &Item{
		Name:    name,
		Default: values[0],
		Min:     values[0],
		Max:     values[len(values)-1],
		Values:  values,
		Index:   index,
		value:   values[index],
	}
}

// Value returns the current value.
func (it *Item) Value() int { return it.value }

// IsList reports whether the item walks a list of values.
func (it *Item) IsList() bool { return it.Values != nil }

// Step moves the item one notch in dir and returns the new value. When
// the move would leave the item's range nothing changes and ok is false.
func (it *Item) Step(dir Direction) (value int, ok bool) {
	switch {
	case dir == Reset:
		it.value = it.Default
		if it.IsList() {
			it.Index = 0
		}
	case dir == Up && it.value < it.Max:
		if it.IsList() {
			it.Index++
			it.value = it.Values[it.Index]
		} else {
			it.value++
		}
	case dir == Down && it.value > it.Min:
		if it.IsList() {
			it.Index--
			it.value = it.Values[it.Index]
		} else {
			it.value--
		}
	default:
		log.Printf("%s out of range!", it.Name)
		return it.value, false
	}
	return it.value, true
}

// Rect is a region of the sensor in normalised coordinates.
type Rect struct {
	X, Y, W, H float64
}

// ZoomArea returns the centred region of the sensor shown at the given
// magnification.
func ZoomArea(level float64) Rect {
	w := 1 / level
	x := (1 - w) / 2
	return Rect{X: x, Y: x, W: w, H: w}
}

// FormatLabel turns a parameter name into the label shown on screen:
// "hello_lilol" becomes "HELLO LILOL".
func FormatLabel(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "_", " "))
}

// Param is a named value ready for display.
type Param struct {
	Name  string
	Value string
}

// Settings is the full set of camera parameters.
type Settings struct {
	Brightness *Item
	Contrast   *Item
	ISO        *Item
	Zoom       *Item
}

// New returns the settings at their power-on values.
func New() *Settings {
	return &Settings{
		Brightness: NewRange("brightness", 50, 0, 100),
		Contrast:   NewRange("contrast", 0, -100, 100),
		ISO:        NewList("iso", []int{0, 100, 200, 320, 400, 500, 640, 800}, 0),
		Zoom:       NewList("zoom", []int{1, 2, 3, 4, 5, 8, 10, 16, 20}, 0),
	}
}

// Items returns the items in display order.
func (s *Settings) Items() []*Item {
	return []*Item{s.Brightness, s.Contrast, s.ISO, s.Zoom}
}

// Item finds an item by name.
func (s *Settings) Item(name string) (*Item, error) {
	for _, it := range s.Items() {
		if it.Name == name {
			return it, nil
		}
	}
	return nil, fmt.Errorf("no setting %q", name)
}

// ZoomArea returns the sensor region for the current zoom level.
func (s *Settings) ZoomArea() Rect {
	return ZoomArea(float64(s.Zoom.Value()))
}

// Params returns the current values in display order.
func (s *Settings) Params() []Param {
	ps := make([]Param, 0, 4)
	for _, it := range s.Items() {
		v := strconv.Itoa(it.Value())
		switch it {
		case s.ISO:
			if it.Value() == 0 {
				v = "auto"
			}
		case s.Zoom:
			v = "x" + v
		}
		ps = append(ps, Param{Name: it.Name, Value: v})
	}
	return ps
}

package osdtest

import (
	"fmt"
	"image/color"
)

// NiceColourName names the handful of colours used in tests so that
// failure messages stay readable.
func NiceColourName(c color.Color) string {
	if c == nil {
		return "nil"
	}
	lookuptable := map[color.RGBA]string{
		{0, 0, 0, 0}:         "Transparent",
		{0, 0, 0, 255}:       "Black",
		{255, 255, 255, 255}: "White",
		{128, 128, 128, 255}: "Grey",
		{255, 0, 0, 255}:     "Red",
		{0, 255, 0, 255}:     "Green",
		{0, 0, 255, 255}:     "Blue",
		{154, 205, 50, 255}:  "Yellowgreen",
		{128, 0, 128, 255}:   "Purple",
		{255, 165, 0, 255}:   "Orange",
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if s, ok := lookuptable[rgba]; ok {
		return s
	}
	return fmt.Sprintf("color(%02x%02x%02x%02x)", rgba.R, rgba.G, rgba.B, rgba.A)
}

package canvas

import (
	"fmt"
	"strings"
)

// HAlign is a horizontal placement of a box on the canvas.
type HAlign int

const (
	HNone HAlign = iota
	Left
	Center
	Right
)

// VAlign is a vertical placement of a box on the canvas.
type VAlign int

const (
	VNone VAlign = iota
	Top
	Middle
	Bottom
)

func (h HAlign) String() string {
	switch h {
	case HNone:
		return "none"
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	}
	return fmt.Sprintf("HAlign(%d)", int(h))
}

func (v VAlign) String() string {
	switch v {
	case VNone:
		return "none"
	case Top:
		return "top"
	case Middle:
		return "middle"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("VAlign(%d)", int(v))
}

// ParseHAlign accepts left, center, right and none (or "").
func ParseHAlign(s string) (HAlign, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return HNone, nil
	case "left":
		return Left, nil
	case "center", "centre":
		return Center, nil
	case "right":
		return Right, nil
	}
	return HNone, fmt.Errorf("unknown horizontal alignment %q", s)
}

// ParseVAlign accepts top, middle, bottom and none (or "").
func ParseVAlign(s string) (VAlign, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return VNone, nil
	case "top":
		return Top, nil
	case "middle":
		return Middle, nil
	case "bottom":
		return Bottom, nil
	}
	return VNone, fmt.Errorf("unknown vertical alignment %q", s)
}

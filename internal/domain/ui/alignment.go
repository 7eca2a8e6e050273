package ui

import (
	"fmt"
	"strings"
)

// HorizontalAlignment places an element inside the width its parent offers.
// The zero value is Stretch.
type HorizontalAlignment int

const (
	HAlignStretch HorizontalAlignment = iota
	HAlignLeft
	HAlignCenter
	HAlignRight
)

// String returns the string representation of the alignment
func (a HorizontalAlignment) String() string {
	switch a {
	case HAlignStretch:
		return "Stretch"
	case HAlignLeft:
		return "Left"
	case HAlignCenter:
		return "Center"
	case HAlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Next cycles Left -> Center -> Right -> Stretch -> Left
func (a HorizontalAlignment) Next() HorizontalAlignment {
	switch a {
	case HAlignLeft:
		return HAlignCenter
	case HAlignCenter:
		return HAlignRight
	case HAlignRight:
		return HAlignStretch
	default:
		return HAlignLeft
	}
}

// VerticalAlignment places an element inside the height its parent offers.
// The zero value is Stretch.
type VerticalAlignment int

const (
	VAlignStretch VerticalAlignment = iota
	VAlignTop
	VAlignCenter
	VAlignBottom
)

// String returns the string representation of the alignment
func (a VerticalAlignment) String() string {
	switch a {
	case VAlignStretch:
		return "Stretch"
	case VAlignTop:
		return "Top"
	case VAlignCenter:
		return "Center"
	case VAlignBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Next cycles Top -> Center -> Bottom -> Stretch -> Top
func (a VerticalAlignment) Next() VerticalAlignment {
	switch a {
	case VAlignTop:
		return VAlignCenter
	case VAlignCenter:
		return VAlignBottom
	case VAlignBottom:
		return VAlignStretch
	default:
		return VAlignTop
	}
}

// ParseHorizontalAlignment parses a case-insensitive alignment name.
// An empty string yields Stretch.
func ParseHorizontalAlignment(s string) (HorizontalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stretch":
		return HAlignStretch, nil
	case "left":
		return HAlignLeft, nil
	case "center":
		return HAlignCenter, nil
	case "right":
		return HAlignRight, nil
	}
	return HAlignStretch, fmt.Errorf("unknown horizontal alignment %q", s)
}

// ParseVerticalAlignment parses a case-insensitive alignment name.
// An empty string yields Stretch.
func ParseVerticalAlignment(s string) (VerticalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stretch":
		return VAlignStretch, nil
	case "top":
		return VAlignTop, nil
	case "center":
		return VAlignCenter, nil
	case "bottom":
		return VAlignBottom, nil
	}
	return VAlignStretch, fmt.Errorf("unknown vertical alignment %q", s)
}

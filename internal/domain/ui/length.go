package ui

import "strconv"

// Length is an explicit dimension or Auto.
// The zero value is Auto: content measurement decides the size.
type Length struct {
	value float64
	set   bool
}

// Auto is the unset length
var Auto = Length{}

// Px returns an explicit length. Sizes treat negative values as zero;
// canvas anchors keep the sign.
func Px(v float64) Length {
	return Length{value: v, set: true}
}

// IsAuto reports whether the length is unset
func (l Length) IsAuto() bool {
	return !l.set
}

// Value returns the explicit value and true, or 0 and false for Auto
func (l Length) Value() (float64, bool) {
	return l.value, l.set
}

// Or returns the explicit value, or fallback for Auto
func (l Length) Or(fallback float64) float64 {
	if !l.set {
		return fallback
	}
	return l.value
}

// String returns "auto" or the value formatted without trailing zeros
func (l Length) String() string {
	if !l.set {
		return "auto"
	}
	return strconv.FormatFloat(l.value, 'f', -1, 64)
}

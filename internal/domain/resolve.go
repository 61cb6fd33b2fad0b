package domain

import "math"

// NormalizeAngle maps any angle into [0, 360). Non-finite input maps to 0.
func NormalizeAngle(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	a := math.Mod(deg, FullCircle)
	if a < 0 {
		a += FullCircle
	}
	// -1e-17 + 360 rounds to 360.
	if a >= FullCircle {
		a = 0
	}
	return a
}

// EffectiveAngle converts how far the wheel turned clockwise into the angle,
// in section space, that now sits under the fixed pointer.
func EffectiveAngle(rotation float64) float64 {
	return NormalizeAngle(FullCircle - NormalizeAngle(rotation))
}

// SectionIndex returns the index of the section under the pointer for the
// given rotation on a wheel of n equal sections. An angle exactly on a
// boundary belongs to the section that starts there.
func SectionIndex(rotation float64, n int) int {
	if n <= 0 {
		return -1
	}
	width := FullCircle / float64(n)
	idx := int(math.Floor(EffectiveAngle(rotation)/width)) % n
	// The quotient can round up to n just below 360.
	return (idx + n) % n
}

// Resolve returns the item whose section sits under the pointer after the
// wheel has turned rotation degrees. It is a pure function of its inputs.
func Resolve(rotation float64, sections []Section) (Item, error) {
	if len(sections) == 0 {
		return Item{}, ErrNoItems
	}
	return sections[SectionIndex(rotation, len(sections))].Item, nil
}

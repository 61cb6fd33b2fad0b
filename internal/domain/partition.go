package domain

// FullCircle is the number of degrees in one wheel revolution.
const FullCircle = 360.0

// Palette is an ordered list of color tokens cycled over sections.
type Palette []string

// DefaultPalette is used when no palette is configured.
var DefaultPalette = Palette{
	"coral",
	"tangerine",
	"sunflower",
	"mint",
	"sky",
	"lavender",
	"rose",
	"sage",
}

// Token returns the color token for section index i.
func (p Palette) Token(i int) string {
	if len(p) == 0 {
		p = DefaultPalette
	}
	return p[i%len(p)]
}

// Partition splits the full circle into len(items) equal sections, in item
// order. Section i covers [360*i/N, 360*(i+1)/N), so neighbours share the
// exact same boundary value and the last section ends at exactly 360.
func Partition(items []Item, palette Palette) []Section {
	n := len(items)
	if n == 0 {
		return nil
	}

	sections := make([]Section, n)
	for i, it := range items {
		sections[i] = Section{
			Item:       it,
			Index:      i,
			StartAngle: boundary(i, n),
			EndAngle:   boundary(i+1, n),
			Color:      palette.Token(i),
		}
	}
	return sections
}

func boundary(i, n int) float64 {
	return FullCircle * float64(i) / float64(n)
}

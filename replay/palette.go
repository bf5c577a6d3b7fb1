package replay

import (
	"fmt"

	"github.com/katalvlaran/mapcolor/coloring"
)

// Swatch is the display form of a palette color.
type Swatch struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Palette lists swatches for colors 1..len(p).
type Palette []Swatch

// DefaultPalette is the five-color pastel palette of the animation front-end.
var DefaultPalette = Palette{
	{Name: "Pink", Hex: "#ff99c8"},
	{Name: "Yellow", Hex: "#fcf6bd"},
	{Name: "Green", Hex: "#d0f4de"},
	{Name: "Blue", Hex: "#a9def9"},
	{Name: "Lilac", Hex: "#e4c1f9"},
}

// fallbackHex is used for colors the palette does not cover.
const fallbackHex = "#cccccc"

// Swatch returns the swatch of c. Colors outside the palette get the name
// "Color N" and a neutral grey.
func (p Palette) Swatch(c coloring.Color) Swatch {
	if c >= 1 && int(c) <= len(p) {
		return p[c-1]
	}

	return Swatch{Name: fmt.Sprintf("Color %d", c), Hex: fallbackHex}
}

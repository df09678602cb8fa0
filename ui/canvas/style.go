package canvas

import (
	"image/color"

	"swatchbook/internal/app"
)

// Style holds the geometry and color constants for the canvas. It is
// injected at construction so tests and alternative skins can supply
// their own values.
type Style struct {
	CellWidth  float64
	CellHeight float64
	Border     float64

	// Scrollbar widths for the idle and hovered states.
	ScrollNormal float64
	ScrollHover  float64

	// Pixels of scroll offset per wheel delta unit.
	ScrollSensitivity float64

	Background color.Color
	Foreground color.Color
	Scrollbar  color.Color
	AddButton  color.Color
	CellBorder color.Color

	// SiteURL is shown under the logo on an empty palette.
	SiteURL string
}

// DefaultStyle returns the standard canvas style.
func DefaultStyle() *Style {
	return &Style{
		CellWidth:         150,
		CellHeight:        100,
		Border:            20,
		ScrollNormal:      5,
		ScrollHover:       10,
		ScrollSensitivity: 3,
		Background:        color.NRGBA{R: 0xFA, G: 0xFA, B: 0xFA, A: 0xFF},
		Foreground:        color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xFF},
		Scrollbar:         color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x5A},
		AddButton:         color.NRGBA{R: 0xB4, G: 0xB4, B: 0xB4, A: 0xFF},
		CellBorder:        color.NRGBA{R: 0xC8, G: 0xC8, B: 0xC8, A: 0xFF},
		SiteURL:           "https://" + app.Domain,
	}
}

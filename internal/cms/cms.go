// Package cms provides color management for palette entries: display
// color resolution, hex labels, and HSV-based rendering rules.
package cms

import (
	"fmt"
	"math"

	"swatchbook/internal/palette"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a display color with normalized channels.
type RGB struct {
	R, G, B float64
}

var (
	White = RGB{1, 1, 1}
	Black = RGB{0, 0, 0}
)

// DisplayColor resolves a palette entry to its display RGB color.
// Unknown colorspaces resolve to black.
func DisplayColor(e palette.Entry) RGB {
	switch e.Space {
	case palette.SpaceRGB:
		if len(e.Value) >= 3 {
			return RGB{clamp(e.Value[0]), clamp(e.Value[1]), clamp(e.Value[2])}
		}
	case palette.SpaceGray:
		if len(e.Value) >= 1 {
			v := clamp(e.Value[0])
			return RGB{v, v, v}
		}
	}
	return Black
}

// ColorName returns the human-readable name for a palette entry,
// falling back to the hex label when the entry is unnamed.
func ColorName(e palette.Entry) string {
	if e.Name != "" {
		return e.Name
	}
	return ToHex(DisplayColor(e))
}

// ToHex formats a display color as an uppercase hex string like "#FF0000".
// Each channel is rounded to the nearest 8-bit value.
func ToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X",
		uint8(math.Round(clamp(c.R)*255)),
		uint8(math.Round(clamp(c.G)*255)),
		uint8(math.Round(clamp(c.B)*255)))
}

// hsv returns hue in degrees, saturation and value in percent.
func hsv(c RGB) (h, s, v float64) {
	h, s, v = colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
	return h, s * 100, v * 100
}

// TextColor picks a readable label color for text drawn over c.
// Dark swatches and saturated red-to-magenta swatches get white text.
func TextColor(c RGB) RGB {
	h, s, v := hsv(c)
	if v < 55 {
		return White
	}
	if s > 80 && (h > 210 || h < 20) {
		return White
	}
	return Black
}

// NeedsOutline reports whether a swatch is bright and desaturated
// enough to vanish against the canvas background, in which case the
// renderer draws a thin outline around it.
func NeedsOutline(c RGB) bool {
	_, s, v := hsv(c)
	return s < 10 && v > 90
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

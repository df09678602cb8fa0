package cms

import (
	"testing"

	"swatchbook/internal/palette"

	"github.com/stretchr/testify/assert"
)

func TestToHex(t *testing.T) {
	assert.Equal(t, "#FF0000", ToHex(RGB{1, 0, 0}))
	assert.Equal(t, "#000000", ToHex(RGB{0, 0, 0}))
	assert.Equal(t, "#FFFFFF", ToHex(RGB{1, 1, 1}))
	assert.Equal(t, "#808080", ToHex(RGB{0.502, 0.502, 0.502}))
}

func TestToHexClampsChannels(t *testing.T) {
	assert.Equal(t, "#FF0000", ToHex(RGB{1.7, -0.2, 0}))
}

func TestDisplayColor(t *testing.T) {
	c := DisplayColor(palette.NewRGB(0.2, 0.4, 0.6))
	assert.InDelta(t, 0.2, c.R, 1e-9)
	assert.InDelta(t, 0.4, c.G, 1e-9)
	assert.InDelta(t, 0.6, c.B, 1e-9)

	g := DisplayColor(palette.NewGray(0.5))
	assert.Equal(t, RGB{0.5, 0.5, 0.5}, g)

	// Unknown colorspaces fall back to black.
	unknown := DisplayColor(palette.Entry{Space: "CMYK", Value: []float64{0, 0, 0, 1}})
	assert.Equal(t, Black, unknown)
}

func TestColorName(t *testing.T) {
	named := palette.NewRGB(1, 0, 0)
	named.Name = "Fire engine"
	assert.Equal(t, "Fire engine", ColorName(named))

	assert.Equal(t, "#FF0000", ColorName(palette.NewRGB(1, 0, 0)))
}

func TestTextColor(t *testing.T) {
	// Dark swatches get white text.
	assert.Equal(t, White, TextColor(RGB{0, 0, 0}))
	assert.Equal(t, White, TextColor(RGB{0.2, 0.2, 0.2}))

	// Saturated red gets white text even though it is bright.
	assert.Equal(t, White, TextColor(RGB{1, 0, 0}))
	// Saturated blue/magenta range too.
	assert.Equal(t, White, TextColor(RGB{1, 0, 1}))

	// Bright, mid-hue swatches get black text.
	assert.Equal(t, Black, TextColor(RGB{1, 1, 1}))
	assert.Equal(t, Black, TextColor(RGB{0, 1, 0}))
	assert.Equal(t, Black, TextColor(RGB{1, 1, 0}))
}

func TestNeedsOutline(t *testing.T) {
	assert.True(t, NeedsOutline(RGB{1, 1, 1}))
	assert.True(t, NeedsOutline(RGB{0.97, 0.96, 0.95}))

	assert.False(t, NeedsOutline(RGB{1, 0, 0}))
	assert.False(t, NeedsOutline(RGB{0.5, 0.5, 0.5}))
}

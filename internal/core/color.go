package core

import (
	"fmt"
	"math"
)

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Predefined colors used by the platform when a document does not say.
var (
	ColorTransparent = Color{}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorHighlight   = Color{0.95, 0.75, 0.2, 1}
)

// RGBA builds a color from its components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Valid reports whether every component lies in [0, 1].
func (c Color) Valid() bool {
	for _, v := range [4]float64{c.R, c.G, c.B, c.A} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// IsTransparent reports whether the color paints nothing.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// Over composites c on top of dst.
func (c Color) Over(dst Color) Color {
	if c.A >= 1 {
		return c
	}
	if c.A <= 0 {
		return dst
	}
	a := c.A + dst.A*(1-c.A)
	if a == 0 {
		return ColorTransparent
	}
	mix := func(s, d float64) float64 {
		return (s*c.A + d*dst.A*(1-c.A)) / a
	}
	return Color{R: mix(c.R, dst.R), G: mix(c.G, dst.G), B: mix(c.B, dst.B), A: a}
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	to8 := func(v float64) int {
		return int(math.Round(ClampF(v, 0, 1) * 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

package core

// Default logical viewport, matching the display configuration shipped in
// resources/display_config.yaml.
const (
	DefaultViewportW = 1280
	DefaultViewportH = 720
)

// RuntimeConfig describes the surface a scene is presented on.
type RuntimeConfig struct {
	ScreenW   int     // Screen width in characters
	ScreenH   int     // Screen height in characters
	ViewportW float64 // Logical width in pixels the document is laid out against
	ViewportH float64 // Logical height in pixels
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		ViewportW: DefaultViewportW,
		ViewportH: DefaultViewportH,
	}
}

// CellScale returns how many cells one logical pixel covers on each axis.
func (c RuntimeConfig) CellScale() (float64, float64) {
	if c.ViewportW <= 0 || c.ViewportH <= 0 {
		return 0, 0
	}
	return float64(c.ScreenW) / c.ViewportW, float64(c.ScreenH) / c.ViewportH
}

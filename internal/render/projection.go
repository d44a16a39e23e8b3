package render

import "cruiser/internal/core"

// lcdOrigin is the LCD coordinate mapped to the window's top-left corner;
// integer coordinates land on pixel centres.
const lcdOrigin = -0.5

// Projection maps LCD coordinates to window pixels with y growing down.
type Projection struct {
	LCD   core.Size
	Scale int
}

// NewProjection returns a projection for an LCD of the given size. A
// non-positive scale is treated as 1.
func NewProjection(lcd core.Size, scale int) Projection {
	if scale <= 0 {
		scale = 1
	}
	return Projection{LCD: lcd, Scale: scale}
}

// Window returns the window size in pixels.
func (p Projection) Window() core.Size {
	return core.Size{W: p.LCD.W * p.Scale, H: p.LCD.H * p.Scale}
}

// ToWindow converts an LCD coordinate to window pixels.
func (p Projection) ToWindow(x, y float64) (float32, float32) {
	s := float64(p.Scale)
	return float32((x - lcdOrigin) * s), float32((y - lcdOrigin) * s)
}

// StrokeWidth returns the line width in window pixels for one LCD line.
func (p Projection) StrokeWidth() float32 {
	w := float32(p.Scale) / 8
	if w < 1 {
		return 1
	}
	return w
}

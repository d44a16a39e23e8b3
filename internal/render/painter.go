//go:build ebiten

package render

import (
	"image/color"

	"cruiser/internal/console"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LinePainter strokes recorded console segments onto an ebiten image.
type LinePainter struct {
	proj  Projection
	paper color.Color
	ink   color.Color
}

// NewLinePainter returns a painter drawing black lines on white.
func NewLinePainter(proj Projection) *LinePainter {
	return &LinePainter{proj: proj, paper: color.White, ink: color.Black}
}

// Paint clears dst and strokes every segment.
func (lp *LinePainter) Paint(dst *ebiten.Image, segs []console.Segment) {
	dst.Fill(lp.paper)
	width := lp.proj.StrokeWidth()
	for _, s := range segs {
		x0, y0 := lp.proj.ToWindow(s.X0, s.Y0)
		x1, y1 := lp.proj.ToWindow(s.X1, s.Y1)
		vector.StrokeLine(dst, x0, y0, x1, y1, width, lp.ink, true)
	}
}

// Projection returns the painter's coordinate mapping.
func (lp *LinePainter) Projection() Projection { return lp.proj }

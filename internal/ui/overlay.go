//go:build ebiten

package ui

import (
	"image/color"

	"cruiser/internal/console"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// padCell is the size of one button square in window pixels.
const padCell = 10

// padLayout places each button on a 5x3 grid: d-pad on the left, A/B/C on
// the right.
var padLayout = map[console.Button][2]int{
	console.BtnUp:    {1, 0},
	console.BtnLeft:  {0, 1},
	console.BtnRight: {2, 1},
	console.BtnDown:  {1, 2},
	console.BtnC:     {4, 0},
	console.BtnB:     {4, 1},
	console.BtnA:     {4, 2},
}

// Overlay draws a button pad in the bottom-right corner showing which
// handheld buttons are down. F2 toggles it.
type Overlay struct {
	buttons *console.Buttons
	visible bool
}

// NewOverlay constructs a hidden overlay for the given buttons.
func NewOverlay(buttons *console.Buttons) *Overlay {
	return &Overlay{buttons: buttons}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		o.visible = !o.visible
	}
}

// Draw renders the pad onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	bounds := screen.Bounds()
	originX := float32(bounds.Dx() - 6*padCell)
	originY := float32(bounds.Dy() - 4*padCell)
	up := color.RGBA{R: 180, G: 180, B: 190, A: 160}
	down := color.RGBA{R: 40, G: 120, B: 220, A: 220}
	for _, btn := range console.AllButtons {
		pos := padLayout[btn]
		x := originX + float32(pos[0]*padCell)
		y := originY + float32(pos[1]*padCell)
		col := up
		if o.buttons.Pressed(btn) {
			col = down
		}
		vector.DrawFilledRect(screen, x+1, y+1, padCell-2, padCell-2, col, false)
	}
}

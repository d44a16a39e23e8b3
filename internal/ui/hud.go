//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"cruiser/internal/console"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 14
)

// HUD prints frame-gate statistics over the game view. F1 toggles it.
type HUD struct {
	con     *console.Console
	stats   *FrameStats
	visible bool

	lastFrames uint64
	rate       float64
}

// NewHUD constructs a hidden HUD for the console.
func NewHUD(con *console.Console) *HUD {
	return &HUD{con: con, stats: NewFrameStats(time.Second)}
}

// Update records admissions and handles the toggle key.
func (h *HUD) Update(now time.Time) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		h.visible = !h.visible
	}
	if frames := h.con.Frames(); frames != h.lastFrames {
		h.lastFrames = frames
		h.stats.Record(now)
	}
	h.rate = h.stats.Rate(now)
}

// Draw paints the HUD text in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	var buttons []string
	for _, b := range h.con.Buttons.Down() {
		buttons = append(buttons, b.String())
	}
	lines := []string{
		fmt.Sprintf("frames %d", h.stats.Total()),
		fmt.Sprintf("rate   %.1f/s (gate %s)", h.rate, h.con.Gate().Interval()),
		fmt.Sprintf("lines  %d", h.con.Display.List().Len()),
		"keys   " + strings.Join(buttons, " "),
	}
	face := basicfont.Face7x13
	ink := color.RGBA{R: 200, G: 40, B: 40, A: 255}
	for i, line := range lines {
		text.Draw(screen, line, face, hudPadding, hudPadding+hudLineHeight*(i+1), ink)
	}
}

//go:build !ebiten

package ui

import (
	"time"

	"cruiser/internal/console"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*console.Console) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(time.Time) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}

package app

import (
	"context"
	"fmt"

	"cruiser/internal/console"
	"cruiser/internal/registry"
)

// InputSource supplies the keys held down for a headless frame.
type InputSource interface {
	Keys(frame uint64) []byte
}

// ScriptedInput replays a fixed key set per frame; frames past the end of
// the script have no keys down.
type ScriptedInput [][]byte

// Keys returns the keys for frame (1-based).
func (s ScriptedInput) Keys(frame uint64) []byte {
	if frame == 0 || frame > uint64(len(s)) {
		return nil
	}
	return s[frame-1]
}

// Headless drives a game without a window. Each frame blocks on the
// console's frame gate, exactly like the handheld main loop.
type Headless struct {
	game  registry.Game
	con   *console.Console
	input InputSource
}

// NewHeadless constructs a runner. A nil input leaves every key up.
func NewHeadless(game registry.Game, con *console.Console, input InputSource) *Headless {
	if input == nil {
		input = ScriptedInput(nil)
	}
	return &Headless{game: game, con: con, input: input}
}

// Run sets the game up and runs frames until n frames were admitted or ctx
// is done. A non-positive n runs until ctx is done.
func (h *Headless) Run(ctx context.Context, n int) error {
	logger := h.con.Logger()
	h.game.Setup(h.con)
	logger.Info("headless run", "game", h.game.ID(), "frames", n, "interval", h.con.Gate().Interval())

	for i := 0; n <= 0 || i < n; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("headless run stopped after %d frames: %w", i, err)
		}
		if !h.con.Update() {
			continue
		}
		frame := h.con.Frames()
		h.con.Buttons.SetPressed(h.input.Keys(frame))
		h.game.Frame(h.con)
		logger.Debug("frame", "n", frame, "lines", h.con.Display.List().Len())
	}
	logger.Info("headless run finished", "frames", h.con.Frames())
	return nil
}

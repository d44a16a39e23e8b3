//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"cruiser/internal/app"
	"cruiser/internal/console"
	"cruiser/internal/core"
)

func runWindow(s *session) error {
	game := app.New(s.game, s.con, core.SystemClock{}, s.cfg.Window.Scale)
	scale := s.cfg.Window.Scale

	title := s.cfg.Window.Title
	if s.game.Title() != title {
		title += " — " + s.game.Title()
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(console.LCDWidth*scale, console.LCDHeight*scale)
	ebiten.SetTPS(s.cfg.Window.TPS)

	s.logger.Info("opening window", "game", s.game.ID(), "scale", scale, "tps", s.cfg.Window.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

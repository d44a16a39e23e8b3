//go:build ebiten

package app

import (
	"cruiser/internal/console"
	"cruiser/internal/core"
	"cruiser/internal/registry"
	"cruiser/internal/render"
	"cruiser/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a handheld game running on an emulated console to the
// ebiten.Game interface. ebiten calls Update at its own tick rate; the
// console's frame gate decides which ticks run a game frame.
type Game struct {
	game    registry.Game
	con     *console.Console
	clock   core.Clock
	painter *render.LinePainter
	hud     *ui.HUD
	overlay *ui.Overlay

	keys    []ebiten.Key
	names   []string
	pressed []byte
}

// New constructs a Game and runs the handheld game's setup.
func New(game registry.Game, con *console.Console, clock core.Clock, scale int) *Game {
	if clock == nil {
		clock = core.SystemClock{}
	}
	lcd := core.Size{W: console.LCDWidth, H: console.LCDHeight}
	g := &Game{
		game:    game,
		con:     con,
		clock:   clock,
		painter: render.NewLinePainter(render.NewProjection(lcd, scale)),
		hud:     ui.NewHUD(con),
		overlay: ui.NewOverlay(con.Buttons),
	}
	game.Setup(con)
	return g
}

// Update feeds keyboard state to the console and runs a game frame when the
// frame gate admits one.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.keys = inpututil.AppendPressedKeys(g.keys[:0])
	g.names = g.names[:0]
	for _, k := range g.keys {
		g.names = append(g.names, k.String())
	}
	g.pressed = keyBytes(g.pressed[:0], g.names)
	g.con.Buttons.SetPressed(g.pressed)

	now := g.clock.Now()
	if g.con.Poll(now) {
		g.game.Frame(g.con)
	}
	g.hud.Update(now)
	g.overlay.Update()
	return nil
}

// Draw presents the drawing requests of the last admitted frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Paint(screen, g.con.Display.List().Segments())
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.painter.Projection().Window()
	return s.W, s.H
}

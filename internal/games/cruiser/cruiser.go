// Package cruiser is the demo game: a wireframe ship that turns, thrusts and
// fires across the handheld screen.
package cruiser

import (
	"math"

	"cruiser/internal/config"
	"cruiser/internal/console"
	"cruiser/internal/registry"
	"cruiser/internal/vec"
)

const (
	noseLength = 3.0
	tailLength = 2.0
	tailWidth  = 2.0
	horizonY   = console.LCDHeight - 1
)

// up is the screen normal; forward × up is the ship's lateral axis.
var up = vec.New(0, 0, 1)

// Ship is the player craft.
type Ship struct {
	Pos     vec.Vec3
	Vel     vec.Vec3
	Heading float64
}

// Forward returns the unit vector the ship points along.
func (s Ship) Forward() vec.Vec3 {
	return vec.New(math.Cos(s.Heading), math.Sin(s.Heading), 0)
}

type shot struct {
	pos  vec.Vec3
	vel  vec.Vec3
	life int
}

// Game implements registry.Game.
type Game struct {
	cfg   config.CruiserConfig
	ship  Ship
	shots []shot

	fireLatched bool
}

// New returns a game using the given tunables.
func New(cfg config.CruiserConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset()
	return g
}

// ID returns the registry identifier.
func (g *Game) ID() string { return "cruiser" }

// Title returns the display name.
func (g *Game) Title() string { return "Cruiser" }

// Configure replaces the tunables.
func (g *Game) Configure(cfg config.Config) { g.cfg = cfg.Cruiser }

// Ship returns the current ship state.
func (g *Game) Ship() Ship { return g.ship }

// Shots returns the number of live shots.
func (g *Game) Shots() int { return len(g.shots) }

// Reset puts the ship back in the middle of the screen, at rest and facing up.
func (g *Game) Reset() {
	g.ship = Ship{
		Pos:     vec.New(console.LCDWidth/2, console.LCDHeight/2, 0),
		Heading: -math.Pi / 2,
	}
	g.shots = g.shots[:0]
	g.fireLatched = false
}

// Setup prepares the console.
func (g *Game) Setup(c *console.Console) {
	c.Begin()
	c.TitleScreen(g.Title())
	c.Battery.Show = false
}

// Frame runs one admitted frame.
func (g *Game) Frame(c *console.Console) {
	g.handleControls(c)
	g.movePlayer()
	g.moveShots()
	g.updateScene(c.Display)
}

func (g *Game) handleControls(c *console.Console) {
	b := c.Buttons
	if b.Pressed(console.BtnC) {
		g.Reset()
		c.Logf("cruiser reset")
		return
	}
	if b.Pressed(console.BtnLeft) {
		g.ship.Heading -= g.cfg.TurnRate
	}
	if b.Pressed(console.BtnRight) {
		g.ship.Heading += g.cfg.TurnRate
	}
	fwd := g.ship.Forward()
	if b.Pressed(console.BtnUp) {
		g.ship.Vel.AddInPlace(fwd.Scale(g.cfg.Thrust))
	}
	if b.Pressed(console.BtnDown) {
		g.ship.Vel.ScaleInPlace(g.cfg.Brake)
	}

	if b.Released(console.BtnA) {
		g.fireLatched = false
		return
	}
	if g.fireLatched {
		return
	}
	g.fireLatched = true
	if len(g.shots) >= g.cfg.MaxShots {
		return
	}
	g.shots = append(g.shots, shot{
		pos:  g.ship.Pos.Add(fwd.Scale(noseLength)),
		vel:  g.ship.Vel.Add(fwd.Scale(g.cfg.ShotSpeed)),
		life: g.cfg.ShotLife,
	})
	c.Logf("shot fired, %d live", len(g.shots))
}

func (g *Game) movePlayer() {
	g.ship.Vel.ScaleInPlace(g.cfg.Drag)
	if speed := g.ship.Vel.Len(); speed > 0 && speed > g.cfg.MaxSpeed {
		g.ship.Vel.Normalize()
		g.ship.Vel.ScaleInPlace(g.cfg.MaxSpeed)
	}
	g.ship.Pos.AddInPlace(g.ship.Vel)
	g.ship.Pos = wrap(g.ship.Pos)
}

func (g *Game) moveShots() {
	live := g.shots[:0]
	for _, s := range g.shots {
		s.life--
		if s.life <= 0 {
			continue
		}
		s.pos = wrap(s.pos.Add(s.vel))
		live = append(live, s)
	}
	g.shots = live
}

func (g *Game) updateScene(d *console.Display) {
	d.DrawLine(0, horizonY<<4, (console.LCDWidth-1)<<4, horizonY<<4)

	nose, port, starboard := g.hull()
	d.DrawLineF(nose.X, nose.Y, port.X, port.Y)
	d.DrawLineF(port.X, port.Y, starboard.X, starboard.Y)
	d.DrawLineF(starboard.X, starboard.Y, nose.X, nose.Y)

	for _, s := range g.shots {
		d.DrawPixel(int(s.pos.X), int(s.pos.Y))
	}
}

// hull returns the three corners of the ship triangle.
func (g *Game) hull() (nose, port, starboard vec.Vec3) {
	fwd := g.ship.Forward()
	side := fwd.Cross(up)
	tail := g.ship.Pos.Sub(fwd.Scale(tailLength))
	nose = g.ship.Pos.Add(fwd.Scale(noseLength))
	port = tail.Sub(side.Scale(tailWidth))
	starboard = tail.Add(side.Scale(tailWidth))
	return nose, port, starboard
}

func wrap(p vec.Vec3) vec.Vec3 {
	p.X = wrapAxis(p.X, console.LCDWidth)
	p.Y = wrapAxis(p.Y, console.LCDHeight)
	return p
}

func wrapAxis(v float64, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}

func init() {
	registry.Register("cruiser", func() registry.Game {
		return New(config.Default().Cruiser)
	})
}

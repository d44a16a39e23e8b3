package cruiser

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cruiser/internal/config"
	"cruiser/internal/console"
	"cruiser/internal/registry"
	"cruiser/internal/vec"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time        { return c.now }
func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

func newConsole() *console.Console {
	return console.New(console.Options{Clock: &fakeClock{now: time.Unix(0, 0)}})
}

func frictionless() config.CruiserConfig {
	cfg := config.Default().Cruiser
	cfg.Drag = 1
	return cfg
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists("cruiser"))
	g, err := registry.Create("cruiser")
	require.NoError(t, err)
	assert.Equal(t, "Cruiser", g.Title())
}

func TestStartsCenteredFacingUp(t *testing.T) {
	g := New(config.Default().Cruiser)
	s := g.Ship()
	assert.Equal(t, vec.New(42, 24, 0), s.Pos)
	fwd := s.Forward()
	assert.InDelta(t, 0, fwd.X, 1e-12)
	assert.InDelta(t, -1, fwd.Y, 1e-12)
}

func TestThrustAcceleratesAlongHeading(t *testing.T) {
	c := newConsole()
	g := New(frictionless())
	c.Buttons.SetPressed([]byte{'w'})

	g.Frame(c)
	s := g.Ship()
	assert.InDelta(t, 0, s.Vel.X, 1e-12)
	assert.InDelta(t, -0.35, s.Vel.Y, 1e-12)
	assert.InDelta(t, 24-0.35, s.Pos.Y, 1e-12)
}

func TestTurnRotatesHeading(t *testing.T) {
	c := newConsole()
	g := New(config.Default().Cruiser)
	start := g.Ship().Heading

	c.Buttons.SetPressed([]byte{'d'})
	g.Frame(c)
	assert.InDelta(t, start+0.25, g.Ship().Heading, 1e-12)

	c.Buttons.SetPressed([]byte{'a'})
	g.Frame(c)
	g.Frame(c)
	assert.InDelta(t, start-0.25, g.Ship().Heading, 1e-12)
}

func TestSpeedIsClamped(t *testing.T) {
	c := newConsole()
	g := New(frictionless())
	c.Buttons.SetPressed([]byte{'w'})
	for i := 0; i < 50; i++ {
		g.Frame(c)
	}
	assert.InDelta(t, 3.0, g.Ship().Vel.Len(), 1e-9)
}

func TestBrakeAndDragSlowTheShip(t *testing.T) {
	c := newConsole()
	g := New(config.Default().Cruiser)
	c.Buttons.SetPressed([]byte{'w'})
	g.Frame(c)
	moving := g.Ship().Vel.Len()

	c.Buttons.SetPressed([]byte{'s'})
	g.Frame(c)
	assert.InDelta(t, moving*0.8*0.96, g.Ship().Vel.Len(), 1e-12)

	c.Buttons.SetPressed(nil)
	before := g.Ship().Vel.Len()
	g.Frame(c)
	assert.Less(t, g.Ship().Vel.Len(), before)
}

func TestPositionWraps(t *testing.T) {
	assert.Equal(t, vec.New(1, 47, 5), wrap(vec.New(85, -1, 5)))
	assert.Equal(t, vec.New(0, 0, 0), wrap(vec.New(84, 48, 0)))
}

func TestFireIsEdgeTriggeredAndCapped(t *testing.T) {
	c := newConsole()
	cfg := config.Default().Cruiser
	cfg.MaxShots = 2
	cfg.ShotLife = 100
	g := New(cfg)

	c.Buttons.SetPressed([]byte{'k'})
	g.Frame(c)
	g.Frame(c)
	assert.Equal(t, 1, g.Shots(), "holding fire shoots once")

	for i := 0; i < 3; i++ {
		c.Buttons.SetPressed(nil)
		g.Frame(c)
		c.Buttons.SetPressed([]byte{'k'})
		g.Frame(c)
	}
	assert.Equal(t, 2, g.Shots())
}

func TestShotsExpire(t *testing.T) {
	c := newConsole()
	cfg := config.Default().Cruiser
	cfg.ShotLife = 3
	g := New(cfg)

	c.Buttons.SetPressed([]byte{'k'})
	g.Frame(c)
	require.Equal(t, 1, g.Shots())
	c.Buttons.SetPressed(nil)
	g.Frame(c)
	assert.Equal(t, 1, g.Shots())
	g.Frame(c)
	assert.Zero(t, g.Shots())
}

func TestResetButton(t *testing.T) {
	c := newConsole()
	g := New(config.Default().Cruiser)
	c.Buttons.SetPressed([]byte{'w', 'k'})
	g.Frame(c)
	c.Buttons.SetPressed([]byte{'r'})
	g.Frame(c)

	assert.Equal(t, vec.New(42, 24, 0), g.Ship().Pos)
	assert.Equal(t, vec.Zero, g.Ship().Vel)
	assert.Zero(t, g.Shots())
}

func TestSceneDrawing(t *testing.T) {
	c := newConsole()
	g := New(config.Default().Cruiser)
	c.Buttons.SetPressed([]byte{'k'})
	g.Frame(c)

	segs := c.Display.List().Segments()
	// horizon + hull triangle + one shot outline
	require.Len(t, segs, 1+3+4)
	assert.Equal(t, console.Segment{X0: 0, Y0: 47, X1: 83, Y1: 47}, segs[0])

	nose, port, starboard := g.hull()
	assert.Equal(t, console.Segment{X0: nose.X, Y0: nose.Y, X1: port.X, Y1: port.Y}, segs[1])
	assert.InDelta(t, nose.Sub(port).Len(), nose.Sub(starboard).Len(), 1e-9, "hull is symmetric")

	mid := port.Add(starboard).Scale(0.5)
	assert.InDelta(t, 0, nose.Sub(mid).Dot(port.Sub(starboard)), 1e-9)
	assert.InDelta(t, noseLength+tailLength, nose.Sub(mid).Len(), 1e-9)
}

func TestConfigure(t *testing.T) {
	cfg := config.Default()
	cfg.Cruiser.TurnRate = math.Pi
	g := New(config.Default().Cruiser)
	g.Configure(cfg)

	c := newConsole()
	start := g.Ship().Heading
	c.Buttons.SetPressed([]byte{'d'})
	g.Frame(c)
	assert.InDelta(t, start+math.Pi, g.Ship().Heading, 1e-12)
}

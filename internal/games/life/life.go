// Package life runs Conway's Game of Life on the handheld screen, one
// generation per admitted frame.
package life

import (
	"cruiser/internal/console"
	"cruiser/internal/core"
	"cruiser/internal/registry"
)

const defaultSeed = 42

// Life implements registry.Game with toroidal wrapping.
type Life struct {
	w, h int
	cur  []uint8
	nxt  []uint8
	seed int64
}

// New returns a Life board covering the LCD.
func New() *Life {
	w, h := console.LCDWidth, console.LCDHeight
	cells := make([]uint8, w*h)
	return &Life{w: w, h: h, cur: cells, nxt: make([]uint8, len(cells)), seed: defaultSeed}
}

// ID returns the registry identifier.
func (l *Life) ID() string { return "life" }

// Title returns the display name.
func (l *Life) Title() string { return "Game of Life" }

// Cells exposes the current generation in row-major order.
func (l *Life) Cells() []uint8 { return l.cur }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	l.seed = seed
	core.NewRNG(seed).FillBinary(l.cur)
}

// Setup seeds the board.
func (l *Life) Setup(c *console.Console) {
	c.Begin()
	l.Reset(l.seed)
}

// Frame handles input, advances one generation unless B is held, and draws
// every live cell. C reseeds the board.
func (l *Life) Frame(c *console.Console) {
	if c.Buttons.Pressed(console.BtnC) {
		l.Reset(l.seed + 1)
		c.Logf("life reseeded with %d", l.seed)
	}
	if c.Buttons.Released(console.BtnB) {
		l.Step()
	}
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			if l.cur[y*l.w+x] != 0 {
				c.Display.DrawPixel(x, y)
			}
		}
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(l.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := l.cur[idx] == 1
			l.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				l.nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	registry.Register("life", func() registry.Game { return New() })
}

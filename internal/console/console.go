// Package console emulates the handheld game-console API on a desktop host.
// Games talk to a Console exactly as they would to the hardware; the host
// feeds it keyboard state and presents the drawing requests it records.
package console

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"cruiser/internal/core"
)

// Battery mirrors the handheld battery indicator settings.
type Battery struct {
	Show bool
}

// Options configures a Console.
type Options struct {
	Clock         core.Clock
	FrameInterval time.Duration
	Keys          Keymap
	Logger        *log.Logger
}

// Console is the emulated handheld. It owns the frame gate for its whole
// lifetime; nothing else mutates the gate's timestamp.
type Console struct {
	Battery Battery
	Buttons *Buttons
	Display *Display

	clock  core.Clock
	start  time.Time
	gate   *core.FrameGate
	logger *log.Logger
	frames uint64
}

// New constructs a Console. Zero-valued options fall back to the system
// clock, the default frame interval, the default keymap and a discarding
// logger.
func New(opts Options) *Console {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Console{
		Buttons: NewButtons(opts.Keys),
		Display: &Display{},
		clock:   clock,
		start:   clock.Now(),
		gate:    core.NewFrameGate(clock, opts.FrameInterval),
		logger:  logger,
	}
}

// Begin initializes the console.
func (c *Console) Begin() {
	c.logger.Debug("console begin", "interval", c.gate.Interval())
}

// TitleScreen would show the game's title card; the port skips it.
func (c *Console) TitleScreen(name string) {
	c.logger.Debug("title screen skipped", "title", name)
}

// FreeRAM reports free memory in bytes. Always 0 on the desktop.
func (c *Console) FreeRAM() uint16 { return 0 }

// Millis returns milliseconds since the console was constructed. Like the
// handheld counter it wraps at 32 bits.
func (c *Console) Millis() uint32 {
	return uint32(c.clock.Now().Sub(c.start).Milliseconds())
}

// Micros returns microseconds since the console was constructed, wrapping at
// 32 bits.
func (c *Console) Micros() uint32 {
	return uint32(c.clock.Now().Sub(c.start).Microseconds())
}

// Update blocks until the next frame is due and admits it, clearing the
// display for the new frame. It always returns true.
func (c *Console) Update() bool {
	c.gate.TryAdvance()
	c.admit()
	return true
}

// Poll admits a frame if one is due at now, without blocking. On admission
// the display is cleared for the new frame.
func (c *Console) Poll(now time.Time) bool {
	if !c.gate.Ready(now) {
		return false
	}
	c.admit()
	return true
}

func (c *Console) admit() {
	c.Display.Clear()
	c.frames++
}

// Frames returns how many frames have been admitted.
func (c *Console) Frames() uint64 { return c.frames }

// Gate exposes the console's frame gate.
func (c *Console) Gate() *core.FrameGate { return c.gate }

// Logger returns the console's logger.
func (c *Console) Logger() *log.Logger { return c.logger }

// Logf is the handheld LOG facility.
func (c *Console) Logf(format string, args ...any) {
	c.logger.Debugf(format, args...)
}

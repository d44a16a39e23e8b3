package console

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time        { return c.now }
func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

func TestDefaultKeymap(t *testing.T) {
	b := NewButtons(nil)
	for _, btn := range AllButtons {
		assert.Falsef(t, b.Pressed(btn), "%s pressed with no keys down", btn)
		assert.True(t, b.Released(btn))
	}

	b.SetKey('w', true)
	b.SetKey('k', true)
	assert.True(t, b.Pressed(BtnUp))
	assert.True(t, b.Pressed(BtnA))
	assert.True(t, b.Repeat(BtnA, 3))
	assert.False(t, b.Held(BtnA, 1))
	assert.False(t, b.Released(BtnUp))
	assert.Equal(t, []Button{BtnA, BtnUp}, b.Down())

	b.SetKey('w', false)
	assert.False(t, b.Pressed(BtnUp))
	assert.True(t, b.Released(BtnUp))
}

func TestSetPressedReplacesState(t *testing.T) {
	b := NewButtons(nil)
	b.SetPressed([]byte{'a', 'd'})
	assert.True(t, b.Pressed(BtnLeft))
	assert.True(t, b.Pressed(BtnRight))

	b.SetPressed([]byte{'s'})
	assert.False(t, b.Pressed(BtnLeft))
	assert.False(t, b.Pressed(BtnRight))
	assert.True(t, b.Pressed(BtnDown))
	assert.True(t, b.KeyDown('s'))
}

func TestCustomKeymapAndUnknownButton(t *testing.T) {
	b := NewButtons(Keymap{BtnA: 'z'})
	b.SetKey('z', true)
	b.SetKey('k', true)
	assert.True(t, b.Pressed(BtnA))
	// unbound buttons resolve to key 0, which is never set by the host
	assert.False(t, b.Pressed(BtnB))
	assert.False(t, b.Pressed(Button(42)))
}

func TestParseButton(t *testing.T) {
	for _, btn := range AllButtons {
		got, ok := ParseButton(btn.String())
		require.True(t, ok)
		assert.Equal(t, btn, got)
	}
	_, ok := ParseButton("start")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Button(99).String())
}

func TestDrawLineFixedPoint(t *testing.T) {
	d := &Display{}
	d.DrawLine(16, 32, 83<<4|15, 47<<4)
	require.Equal(t, 1, d.List().Len())
	assert.Equal(t, Segment{X0: 1, Y0: 2, X1: 83, Y1: 47}, d.List().Segments()[0])

	// negative coordinates shift arithmetically
	d.DrawLine(-16, -1, 0, 0)
	assert.Equal(t, Segment{X0: -1, Y0: -1, X1: 0, Y1: 0}, d.List().Segments()[1])
}

func TestDrawPixelOutlinesCell(t *testing.T) {
	d := &Display{}
	d.DrawPixel(3, 5)
	segs := d.List().Segments()
	require.Len(t, segs, 4)
	for i, s := range segs {
		next := segs[(i+1)%len(segs)]
		assert.Equal(t, s.X1, next.X0, "outline must be closed")
		assert.Equal(t, s.Y1, next.Y0, "outline must be closed")
		for _, x := range []float64{s.X0, s.X1} {
			assert.InDelta(t, 3.5, x, 0.3+1e-9)
		}
		for _, y := range []float64{s.Y0, s.Y1} {
			assert.InDelta(t, 5.5, y, 0.3+1e-9)
		}
	}
}

func TestDisplayTextIsDiscarded(t *testing.T) {
	d := &Display{}
	d.Print("score")
	d.Println("")
	d.PrintInt(12)
	d.PrintFloat(1.5)
	assert.Equal(t, 4, d.Prints())
	assert.Zero(t, d.List().Len())

	d.Clear()
	assert.Zero(t, d.Prints())
}

func TestPollAdmitsAndClearsDisplay(t *testing.T) {
	clock := &fakeClock{now: epoch}
	c := New(Options{Clock: clock})

	c.Display.DrawLineF(0, 0, 1, 1)
	assert.False(t, c.Poll(epoch.Add(50*time.Millisecond)))
	assert.Equal(t, 1, c.Display.List().Len(), "a rejected poll keeps the frame")

	assert.True(t, c.Poll(epoch.Add(51*time.Millisecond)))
	assert.Zero(t, c.Display.List().Len())
	assert.Equal(t, uint64(1), c.Frames())
	assert.Equal(t, epoch.Add(51*time.Millisecond), c.Gate().Last())
}

func TestUpdateBlocksOnClock(t *testing.T) {
	clock := &fakeClock{now: epoch}
	c := New(Options{Clock: clock, FrameInterval: 20 * time.Millisecond})

	for i := 1; i <= 3; i++ {
		require.True(t, c.Update())
		assert.Equal(t, uint64(i), c.Frames())
	}
	assert.Greater(t, clock.now.Sub(epoch), 60*time.Millisecond)
	assert.Equal(t, clock.now, c.Gate().Last())
}

func TestStubsAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	c := New(Options{Clock: &fakeClock{now: epoch}, Logger: logger})

	c.Begin()
	c.TitleScreen("Cruiser")
	c.Logf("speed=%d", 3)
	assert.Zero(t, c.FreeRAM())
	assert.False(t, c.Battery.Show)

	out := buf.String()
	assert.Contains(t, out, "console begin")
	assert.Contains(t, out, "Cruiser")
	assert.Contains(t, out, "speed=3")
}

func TestProgramMemoryReads(t *testing.T) {
	bytesTable := []byte{0x00, 0x10, 0x12, 0x02}
	words := []uint16{0xbeef, 0x0102}
	assert.Equal(t, byte(0x12), ReadByte(bytesTable, 2))
	assert.Equal(t, uint16(0x0102), ReadWord(words, 1))
}

func TestMillisAndMicrosFollowConsoleClock(t *testing.T) {
	clock := &fakeClock{now: epoch}
	c := New(Options{Clock: clock})
	assert.Zero(t, c.Millis())
	assert.Zero(t, c.Micros())

	clock.now = epoch.Add(1500*time.Millisecond + 250*time.Microsecond)
	assert.Equal(t, uint32(1500), c.Millis())
	assert.Equal(t, uint32(1500250), c.Micros())

	// the counters keep running across blocking frames
	require.True(t, c.Update())
	assert.Equal(t, uint32(1500), c.Millis())
	clock.now = epoch.Add(2 * time.Second)
	assert.Equal(t, uint32(2000), c.Millis())
}

package console

// LCD dimensions of the handheld screen.
const (
	LCDWidth  = 84
	LCDHeight = 48
)

// fixedShift converts 12.4 fixed-point coordinates to LCD units.
const fixedShift = 4

// pixelInset is how far a pixel outline sits inside its cell.
const pixelInset = 0.2

// Segment is one line drawing request in LCD coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// DrawList collects the drawing requests of one frame.
type DrawList struct {
	segs []Segment
}

// Line appends a segment.
func (l *DrawList) Line(x0, y0, x1, y1 float64) {
	l.segs = append(l.segs, Segment{X0: x0, Y0: y0, X1: x1, Y1: y1})
}

// Segments exposes the recorded segments. The slice is reused after Reset.
func (l *DrawList) Segments() []Segment { return l.segs }

// Len returns the number of recorded segments.
func (l *DrawList) Len() int { return len(l.segs) }

// Reset empties the list while keeping its capacity.
func (l *DrawList) Reset() { l.segs = l.segs[:0] }

// Snapshot returns a copy of the recorded segments.
func (l *DrawList) Snapshot() []Segment {
	return append([]Segment(nil), l.segs...)
}

// Display implements the handheld drawing and text API. Lines and pixels are
// recorded into a DrawList for the host to present; text output is counted
// and otherwise discarded.
type Display struct {
	list   DrawList
	prints int
}

// DrawLine draws a line between 12.4 fixed-point coordinates.
func (d *Display) DrawLine(x0, y0, x1, y1 int) {
	d.list.Line(
		float64(x0>>fixedShift), float64(y0>>fixedShift),
		float64(x1>>fixedShift), float64(y1>>fixedShift),
	)
}

// DrawLineF draws a line between LCD coordinates.
func (d *Display) DrawLineF(x0, y0, x1, y1 float64) { d.list.Line(x0, y0, x1, y1) }

// DrawPixel outlines the LCD cell at (x, y) as a small closed square.
func (d *Display) DrawPixel(x, y int) {
	lo := pixelInset
	hi := 1 - pixelInset
	fx, fy := float64(x), float64(y)
	d.list.Line(fx+lo, fy+lo, fx+hi, fy+lo)
	d.list.Line(fx+hi, fy+lo, fx+hi, fy+hi)
	d.list.Line(fx+hi, fy+hi, fx+lo, fy+hi)
	d.list.Line(fx+lo, fy+hi, fx+lo, fy+lo)
}

// Print discards s.
func (d *Display) Print(s string) { d.prints++ }

// Println discards s.
func (d *Display) Println(s string) { d.prints++ }

// PrintInt discards v.
func (d *Display) PrintInt(v int64) { d.prints++ }

// PrintFloat discards v.
func (d *Display) PrintFloat(v float64) { d.prints++ }

// Prints returns how many text calls were made since the last Clear.
func (d *Display) Prints() int { return d.prints }

// List exposes the recorded drawing requests.
func (d *Display) List() *DrawList { return &d.list }

// Clear drops all recorded requests.
func (d *Display) Clear() {
	d.list.Reset()
	d.prints = 0
}

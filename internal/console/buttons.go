package console

// Button identifies one of the handheld's physical buttons.
type Button int

// Button ids as the handheld API numbers them.
const (
	BtnA Button = iota + 1
	BtnB
	BtnC
	BtnUp
	BtnDown
	BtnLeft
	BtnRight
)

// AllButtons lists every button in id order.
var AllButtons = []Button{BtnA, BtnB, BtnC, BtnUp, BtnDown, BtnLeft, BtnRight}

var buttonNames = map[Button]string{
	BtnA:     "a",
	BtnB:     "b",
	BtnC:     "c",
	BtnUp:    "up",
	BtnDown:  "down",
	BtnLeft:  "left",
	BtnRight: "right",
}

// String returns the config name of the button.
func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return "unknown"
}

// ParseButton resolves a config name back to a Button.
func ParseButton(name string) (Button, bool) {
	for b, n := range buttonNames {
		if n == name {
			return b, true
		}
	}
	return 0, false
}

// Keymap binds buttons to keyboard keys. Keys are single bytes, matching the
// key codes a desktop keyboard callback reports for printable characters.
type Keymap map[Button]byte

// DefaultKeymap returns the stock WASD layout with K/L/R for A/B/C.
func DefaultKeymap() Keymap {
	return Keymap{
		BtnA:     'k',
		BtnB:     'l',
		BtnC:     'r',
		BtnUp:    'w',
		BtnDown:  's',
		BtnLeft:  'a',
		BtnRight: 'd',
	}
}

// Key returns the key bound to b, or 0 when b is unbound.
func (m Keymap) Key(b Button) byte { return m[b] }

// Buttons tracks which keys are currently down and answers button queries
// through a Keymap.
type Buttons struct {
	keys    Keymap
	keyDown [256]bool
}

// NewButtons returns a Buttons with every key up. A nil keymap uses
// DefaultKeymap.
func NewButtons(keys Keymap) *Buttons {
	if keys == nil {
		keys = DefaultKeymap()
	}
	return &Buttons{keys: keys}
}

// SetKey records a single key transition.
func (b *Buttons) SetKey(key byte, down bool) { b.keyDown[key] = down }

// SetPressed replaces the whole key state: keys listed are down, every other
// key is up.
func (b *Buttons) SetPressed(keys []byte) {
	b.keyDown = [256]bool{}
	for _, k := range keys {
		b.keyDown[k] = true
	}
}

// KeyDown reports whether key is currently down.
func (b *Buttons) KeyDown(key byte) bool { return b.keyDown[key] }

// Pressed reports whether the key bound to btn is down.
func (b *Buttons) Pressed(btn Button) bool { return b.keyDown[b.keys.Key(btn)] }

// Released reports whether the key bound to btn is up.
func (b *Buttons) Released(btn Button) bool { return !b.keyDown[b.keys.Key(btn)] }

// Held never fires; the desktop port does not track press durations.
func (b *Buttons) Held(btn Button, frames int) bool { return false }

// Repeat fires on every frame the key bound to btn is down.
func (b *Buttons) Repeat(btn Button, period int) bool { return b.keyDown[b.keys.Key(btn)] }

// Down lists the buttons whose keys are currently down.
func (b *Buttons) Down() []Button {
	var out []Button
	for _, btn := range AllButtons {
		if b.Pressed(btn) {
			out = append(out, btn)
		}
	}
	return out
}

package game

const LaneCount = 5

// KeyCode is a raw key number, as written in charts and delivered by the
// input layer. The values follow the Allegro keyboard numbering.
type KeyCode int

const (
	KeyA KeyCode = 1
	KeyD KeyCode = 4
	KeyF KeyCode = 6
	KeyG KeyCode = 7
	KeyS KeyCode = 19
)

// Keymap assigns one key code to each lane, left to right.
// A zero entry leaves that lane unreachable.
type Keymap [LaneCount]KeyCode

var DefaultKeymap = Keymap{KeyA, KeyS, KeyD, KeyF, KeyG}

func (k Keymap) Lane(code KeyCode) (int, bool) {
	if code == 0 {
		return -1, false
	}
	for lane, c := range k {
		if c == code {
			return lane, true
		}
	}
	return -1, false
}

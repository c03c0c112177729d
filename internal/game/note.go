package game

type State uint8

const (
	Pending State = iota // Loaded, not yet travelling
	Active               // Travelling toward the hit line
	Hit
	Missed
)

var stateNames = [...]string{"pending", "active", "hit", "missed"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Terminal reports whether the note has been resolved, either way
func (s State) Terminal() bool {
	return s == Hit || s == Missed
}

type Note struct {
	Time float64 // Song time in seconds this note should reach the hit line
	Lane int     // The chart column

	// This is state
	Position float64 // Distance travelled from the top of the field
	State    State
}

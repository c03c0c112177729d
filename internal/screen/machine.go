package screen

type Mode uint8

const (
	Menu Mode = iota
	SongSelect
	Playing
	ScoreScreen
)

func (m Mode) String() string {
	switch m {
	case Menu:
		return "menu"
	case SongSelect:
		return "song select"
	case Playing:
		return "playing"
	case ScoreScreen:
		return "score screen"
	}
	return "unknown"
}

type Action uint8

const (
	Up Action = iota
	Down
	Enter
	Back
)

// Command is what the driver must do after an action was handled
type Command uint8

const (
	None Command = iota
	Quit
	ListSongs // Scan the song directory and call SetSongs
	StartSong // Start playing Selected()
	StopSong  // Abort the running session
)

// Menu entries
const (
	MenuPlay = iota
	MenuQuit
	menuOptions
)

// Score screen entries
const (
	ScoreReplay = iota
	ScoreOtherSong
	ScoreMainMenu
	scoreOptions
)

// Machine tracks which screen is shown and the cursor on each one
type Machine struct {
	mode        Mode
	menuOption  int
	scoreOption int
	songIndex   int
	songs       []string
}

func (m *Machine) Mode() Mode { return m.mode }
func (m *Machine) MenuOption() int { return m.menuOption }
func (m *Machine) ScoreOption() int { return m.scoreOption }
func (m *Machine) SongIndex() int { return m.songIndex }
func (m *Machine) Songs() []string { return m.songs }

// SetSongs replaces the song list and puts the cursor on the first entry
func (m *Machine) SetSongs(songs []string) {
	m.songs = songs
	m.songIndex = 0
}

// Selected is the index of the song under the cursor
func (m *Machine) Selected() (int, bool) {
	if len(m.songs) == 0 {
		return -1, false
	}
	return m.songIndex, true
}

func (m *Machine) Handle(a Action) Command {
	if a == Back {
		switch m.mode {
		case Menu:
			return Quit
		case Playing:
			m.mode = Menu
			return StopSong
		}
		m.mode = Menu
		return None
	}

	switch m.mode {
	case Menu:
		return m.handleMenu(a)
	case SongSelect:
		return m.handleSongSelect(a)
	case ScoreScreen:
		return m.handleScore(a)
	}
	return None
}

// Finish moves a running song to the score screen
func (m *Machine) Finish() {
	if m.mode != Playing {
		return
	}
	m.mode = ScoreScreen
	m.scoreOption = ScoreReplay
}

func (m *Machine) handleMenu(a Action) Command {
	switch a {
	case Up:
		m.menuOption = (m.menuOption + menuOptions - 1) % menuOptions
	case Down:
		m.menuOption = (m.menuOption + 1) % menuOptions
	case Enter:
		if m.menuOption == MenuQuit {
			return Quit
		}
		m.mode = SongSelect
		return ListSongs
	}
	return None
}

func (m *Machine) handleSongSelect(a Action) Command {
	n := len(m.songs)
	if n == 0 {
		if a == Enter {
			m.mode = Menu
		}
		return None
	}

	switch a {
	case Up:
		m.songIndex = (m.songIndex + n - 1) % n
	case Down:
		m.songIndex = (m.songIndex + 1) % n
	case Enter:
		m.mode = Playing
		return StartSong
	}
	return None
}

func (m *Machine) handleScore(a Action) Command {
	switch a {
	case Up:
		m.scoreOption = (m.scoreOption + scoreOptions - 1) % scoreOptions
	case Down:
		m.scoreOption = (m.scoreOption + 1) % scoreOptions
	case Enter:
		switch m.scoreOption {
		case ScoreReplay:
			m.mode = Playing
			return StartSong
		case ScoreOtherSong:
			m.mode = SongSelect
		default:
			m.mode = Menu
		}
	}
	return None
}

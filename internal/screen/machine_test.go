package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenu(t *testing.T) {
	var m Machine
	assert.Equal(t, Menu, m.Mode())
	assert.Equal(t, MenuPlay, m.MenuOption())

	assert.Equal(t, None, m.Handle(Down))
	assert.Equal(t, MenuQuit, m.MenuOption())
	assert.Equal(t, None, m.Handle(Down))
	assert.Equal(t, MenuPlay, m.MenuOption())
	assert.Equal(t, None, m.Handle(Up))
	assert.Equal(t, MenuQuit, m.MenuOption())

	assert.Equal(t, Quit, m.Handle(Enter))

	m.Handle(Up)
	assert.Equal(t, ListSongs, m.Handle(Enter))
	assert.Equal(t, SongSelect, m.Mode())
}

func TestBack(t *testing.T) {
	var m Machine
	assert.Equal(t, Quit, m.Handle(Back))

	m.Handle(Enter)
	assert.Equal(t, None, m.Handle(Back))
	assert.Equal(t, Menu, m.Mode())

	m.Handle(Enter)
	m.SetSongs([]string{"a"})
	assert.Equal(t, StartSong, m.Handle(Enter))
	assert.Equal(t, StopSong, m.Handle(Back))
	assert.Equal(t, Menu, m.Mode())
}

func TestEmptySongSelect(t *testing.T) {
	var m Machine
	m.Handle(Enter)
	m.SetSongs(nil)

	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Equal(t, None, m.Handle(Down))
	assert.Equal(t, SongSelect, m.Mode())
	assert.Equal(t, None, m.Handle(Enter))
	assert.Equal(t, Menu, m.Mode())
}

func TestSongSelectWraps(t *testing.T) {
	var m Machine
	m.Handle(Enter)
	m.SetSongs([]string{"a", "b", "c"})

	m.Handle(Up)
	i, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	m.Handle(Down)
	m.Handle(Down)
	assert.Equal(t, 1, m.SongIndex())

	assert.Equal(t, StartSong, m.Handle(Enter))
	assert.Equal(t, Playing, m.Mode())

	// Navigation is ignored while playing
	assert.Equal(t, None, m.Handle(Down))
	assert.Equal(t, None, m.Handle(Enter))
	assert.Equal(t, Playing, m.Mode())
	assert.Equal(t, 1, m.SongIndex())
}

func TestScoreScreen(t *testing.T) {
	play := func() *Machine {
		m := &Machine{}
		m.Handle(Enter)
		m.SetSongs([]string{"a", "b"})
		m.Handle(Down)
		m.Handle(Enter)
		m.Finish()
		return m
	}

	m := play()
	assert.Equal(t, ScoreScreen, m.Mode())
	assert.Equal(t, ScoreReplay, m.ScoreOption())
	assert.Equal(t, StartSong, m.Handle(Enter))
	assert.Equal(t, Playing, m.Mode())
	assert.Equal(t, 1, m.SongIndex())

	m = play()
	m.Handle(Down)
	assert.Equal(t, None, m.Handle(Enter))
	assert.Equal(t, SongSelect, m.Mode())
	assert.Equal(t, []string{"a", "b"}, m.Songs())

	m = play()
	m.Handle(Up)
	assert.Equal(t, ScoreMainMenu, m.ScoreOption())
	assert.Equal(t, None, m.Handle(Enter))
	assert.Equal(t, Menu, m.Mode())

	m = play()
	assert.Equal(t, None, m.Handle(Back))
	assert.Equal(t, Menu, m.Mode())
}

func TestFinishOnlyWhilePlaying(t *testing.T) {
	var m Machine
	m.Finish()
	assert.Equal(t, Menu, m.Mode())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "song select", SongSelect.String())
	assert.Equal(t, "unknown", Mode(42).String())
}

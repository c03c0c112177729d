package render

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"git.lost.host/meutraa/fret/internal/game"
	"git.lost.host/meutraa/fret/internal/theme"
)

var (
	menuEntries  = [...]string{"Select song", "Quit"}
	scoreEntries = [...]string{"Play again", "Select another song", "Back to main menu"}
)

func centre(width int, message string) int {
	column := (width-utf8.RuneCountInString(message))/2 + 1
	if column < 1 {
		return 1
	}
	return column
}

func centred(c Canvas, width, row int, col color.RGBA, message string) {
	c.FillColor(row, centre(width, message), col, message)
}

func entries(c Canvas, th theme.Theme, width, row int, items []string, selected int) {
	for i, item := range items {
		col := th.Text()
		if i == selected {
			col = th.Highlight()
		}
		centred(c, width, row+2*i, col, item)
	}
}

func DrawMenu(c Canvas, th theme.Theme, width, height, option int) {
	centred(c, width, height/4, th.Text(), "FRET")
	entries(c, th, width, height/2, menuEntries[:], option)
}

func DrawSongSelect(c Canvas, th theme.Theme, width, height int, songs []string, selected int) {
	centred(c, width, 2, th.Text(), "Select a song")
	if len(songs) == 0 {
		centred(c, width, height/2, th.LaneColor(1), "No songs found")
		centred(c, width, height-1, th.Text(), "Press ENTER to go back")
		return
	}
	entries(c, th, width, 5, songs, selected)
	centred(c, width, height-1, th.Text(), "ENTER to play, ESC to go back")
}

// DrawPlaying renders the lanes, the hit line with one labelled target per
// lane, every travelling note and the running score
func DrawPlaying(c Canvas, th theme.Theme, p Playfield, notes []game.Note, keys string, score int) {
	labels := []rune(keys)

	for row := p.Top; row <= p.Bottom; row++ {
		for lane := 0; lane <= game.LaneCount; lane++ {
			c.Fill(row, p.Left+lane*LaneWidth, th.RenderLane())
		}
	}

	hitRow := p.HitRow()
	for column := p.Left; column <= p.Left+LaneWidth*game.LaneCount; column++ {
		c.FillColor(hitRow, column, th.Highlight(), th.RenderHitLine())
	}
	for lane := 0; lane < game.LaneCount; lane++ {
		c.FillColor(hitRow, p.Column(lane), th.LaneColor(lane), th.RenderTarget(lane))
		if lane < len(labels) {
			c.Fill(p.Bottom+1, p.Column(lane), string(labels[lane]))
		}
	}

	for _, note := range notes {
		if !Visible(note) {
			continue
		}
		c.FillColor(p.Row(note.Position), p.Column(note.Lane), th.LaneColor(note.Lane), th.RenderNote(note.Lane))
	}

	c.Fill(1, scoreColumn, fmt.Sprintf("Score: %d", score))
}

// DrawScore shows the final score; best is only drawn when hasBest is set
func DrawScore(c Canvas, th theme.Theme, width, height, score, best int, hasBest bool, option int) {
	centred(c, width, height/4, th.Text(), "Song finished!")
	centred(c, width, height/4+2, th.Highlight(), fmt.Sprintf("Final score: %d", score))
	if hasBest {
		centred(c, width, height/4+3, th.Text(), fmt.Sprintf("Best: %d", best))
	}
	entries(c, th, width, height/2, scoreEntries[:], option)
}

package render

import (
	"math"

	"git.lost.host/meutraa/fret/internal/game"
)

const (
	LaneWidth   = 8
	sideMargin  = 2  // Rows kept free above and below the field
	minRows     = 10 // Smallest field that is still playable
	scoreColumn = 2
)

// Playfield maps timeline distances onto terminal cells. A note at
// position 0 is on the Top row, one at the hit line is on HitRow and one at
// the miss line is on Bottom.
type Playfield struct {
	Top, Bottom int
	Left        int // Column of the left edge of lane 0
	HitLine     float64
	MissLine    float64
}

func NewPlayfield(width, height int, settings game.Settings) Playfield {
	top := sideMargin
	bottom := height - sideMargin
	if bottom-top < minRows {
		bottom = top + minRows
	}
	left := (width-LaneWidth*game.LaneCount)/2 + 1
	if left < 1 {
		left = 1
	}
	return Playfield{
		Top:      top,
		Bottom:   bottom,
		Left:     left,
		HitLine:  settings.HitLine,
		MissLine: settings.HitLine + settings.MissMargin,
	}
}

// Row of a note that travelled position. Positions beyond the miss line
// clamp to Bottom.
func (p Playfield) Row(position float64) int {
	if position <= 0 {
		return p.Top
	}
	if position >= p.MissLine {
		return p.Bottom
	}
	span := float64(p.Bottom - p.Top)
	return p.Top + int(math.Round(position/p.MissLine*span))
}

func (p Playfield) HitRow() int {
	return p.Row(p.HitLine)
}

// Column of the centre of lane
func (p Playfield) Column(lane int) int {
	return p.Left + lane*LaneWidth + LaneWidth/2
}

// Visible reports whether a note should be drawn
func Visible(note game.Note) bool {
	return note.State == game.Active
}

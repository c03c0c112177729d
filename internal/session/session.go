package session

import (
	"git.lost.host/meutraa/fret/internal/game"
	"git.lost.host/meutraa/fret/internal/score"
)

// Clock reports the playback position of a live track
type Clock interface {
	Position() float64 // Seconds since the start of the track
	Playing() bool
}

// Session plays one chart from start to finish. With a Clock the song
// position follows the track and the session ends when the track stops.
// Without one the position is accumulated from tick deltas and the session
// ends once the timeline has resolved every note.
type Session struct {
	Timeline *game.Timeline

	clock    Clock
	position float64
	score    int
	hits     int
	ended    bool
}

func New(timeline *game.Timeline, clock Clock) *Session {
	return &Session{
		Timeline: timeline,
		clock:    clock,
	}
}

// Tick advances the session by delta seconds and reports whether it is over
func (s *Session) Tick(delta float64) bool {
	if s.ended {
		return true
	}

	if nil != s.clock {
		s.ended = !s.clock.Playing()
	} else {
		s.ended = s.Timeline.Finished()
	}
	if s.ended {
		return true
	}

	if delta > 0 {
		if nil != s.clock {
			s.position = s.clock.Position()
		} else {
			s.position += delta
		}
		s.Timeline.Update(s.position, delta)
	}
	return false
}

// Press judges a key press and returns the points it earned
func (s *Session) Press(code game.KeyCode) int {
	if s.ended {
		return 0
	}
	points := s.Timeline.CheckHit(code)
	if points > 0 {
		s.score += points
		s.hits++
	}
	return points
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) Position() float64 {
	return s.position
}

func (s *Session) Ended() bool {
	return s.ended
}

func (s *Session) Result(chart string) score.Result {
	misses := 0
	for _, note := range s.Timeline.Notes() {
		if note.State == game.Missed {
			misses++
		}
	}
	return score.NewResult(chart, s.score, s.hits, misses, s.Timeline.Len())
}

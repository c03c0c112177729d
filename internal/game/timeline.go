package game

import (
	"fmt"
	"io"
	"log"
	"os"

	"git.lost.host/meutraa/fret/internal/parser"
)

// Timeline drives a chart: it activates notes ahead of their time, moves
// them down the field under a rising speed and judges key presses.
// It is not safe for concurrent use.
type Timeline struct {
	Settings Settings
	Keymap   Keymap
	Parser   parser.Parser

	// Called as notes resolve, from inside Update and CheckHit
	OnHit  func(note Note)
	OnMiss func(note Note)

	notes []Note
	speed float64
}

func NewTimeline(settings Settings, keymap Keymap) *Timeline {
	t := &Timeline{
		Settings: settings,
		Keymap:   keymap,
		Parser:   &parser.DefaultParser{},
	}
	t.Reset()
	return t
}

// Reset drops every note and puts the speed back to its initial value
func (t *Timeline) Reset() {
	t.notes = nil
	t.speed = t.Settings.InitialSpeed
}

// LoadSong replaces the chart with the one read from r. Records with a key
// that has no lane are skipped. A read error keeps whatever was parsed
// before it and is returned for reporting only.
func (t *Timeline) LoadSong(r io.Reader) error {
	t.Reset()

	records, err := t.Parser.Parse(r)
	for _, record := range records {
		lane, ok := t.Keymap.Lane(KeyCode(record.Key))
		if !ok {
			continue
		}
		t.notes = append(t.notes, Note{
			Time: record.Time,
			Lane: lane,
		})
	}
	if nil != err {
		return fmt.Errorf("unable to read chart: %w", err)
	}
	return nil
}

// LoadFile loads the chart at path. Failures are logged and leave the
// timeline with whatever could be read, possibly nothing.
func (t *Timeline) LoadFile(path string) {
	f, err := os.Open(path)
	if nil != err {
		t.Reset()
		log.Println("unable to open chart", err)
		return
	}
	defer f.Close()

	if err := t.LoadSong(f); nil != err {
		log.Println(path, err)
	}
	log.Printf("loaded %v with %v notes\n", path, len(t.notes))
}

func (t *Timeline) Update(position, delta float64) {
	if delta < 0 {
		delta = 0
	}

	t.speed += t.Settings.SpeedIncreaseRate * delta
	if t.speed > t.Settings.MaxSpeed {
		t.speed = t.Settings.MaxSpeed
	}

	// Recomputed from the current speed every tick, so notes activated
	// later in a session travel faster than the lead time assumed
	travel := t.TravelDuration()
	missLine := t.Settings.HitLine + t.Settings.MissMargin

	for i := range t.notes {
		note := &t.notes[i]

		if note.State == Pending && position >= note.Time-travel {
			note.State = Active
			note.Position = 0
		}
		if note.State != Active {
			continue
		}

		note.Position += t.speed * delta

		if note.Position > missLine {
			note.State = Missed
			if nil != t.OnMiss {
				t.OnMiss(*note)
			}
		}
	}
}

// CheckHit judges a key press and returns the points earned. The first
// active note in load order that sits in the hit window of the pressed
// lane is hit. Presses that hit nothing earn 0.
func (t *Timeline) CheckHit(code KeyCode) int {
	lane, ok := t.Keymap.Lane(code)
	if !ok {
		return 0
	}

	for i := range t.notes {
		note := &t.notes[i]
		if note.State != Active || note.Lane != lane {
			continue
		}
		if note.Position < t.Settings.WindowStart || note.Position > t.Settings.WindowEnd {
			continue
		}

		note.State = Hit
		if nil != t.OnHit {
			t.OnHit(*note)
		}
		return t.Settings.HitPoints
	}
	return 0
}

// Finished is true once a non-empty chart has every note hit or missed
func (t *Timeline) Finished() bool {
	for _, note := range t.notes {
		if !note.State.Terminal() {
			return false
		}
	}
	return len(t.notes) != 0
}

func (t *Timeline) ActiveCount() int {
	count := 0
	for _, note := range t.notes {
		if note.State == Active {
			count++
		}
	}
	return count
}

// Notes returns a copy of every note, in load order
func (t *Timeline) Notes() []Note {
	notes := make([]Note, len(t.notes))
	copy(notes, t.notes)
	return notes
}

func (t *Timeline) Len() int {
	return len(t.notes)
}

func (t *Timeline) Speed() float64 {
	return t.speed
}

// TravelDuration is the song time a note needs to reach the hit line at the
// current speed
func (t *Timeline) TravelDuration() float64 {
	return t.Settings.HitLine / t.speed
}

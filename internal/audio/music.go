package audio

import (
	"sync/atomic"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Music is a song track. Its playback position drives the note timeline.
type Music struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	playing  atomic.Bool
}

func OpenMusic(path string) (*Music, error) {
	streamer, format, err := decode(path)
	if nil != err {
		return nil, err
	}
	if err := Init(); nil != err {
		streamer.Close()
		return nil, err
	}

	m := &Music{streamer: streamer, format: format}
	m.ctrl = &beep.Ctrl{Streamer: beep.Seq(
		resample(format, streamer),
		beep.Callback(func() { m.playing.Store(false) }),
	)}
	return m, nil
}

func (m *Music) Play() {
	m.playing.Store(true)
	speaker.Play(m.ctrl)
}

// Position is the playback position in seconds of the source track
func (m *Music) Position() float64 {
	speaker.Lock()
	p := m.streamer.Position()
	speaker.Unlock()
	return m.format.SampleRate.D(p).Seconds()
}

func (m *Music) Playing() bool {
	return m.playing.Load()
}

// Close stops playback and releases the decoder
func (m *Music) Close() error {
	speaker.Lock()
	m.ctrl.Paused = true
	m.ctrl.Streamer = nil
	speaker.Unlock()
	m.playing.Store(false)
	return m.streamer.Close()
}

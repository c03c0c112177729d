package audio

import (
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Effect is a short sample held in memory, played over the music
type Effect struct {
	buffer *beep.Buffer
}

func LoadEffect(path string) (*Effect, error) {
	streamer, format, err := decode(path)
	if nil != err {
		return nil, err
	}
	defer streamer.Close()

	if err := Init(); nil != err {
		return nil, err
	}

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  SampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	buffer.Append(resample(format, streamer))
	return &Effect{buffer: buffer}, nil
}

// Play is a no-op on a nil Effect, so a missing sample needs no checks
func (e *Effect) Play() {
	if nil == e {
		return
	}
	speaker.Play(e.buffer.Streamer(0, e.buffer.Len()))
}

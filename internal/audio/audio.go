package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// Everything is resampled to this rate before reaching the speaker
const SampleRate = beep.SampleRate(44100)

var ErrUnsupported = errors.New("unsupported audio format")

var (
	initOnce sync.Once
	initErr  error
)

// Init opens the speaker. Only the first call does anything.
func Init() error {
	initOnce.Do(func() {
		initErr = speaker.Init(SampleRate, SampleRate.N(time.Second/30))
	})
	return initErr
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".ogg", ".mp3", ".wav":
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %v", ErrUnsupported, ext)
	}

	f, err := os.Open(path)
	if nil != err {
		return nil, beep.Format{}, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext {
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if nil != err {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("unable to decode %v: %w", path, err)
	}
	return streamer, format, nil
}

func resample(format beep.Format, s beep.Streamer) beep.Streamer {
	if format.SampleRate == SampleRate {
		return s
	}
	return beep.Resample(4, format.SampleRate, SampleRate, s)
}

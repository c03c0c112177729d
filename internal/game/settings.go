package game

import (
	"errors"
	"fmt"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds the tuning of the timeline. Distances are in field units
// (pixels in the reference layout), speeds in units per second.
type Settings struct {
	InitialSpeed      float64
	MaxSpeed          float64
	SpeedIncreaseRate float64 // Speed gained per second of play

	HitLine    float64 // Distance from the top of the field to the hit line
	MissMargin float64 // Travel past the hit line before a note is missed

	WindowStart float64
	WindowEnd   float64
	HitPoints   int
}

func DefaultSettings() Settings {
	return Settings{
		InitialSpeed:      300,
		MaxSpeed:          700,
		SpeedIncreaseRate: 5,
		HitLine:           550,
		MissMargin:        30,
		WindowStart:       480,
		WindowEnd:         550,
		HitPoints:         100,
	}
}

func (s Settings) Validate() error {
	switch {
	case s.InitialSpeed <= 0:
		return fmt.Errorf("%w: initial speed must be positive, got %v", ErrInvalidSettings, s.InitialSpeed)
	case s.MaxSpeed < s.InitialSpeed:
		return fmt.Errorf("%w: max speed %v is below initial speed %v", ErrInvalidSettings, s.MaxSpeed, s.InitialSpeed)
	case s.SpeedIncreaseRate < 0:
		return fmt.Errorf("%w: speed increase rate must not be negative, got %v", ErrInvalidSettings, s.SpeedIncreaseRate)
	case s.HitLine <= 0:
		return fmt.Errorf("%w: hit line must be positive, got %v", ErrInvalidSettings, s.HitLine)
	case s.MissMargin < 0:
		return fmt.Errorf("%w: miss margin must not be negative, got %v", ErrInvalidSettings, s.MissMargin)
	case s.WindowStart > s.WindowEnd:
		return fmt.Errorf("%w: hit window [%v, %v] is empty", ErrInvalidSettings, s.WindowStart, s.WindowEnd)
	case s.HitPoints < 0:
		return fmt.Errorf("%w: hit points must not be negative, got %v", ErrInvalidSettings, s.HitPoints)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"

	"git.lost.host/meutraa/fret/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

type Config struct {
	Directory string
	Keys      string
	Settings  game.Settings
	TickRate  float64

	ScoreFile string
	Database  string // Empty disables the score history
	HitSound  string
	LogFile   string
}

func Parse(args []string) (*Config, error) {
	c := &Config{}
	app := kingpin.New("fret", "Falling note rhythm game for the terminal")
	app.Version(Version)

	app.Arg("directory", "Song/chart directory").Default("assets/songs").StringVar(&c.Directory)
	app.Flag("keys", "Lane keys, left to right").Default("asdfg").Short('k').StringVar(&c.Keys)
	app.Flag("speed", "Initial note speed").Default("300").Short('s').Float64Var(&c.Settings.InitialSpeed)
	app.Flag("max-speed", "Note speed cap").Default("700").Float64Var(&c.Settings.MaxSpeed)
	app.Flag("speed-increase", "Speed gained per second").Default("5").Float64Var(&c.Settings.SpeedIncreaseRate)
	app.Flag("hit-line", "Distance from the top of the field to the hit line").Default("550").Float64Var(&c.Settings.HitLine)
	app.Flag("miss-margin", "Travel past the hit line before a note is missed").Default("30").Float64Var(&c.Settings.MissMargin)
	app.Flag("window-start", "Start of the hit window").Default("480").Float64Var(&c.Settings.WindowStart)
	app.Flag("window-end", "End of the hit window").Default("550").Float64Var(&c.Settings.WindowEnd)
	app.Flag("points", "Points per hit").Default("100").IntVar(&c.Settings.HitPoints)
	app.Flag("tick-rate", "Simulation ticks per second").Default("60").Short('R').Float64Var(&c.TickRate)
	app.Flag("scores", "File final scores are appended to").Default("scores.txt").StringVar(&c.ScoreFile)
	app.Flag("db", "Score history database, empty to disable").Default("scores.db").StringVar(&c.Database)
	app.Flag("hit-sound", "Sample played on every hit").Default("assets/sounds/hit.wav").StringVar(&c.HitSound)
	app.Flag("log", "Log to this file instead of stderr").Short('l').StringVar(&c.LogFile)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}
	if err := c.Validate(); nil != err {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if n := len([]rune(c.Keys)); n != game.LaneCount {
		return fmt.Errorf("expected %v lane keys, got %v", game.LaneCount, n)
	}
	if c.TickRate <= 0 {
		return errors.New("tick rate must be positive")
	}
	return c.Settings.Validate()
}

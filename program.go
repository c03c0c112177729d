package main

import (
	"log"
	"os"
	"time"

	"git.lost.host/meutraa/fret/internal/audio"
	"git.lost.host/meutraa/fret/internal/config"
	"git.lost.host/meutraa/fret/internal/game"
	"git.lost.host/meutraa/fret/internal/input"
	"git.lost.host/meutraa/fret/internal/library"
	"git.lost.host/meutraa/fret/internal/render"
	"git.lost.host/meutraa/fret/internal/score"
	"git.lost.host/meutraa/fret/internal/screen"
	"git.lost.host/meutraa/fret/internal/session"
	"git.lost.host/meutraa/fret/internal/theme"
	"github.com/eiannone/keyboard"
)

type Program struct {
	Renderer render.Renderer
	Theme    theme.Theme
	Recorder score.Recorder

	config   *config.Config
	layout   input.Layout
	history  *score.SQLiteRecorder
	hitSound *audio.Effect

	keys      <-chan keyboard.KeyEvent
	closeKeys func()

	machine  screen.Machine
	timeline *game.Timeline
	songs    []library.Song
	song     library.Song

	// Set while a song is playing
	session *session.Session
	music   *audio.Music

	// Shown on the score screen
	finalScore int
	best       int
	hasBest    bool
}

func (p *Program) Init(cfg *config.Config) error {
	// Ensure our Default implementations are used as interfaces
	p.Renderer = render.NewRenderer(os.Stdout)
	p.Theme = &theme.DefaultTheme{}
	p.config = cfg

	var err error
	p.layout, err = input.NewLayout(cfg.Keys, game.DefaultKeymap)
	if nil != err {
		return err
	}
	p.timeline = game.NewTimeline(cfg.Settings, game.DefaultKeymap)

	recorders := score.Recorders{&score.TextRecorder{Path: cfg.ScoreFile}}
	if cfg.Database != "" {
		p.history, err = score.OpenSQLite(cfg.Database)
		if nil != err {
			log.Println("score history disabled:", err)
		} else {
			recorders = append(recorders, p.history)
		}
	}
	p.Recorder = recorders

	if cfg.HitSound != "" {
		p.hitSound, err = audio.LoadEffect(cfg.HitSound)
		if nil != err {
			log.Println("hit sound disabled:", err)
		}
	}

	p.keys, p.closeKeys, err = input.Open(128)
	if nil != err {
		return err
	}
	return p.Renderer.Init()
}

func (p *Program) Deinit() {
	if nil != p.session {
		p.endPlaying()
	}
	if err := p.Renderer.Deinit(); nil != err {
		log.Println("unable to restore terminal", err)
	}
	if nil != p.closeKeys {
		p.closeKeys()
	}
	if nil != p.history {
		p.history.Close()
	}
}

// Run ticks the game at the configured rate until the player quits
func (p *Program) Run() error {
	period := time.Duration(float64(time.Second) / p.config.TickRate)
	delta := period.Seconds()
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case key := <-p.keys:
			if p.handleKey(key) {
				return nil
			}
		case <-ticker.C:
			p.update(delta)
			if err := p.render(); nil != err {
				return err
			}
		}
	}
}

// handleKey returns true when the program should exit
func (p *Program) handleKey(key keyboard.KeyEvent) bool {
	if nil != key.Err {
		log.Println("keyboard error", key.Err)
		return false
	}
	if key.Key == keyboard.KeyCtrlC {
		return true
	}

	if action, ok := input.Action(key); ok {
		return p.apply(p.machine.Handle(action))
	}

	if p.machine.Mode() != screen.Playing || nil == p.session {
		return false
	}
	code, ok := p.layout.Code(key.Rune)
	if !ok {
		return false
	}
	if p.session.Press(code) > 0 {
		p.hitSound.Play()
	}
	return false
}

func (p *Program) apply(cmd screen.Command) bool {
	switch cmd {
	case screen.Quit:
		return true
	case screen.ListSongs:
		songs, err := library.Scan(p.config.Directory)
		if nil != err {
			log.Println(err)
		}
		p.songs = songs
		p.machine.SetSongs(library.Names(songs))
	case screen.StartSong:
		if i, ok := p.machine.Selected(); ok {
			p.startPlaying(p.songs[i])
		}
	case screen.StopSong:
		p.endPlaying()
	}
	return false
}

func (p *Program) startPlaying(song library.Song) {
	if nil != p.session {
		p.endPlaying()
	}
	p.song = song
	p.timeline.LoadFile(song.Chart)

	// A song without a playable track still runs, on accumulated time
	var clock session.Clock
	p.music = nil
	if song.Audio != "" {
		music, err := audio.OpenMusic(song.Audio)
		if nil != err {
			log.Println("playing without music:", err)
		} else {
			music.Play()
			p.music = music
			clock = music
		}
	}
	p.session = session.New(p.timeline, clock)
}

func (p *Program) endPlaying() {
	if nil != p.music {
		if err := p.music.Close(); nil != err {
			log.Println("unable to close music", err)
		}
		p.music = nil
	}
	if nil == p.session {
		return
	}

	result := p.session.Result(p.song.Name)
	p.session = nil
	p.finalScore = result.Score
	if err := p.Recorder.Save(result); nil != err {
		log.Println(err)
	}

	p.hasBest = false
	if nil != p.history {
		best, ok, err := p.history.Best(p.song.Name)
		if nil != err {
			log.Println(err)
		}
		p.best, p.hasBest = best, ok
	}
	log.Printf("%v finished with %v (%v hits, %v misses of %v)\n",
		result.Chart, result.Score, result.Hits, result.Misses, result.Notes)
}

func (p *Program) update(delta float64) {
	if p.machine.Mode() != screen.Playing || nil == p.session {
		return
	}
	// A chart with no notes and no track would never end on its own
	empty := nil == p.music && p.timeline.Len() == 0
	if p.session.Tick(delta) || empty {
		p.endPlaying()
		p.machine.Finish()
	}
}

func (p *Program) render() error {
	width, height, err := p.Renderer.Size()
	if nil != err {
		return err
	}

	p.Renderer.Clear()
	switch p.machine.Mode() {
	case screen.Menu:
		render.DrawMenu(p.Renderer, p.Theme, width, height, p.machine.MenuOption())
	case screen.SongSelect:
		render.DrawSongSelect(p.Renderer, p.Theme, width, height, p.machine.Songs(), p.machine.SongIndex())
	case screen.Playing:
		points := 0
		if nil != p.session {
			points = p.session.Score()
		}
		field := render.NewPlayfield(width, height, p.config.Settings)
		render.DrawPlaying(p.Renderer, p.Theme, field, p.timeline.Notes(), p.config.Keys, points)
	case screen.ScoreScreen:
		render.DrawScore(p.Renderer, p.Theme, width, height, p.finalScore, p.best, p.hasBest, p.machine.ScoreOption())
	}
	return p.Renderer.Flush()
}

package theme

import "image/color"

type Theme interface {
	LaneColor(lane int) color.RGBA
	RenderNote(lane int) string
	RenderTarget(lane int) string
	RenderLane() string
	RenderHitLine() string
	Highlight() color.RGBA
	Text() color.RGBA
}

type DefaultTheme struct{}

func (t *DefaultTheme) LaneColor(lane int) color.RGBA {
	if lane < 0 || lane >= len(laneColors) {
		return white
	}
	return laneColors[lane]
}

func (t *DefaultTheme) RenderNote(lane int) string {
	return noteSym
}

// RenderTarget is the fixed marker drawn on the hit line
func (t *DefaultTheme) RenderTarget(lane int) string {
	return targetSym
}

func (t *DefaultTheme) RenderLane() string {
	return laneSym
}

func (t *DefaultTheme) RenderHitLine() string {
	return hitLineSym
}

func (t *DefaultTheme) Highlight() color.RGBA {
	return yellow
}

func (t *DefaultTheme) Text() color.RGBA {
	return white
}

const (
	noteSym    = "⬤"
	targetSym  = "◯"
	laneSym    = "│"
	hitLineSym = "━"
)

var (
	white  = color.RGBA{255, 255, 255, 255}
	yellow = color.RGBA{255, 255, 0, 255}

	laneColors = [...]color.RGBA{
		{0, 255, 0, 255},   // green
		{255, 0, 0, 255},   // red
		{255, 255, 0, 255}, // yellow
		{0, 0, 255, 255},   // blue
		{255, 165, 0, 255}, // orange
	}
)

package input

import (
	"errors"
	"fmt"
	"log"
	"unicode"

	"github.com/eiannone/keyboard"

	"git.lost.host/meutraa/fret/internal/game"
	"git.lost.host/meutraa/fret/internal/screen"
)

var ErrLayout = errors.New("invalid key layout")

// Layout translates typed runes into the key codes the timeline judges.
// Remapping keys only changes the layout, never the lane table.
type Layout map[rune]game.KeyCode

// NewLayout assigns keys[i] to the code of lane i of keymap
func NewLayout(keys string, keymap game.Keymap) (Layout, error) {
	runes := []rune(keys)
	if len(runes) != game.LaneCount {
		return nil, fmt.Errorf("%w: need %v keys, got %q", ErrLayout, game.LaneCount, keys)
	}

	l := Layout{}
	for i, r := range runes {
		r = unicode.ToLower(r)
		if _, ok := l[r]; ok {
			return nil, fmt.Errorf("%w: %q is used twice", ErrLayout, r)
		}
		l[r] = keymap[i]
	}
	return l, nil
}

func (l Layout) Code(r rune) (game.KeyCode, bool) {
	code, ok := l[unicode.ToLower(r)]
	return code, ok
}

// Action maps navigation keys to screen actions
func Action(ev keyboard.KeyEvent) (screen.Action, bool) {
	switch ev.Key {
	case keyboard.KeyArrowUp:
		return screen.Up, true
	case keyboard.KeyArrowDown:
		return screen.Down, true
	case keyboard.KeyEnter:
		return screen.Enter, true
	case keyboard.KeyEsc:
		return screen.Back, true
	}
	return 0, false
}

// Open starts reading the keyboard. The returned func restores the terminal.
func Open(buffer int) (<-chan keyboard.KeyEvent, func(), error) {
	keys, err := keyboard.GetKeys(buffer)
	if nil != err {
		return nil, nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	return keys, func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}, nil
}

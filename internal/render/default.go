package render

import (
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

type Renderer interface {
	Canvas
	Init() error
	Deinit() error
	Size() (width, height int, err error)
	Clear()
	Flush() error
}

// Canvas is the drawing surface screens are rendered onto.
// Rows and columns are 1 based, like terminal cursor addressing.
type Canvas interface {
	Fill(row, column int, message string)
	FillColor(row, column int, c color.RGBA, message string)
}

// DefaultRenderer buffers ANSI escape sequences and writes a whole frame at
// once on Flush
type DefaultRenderer struct {
	out          io.Writer
	fd           int
	buffer       strings.Builder
	restoreState *term.State
}

func NewRenderer(out *os.File) *DefaultRenderer {
	return &DefaultRenderer{out: out, fd: int(out.Fd())}
}

func (r *DefaultRenderer) Init() error {
	if term.IsTerminal(r.fd) {
		state, err := term.MakeRaw(r.fd)
		if nil != err {
			return err
		}
		r.restoreState = state
	}

	_, err := io.WriteString(r.out,
		"\033[?1049h"+ // Enable alternate buffer
			"\033[?25l"+ // Make the cursor invisible
			"\033[J", // Clear the screen
	)
	return err
}

func (r *DefaultRenderer) Deinit() error {
	_, err := io.WriteString(r.out,
		"\033[?1049l"+ // Disable alternate buffer
			"\033[?25h", // Make the cursor visible
	)
	if nil != r.restoreState {
		if rerr := term.Restore(r.fd, r.restoreState); nil != rerr {
			return rerr
		}
		r.restoreState = nil
	}
	return err
}

func (r *DefaultRenderer) Size() (int, int, error) {
	return term.GetSize(r.fd)
}

func (r *DefaultRenderer) Clear() {
	r.buffer.WriteString("\033[2J")
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.moveTo(row, column)
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) FillColor(row, column int, c color.RGBA, message string) {
	r.moveTo(row, column)
	r.buffer.WriteString("\033[38;2;")
	r.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

func (r *DefaultRenderer) moveTo(row, column int) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	r.buffer.WriteString("H")
}

func (r *DefaultRenderer) Flush() error {
	_, err := io.WriteString(r.out, r.buffer.String())
	r.buffer.Reset()
	return err
}

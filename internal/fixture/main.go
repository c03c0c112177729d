package fixture

import (
	"io"
	"strings"
)

// Two notes, A at one second and S at two
const Scenario = "1.0 1\n2.0 19\n"

// A short chart over all five lanes, with a chord at 3.0 and an
// unmapped key (32) at 2.5 that loaders must skip
const chart = `0.5 1
1.0 19
1.5 4
2.0 6
2.5 32
2.5 7
3.0 1
3.0 7
3.5 19
4.0 4
`

// Number of notes in Chart once unmapped keys are dropped
const ChartNotes = 9

func Chart() io.Reader {
	return strings.NewReader(chart)
}

// Failing is a reader that returns data then a read error
type Failing struct {
	Data string
	Err  error

	read bool
}

func (f *Failing) Read(p []byte) (int, error) {
	if f.read {
		return 0, f.Err
	}
	f.read = true
	return copy(p, f.Data), nil
}

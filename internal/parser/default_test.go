package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"git.lost.host/meutraa/fret/internal/fixture"
)

var parseTests = map[string][]Record{
	"":                     {},
	"1.0 1\n2.0 19\n":      {{Time: 1, Key: 1}, {Time: 2, Key: 19}},
	"1 1 2 19":             {{Time: 1, Key: 1}, {Time: 2, Key: 19}},
	"  0.25\t4\n\n\n3 7  ": {{Time: 0.25, Key: 4}, {Time: 3, Key: 7}},
	"1.0 1\nx 4\n3.0 6\n":  {{Time: 1, Key: 1}},
	"1.0 1\n2.0 S\n":       {{Time: 1, Key: 1}},
	"1.0 1\n2.0":           {{Time: 1, Key: 1}},
	"1.0 1.5 2 4":          {},
	"NaN 1 2 4":            {},
	"-1.5 32 2 4":          {{Time: -1.5, Key: 32}, {Time: 2, Key: 4}},
}

func TestParse(t *testing.T) {
	p := DefaultParser{}
	for in, expected := range parseTests {
		out, err := p.Parse(strings.NewReader(in))
		require.NoError(t, err, in)
		if diff := cmp.Diff(expected, out); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestParseChart(t *testing.T) {
	p := DefaultParser{}
	out, err := p.Parse(fixture.Chart())
	require.NoError(t, err)
	require.Len(t, out, fixture.ChartNotes+1)
	require.Equal(t, Record{Time: 2.5, Key: 32}, out[4])
}

func TestParseReadError(t *testing.T) {
	failure := errors.New("disk gone")
	p := DefaultParser{}
	out, err := p.Parse(&fixture.Failing{Data: "1.0 1\n2.0 19\n", Err: failure})
	require.ErrorIs(t, err, failure)
	require.Equal(t, []Record{{Time: 1, Key: 1}, {Time: 2, Key: 19}}, out)
}

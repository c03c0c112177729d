package score

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one play session
type Result struct {
	ID     uuid.UUID
	Chart  string
	Score  int
	Hits   int
	Misses int
	Notes  int
	Played time.Time
}

func NewResult(chart string, score, hits, misses, notes int) Result {
	return Result{
		ID:     uuid.New(),
		Chart:  chart,
		Score:  score,
		Hits:   hits,
		Misses: misses,
		Notes:  notes,
		Played: time.Now(),
	}
}

type Recorder interface {
	// Save the result of a finished session
	Save(result Result) error
}

// Recorders saves to every recorder, even when an earlier one fails
type Recorders []Recorder

func (rs Recorders) Save(result Result) error {
	var errs []error
	for _, r := range rs {
		if err := r.Save(result); nil != err {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

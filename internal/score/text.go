package score

import (
	"fmt"
	"os"
)

// TextRecorder appends one "Final score: N" line per session to Path
type TextRecorder struct {
	Path string
}

func (r *TextRecorder) Save(result Result) error {
	f, err := os.OpenFile(r.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if nil != err {
		return fmt.Errorf("unable to open score file: %w", err)
	}
	if _, err := fmt.Fprintf(f, "Final score: %d\n", result.Score); nil != err {
		f.Close()
		return fmt.Errorf("unable to write score: %w", err)
	}
	return f.Close()
}

package parser

import (
	"bufio"
	"io"
	"math"
	"strconv"
)

// Record is one "<time> <key>" pair of a chart
type Record struct {
	Time float64
	Key  int
}

type Parser interface {
	Parse(r io.Reader) ([]Record, error)
}

// DefaultParser reads whitespace separated pairs until the input ends or a
// pair does not parse. Only read errors are returned; everything parsed
// before the first bad pair is kept.
type DefaultParser struct{}

func (p *DefaultParser) Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	records := []Record{}
	for scanner.Scan() {
		seconds, err := strconv.ParseFloat(scanner.Text(), 64)
		if nil != err || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
			break
		}
		if !scanner.Scan() {
			break
		}
		key, err := strconv.Atoi(scanner.Text())
		if nil != err {
			break
		}
		records = append(records, Record{Time: seconds, Key: key})
	}

	if err := scanner.Err(); nil != err {
		return records, err
	}
	return records, nil
}

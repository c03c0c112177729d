package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteRecorder keeps every result in a sqlite database, so the score
// screen can show a best score per chart
type SQLiteRecorder struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	initStatement := `
	create table if not exists scores 
	  (
		  id text not null primary key, 
		  sum text not null,
		  chart text,
		  score integer,
		  hits integer,
		  misses integer,
		  notes integer,
		  played integer
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return nil, fmt.Errorf("unable to create scores table: %w", err)
	}

	return &SQLiteRecorder{db: db}, nil
}

func (s *SQLiteRecorder) Close() error {
	return s.db.Close()
}

func hashChart(chart string) string {
	sum := sha256.Sum256([]byte(chart))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *SQLiteRecorder) Save(r Result) error {
	_, err := s.db.Exec(
		"insert into scores(id, sum, chart, score, hits, misses, notes, played) values(?, ?, ?, ?, ?, ?, ?, ?)",
		r.ID.String(), hashChart(r.Chart), r.Chart, r.Score, r.Hits, r.Misses, r.Notes, r.Played.UnixNano(),
	)
	if nil != err {
		return fmt.Errorf("unable to save score: %w", err)
	}
	return nil
}

// History returns every result for chart, oldest first
func (s *SQLiteRecorder) History(chart string) ([]Result, error) {
	rows, err := s.db.Query(
		"select id, chart, score, hits, misses, notes, played from scores where sum = ? order by played",
		hashChart(chart),
	)
	if nil != err {
		return nil, fmt.Errorf("unable to load scores: %w", err)
	}
	defer rows.Close()

	results := []Result{}
	for rows.Next() {
		var id string
		var played int64
		var r Result
		if err := rows.Scan(&id, &r.Chart, &r.Score, &r.Hits, &r.Misses, &r.Notes, &played); nil != err {
			return nil, fmt.Errorf("unable to read score: %w", err)
		}
		r.ID, err = uuid.Parse(id)
		if nil != err {
			log.Println("skipping score with bad id", id, err)
			continue
		}
		r.Played = time.Unix(0, played)
		results = append(results, r)
	}
	return results, rows.Err()
}

// Best returns the highest score saved for chart, false if there is none
func (s *SQLiteRecorder) Best(chart string) (int, bool, error) {
	var best sql.NullInt64
	err := s.db.QueryRow("select max(score) from scores where sum = ?", hashChart(chart)).Scan(&best)
	if nil != err {
		return 0, false, fmt.Errorf("unable to load best score: %w", err)
	}
	return int(best.Int64), best.Valid, nil
}

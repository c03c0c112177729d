package library

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

const ChartExt = ".txt"

// Audio extensions looked up next to a chart, in order of preference
var AudioExts = []string{".ogg", ".mp3"}

type Song struct {
	Name  string // Chart file name without directory or extension
	Chart string
	Audio string // Empty when the song has no track
}

// Scan walks dir for charts and pairs each with the track that shares its
// base name
func Scan(dir string) ([]Song, error) {
	audio := map[string]string{}
	charts := []string{}

	if err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if nil != err {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(p))
		base := strings.TrimSuffix(p, filepath.Ext(p))
		if ext == ChartExt {
			charts = append(charts, p)
			return nil
		}
		for rank, a := range AudioExts {
			if ext != a {
				continue
			}
			if current, ok := audio[base]; !ok || rank < audioRank(current) {
				audio[base] = p
			}
		}
		return nil
	}); nil != err {
		return nil, fmt.Errorf("unable to walk song directory: %w", err)
	}

	songs := make([]Song, 0, len(charts))
	for _, c := range charts {
		base := strings.TrimSuffix(c, filepath.Ext(c))
		songs = append(songs, Song{
			Name:  filepath.Base(base),
			Chart: c,
			Audio: audio[base],
		})
	}
	sort.Slice(songs, func(i, j int) bool {
		if songs[i].Name == songs[j].Name {
			return songs[i].Chart < songs[j].Chart
		}
		return songs[i].Name < songs[j].Name
	})
	return songs, nil
}

func audioRank(p string) int {
	ext := strings.ToLower(filepath.Ext(p))
	for rank, a := range AudioExts {
		if a == ext {
			return rank
		}
	}
	return len(AudioExts)
}

func Names(songs []Song) []string {
	names := make([]string, len(songs))
	for i, s := range songs {
		names[i] = s.Name
	}
	return names
}

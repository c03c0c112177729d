package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{
		"Paint_It_Black.txt",
		"Paint_It_Black.ogg",
		"Paint_It_Black.mp3",
		"Legendary.txt",
		"Legendary.mp3",
		"extra/Jojo.txt",
		"cover.png",
		"orphan.ogg",
	} {
		touch(t, filepath.Join(dir, f))
	}

	songs, err := Scan(dir)
	require.NoError(t, err)

	expected := []Song{
		{Name: "Jojo", Chart: filepath.Join(dir, "extra", "Jojo.txt")},
		{Name: "Legendary", Chart: filepath.Join(dir, "Legendary.txt"), Audio: filepath.Join(dir, "Legendary.mp3")},
		{Name: "Paint_It_Black", Chart: filepath.Join(dir, "Paint_It_Black.txt"), Audio: filepath.Join(dir, "Paint_It_Black.ogg")},
	}
	if diff := cmp.Diff(expected, songs); diff != "" {
		t.Errorf("Scan mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"Jojo", "Legendary", "Paint_It_Black"}, Names(songs))
}

func TestScanMissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestScanEmpty(t *testing.T) {
	songs, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, songs)
	assert.Empty(t, Names(songs))
}

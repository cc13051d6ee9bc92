package data

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazadus/go-movielist/internal/codec"
	"github.com/hazadus/go-movielist/internal/movie"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.txt")
	file, err := NewFile(path, codec.FormatLegacy)
	require.NoError(t, err)

	movies := []movie.Movie{
		{Name: "Alien", Genre: "Sci-Fi", Rating: 8.5},
		{Name: "Heat", Genre: "Crime", Rating: 8.3},
	}
	require.NoError(t, file.Save(movies))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Alien,Sci-Fi,8.5\nHeat,Crime,8.3\n", string(content))

	res, err := file.Load()
	require.NoError(t, err)
	assert.Equal(t, movies, res.Movies)
}

func TestSaveTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.txt")
	file, err := NewFile(path, codec.FormatLegacy)
	require.NoError(t, err)

	require.NoError(t, file.Save([]movie.Movie{{Name: "A", Genre: "B", Rating: 1}, {Name: "C", Genre: "D", Rating: 2}}))
	require.NoError(t, file.Save(nil))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestLoadMissingFile(t *testing.T) {
	file, err := NewFile(filepath.Join(t.TempDir(), "missing.txt"), codec.FormatLegacy)
	require.NoError(t, err)

	res, err := file.Load()
	assert.ErrorIs(t, err, ErrNoFile)
	assert.ErrorIs(t, err, ErrPersistenceUnavailable)
	assert.Empty(t, res.Movies)
}

func TestSaveUnavailable(t *testing.T) {
	file, err := NewFile(filepath.Join(t.TempDir(), "no-such-dir", "movies.txt"), codec.FormatLegacy)
	require.NoError(t, err)

	err = file.Save([]movie.Movie{{Name: "A", Genre: "B", Rating: 1}})
	assert.True(t, errors.Is(err, ErrPersistenceUnavailable))
}

func TestLoadPassesDecodeOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.txt")
	require.NoError(t, os.WriteFile(path, []byte("A,B\nAlien,Sci-Fi,8.5\n"), 0644))

	var skipped []string
	file, err := NewFile(path, codec.FormatLegacy, codec.WithSkipHook(func(_ int, line string) {
		skipped = append(skipped, line)
	}))
	require.NoError(t, err)

	res, err := file.Load()
	require.NoError(t, err)
	assert.Len(t, res.Movies, 1)
	assert.Equal(t, []string{"A,B"}, skipped)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path, err := ExpandPath("~/movies.txt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, home))

	path, err = ExpandPath("movies.txt")
	require.NoError(t, err)
	assert.Equal(t, "movies.txt", path)
}

func TestLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.txt")
	file, err := NewFile(path, codec.FormatLegacy)
	require.NoError(t, err)

	unlock, err := file.Lock()
	require.NoError(t, err)

	other, err := NewFile(path, codec.FormatLegacy)
	require.NoError(t, err)
	_, err = other.Lock()
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, unlock())

	unlockAgain, err := other.Lock()
	require.NoError(t, err)
	require.NoError(t, unlockAgain())
}

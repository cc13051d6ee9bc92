package backup

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazadus/go-movielist/internal/codec"
	"github.com/hazadus/go-movielist/internal/movie"
	"github.com/hazadus/go-movielist/internal/store"
)

// memoryStorage хранилище в памяти вместо S3
type memoryStorage struct {
	objects   map[string][]byte
	uploadErr error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: make(map[string][]byte)}
}

func (m *memoryStorage) UploadFile(_ context.Context, reader io.Reader, key string) (string, error) {
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	m.objects[key] = raw
	return "memory://" + key, nil
}

func (m *memoryStorage) DownloadFile(_ context.Context, key string) ([]byte, error) {
	raw, ok := m.objects[key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return raw, nil
}

func (m *memoryStorage) DeleteFile(_ context.Context, key string) error {
	if _, ok := m.objects[key]; !ok {
		return errors.New("NoSuchKey")
	}
	delete(m.objects, key)
	return nil
}

func TestBackupAndRestore(t *testing.T) {
	storage := newMemoryStorage()
	s := store.New(nil)
	require.NoError(t, s.Append("Alien", "Sci-Fi", 8.5))
	require.NoError(t, s.Append("Heat", "Crime", 8.3))

	service := NewService(storage, s, codec.FormatLegacy, nil)

	var lastProgress int64
	result, err := service.Backup(context.Background(), "movies.txt", func(n int64) {
		lastProgress = n
	})
	require.NoError(t, err)

	assert.Equal(t, "memory://movies.txt", result.URL)
	assert.Equal(t, 2, result.Movies)
	assert.Equal(t, result.Size, lastProgress)
	assert.Equal(t, "Alien,Sci-Fi,8.5\nHeat,Crime,8.3\n", string(storage.objects["movies.txt"]))

	require.NoError(t, s.Clear())

	restored, err := service.Restore(context.Background(), "movies.txt")
	require.NoError(t, err)
	assert.Equal(t, 2, restored.Movies)
	assert.Equal(t, []movie.Movie{
		{Name: "Alien", Genre: "Sci-Fi", Rating: 8.5},
		{Name: "Heat", Genre: "Crime", Rating: 8.3},
	}, s.All())
}

func TestRestoreReportsBadLines(t *testing.T) {
	storage := newMemoryStorage()
	storage.objects["movies.txt"] = []byte("Alien,Sci-Fi,8.5\nbroken\nHeat,Crime,n/a\n")

	s := store.New(nil)
	service := NewService(storage, s, codec.FormatLegacy, nil)

	restored, err := service.Restore(context.Background(), "movies.txt")
	require.NoError(t, err)
	assert.Equal(t, 1, restored.Movies)
	assert.Equal(t, 1, restored.Skipped)
	require.Len(t, restored.Errors, 1)
	assert.Equal(t, 3, restored.Errors[0].Line)
	assert.Equal(t, 1, s.Len())
}

func TestRestoreMissingKey(t *testing.T) {
	s := store.New(nil)
	require.NoError(t, s.Append("Alien", "Sci-Fi", 8.5))

	service := NewService(newMemoryStorage(), s, codec.FormatLegacy, nil)
	_, err := service.Restore(context.Background(), "missing.txt")
	assert.Error(t, err)

	// Каталог не тронут
	assert.Equal(t, 1, s.Len())
}

func TestBackupUploadError(t *testing.T) {
	storage := newMemoryStorage()
	storage.uploadErr = errors.New("connection refused")

	service := NewService(storage, store.New(nil), codec.FormatLegacy, nil)
	_, err := service.Backup(context.Background(), "movies.txt", nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "connection refused"))
}

func TestProgressReader(t *testing.T) {
	var calls []int64
	pr := &ProgressReader{
		Reader:     strings.NewReader("0123456789"),
		Size:       10,
		OnProgress: func(n int64) { calls = append(calls, n) },
	}

	buf := make([]byte, 4)
	for {
		_, err := pr.Read(buf)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, []int64{4, 8, 10, 10}, calls)
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatFileSize(tt.bytes))
	}
}

func TestForget(t *testing.T) {
	storage := newMemoryStorage()
	s := store.New(nil)
	require.NoError(t, s.Append("Alien", "Sci-Fi", 8.5))

	service := NewService(storage, s, codec.FormatLegacy, nil)
	_, err := service.Backup(context.Background(), "old.txt", nil)
	require.NoError(t, err)

	require.NoError(t, service.Forget(context.Background(), "old.txt"))
	assert.NotContains(t, storage.objects, "old.txt")
	assert.Equal(t, 1, s.Len())

	assert.Error(t, service.Forget(context.Background(), "old.txt"))
}

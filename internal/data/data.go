// Package data хранит каталог фильмов в текстовом файле на диске
package data

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gofrs/flock"

	"github.com/hazadus/go-movielist/internal/codec"
	"github.com/hazadus/go-movielist/internal/movie"
)

var (
	// ErrPersistenceUnavailable файл данных нельзя открыть
	ErrPersistenceUnavailable = errors.New("файл данных недоступен")
	// ErrNoFile файла данных ещё нет
	ErrNoFile = fmt.Errorf("%w: файл не найден", ErrPersistenceUnavailable)
	// ErrLocked файл данных занят другим процессом
	ErrLocked = errors.New("файл данных используется другим процессом")
)

// File файл каталога в выбранном формате
type File struct {
	path   string
	format codec.Format
	opts   []codec.DecodeOption
}

// ExpandPath раскрывает тильду в начале пути
func ExpandPath(filePath string) (string, error) {
	if !strings.HasPrefix(filePath, "~") {
		return filePath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return strings.Replace(filePath, "~", home, 1), nil
}

// NewFile создает файл каталога по пути filePath
func NewFile(filePath string, format codec.Format, opts ...codec.DecodeOption) (*File, error) {
	path, err := ExpandPath(filePath)
	if err != nil {
		return nil, err
	}
	return &File{path: path, format: format, opts: opts}, nil
}

// Path возвращает путь к файлу с раскрытой тильдой
func (f *File) Path() string {
	return f.path
}

// Format возвращает формат файла
func (f *File) Format() codec.Format {
	return f.format
}

// Load читает каталог. Если файла нет, возвращает пустой результат и ErrNoFile.
func (f *File) Load() (codec.Result, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return codec.Result{Movies: make([]movie.Movie, 0)}, ErrNoFile
		}
		return codec.Result{Movies: make([]movie.Movie, 0)}, fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	defer file.Close()

	res, err := codec.Decode(file, f.format, f.opts...)
	if err != nil {
		return res, fmt.Errorf("ошибка разбора файла данных: %w", err)
	}
	return res, nil
}

// Save перезаписывает файл целиком
func (f *File) Save(movies []movie.Movie) (err error) {
	file, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("ошибка закрытия файла данных: %w", closeErr)
		}
	}()

	if err := codec.Encode(file, movies, f.format); err != nil {
		return fmt.Errorf("ошибка записи файла данных: %w", err)
	}
	return nil
}

// Lock захватывает эксклюзивную блокировку рядом с файлом данных.
// Возвращает ErrLocked, если её держит другой процесс.
func (f *File) Lock() (unlock func() error, err error) {
	lock := flock.New(f.path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("ошибка блокировки файла данных: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, f.path)
	}
	return lock.Unlock, nil
}

// Package store содержит упорядоченный каталог фильмов в памяти
package store

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hazadus/go-movielist/internal/movie"
)

// Persister сохраняет каталог целиком после каждого изменения
type Persister interface {
	Save(movies []movie.Movie) error
}

// Entry запись каталога со стабильным идентификатором.
// ID живёт только в памяти и в файл не пишется.
type Entry struct {
	ID    uuid.UUID
	Movie movie.Movie
}

// Store хранит фильмы в порядке добавления. Операции по имени работают
// с первым совпадением.
type Store struct {
	entries   []Entry
	persister Persister
	logger    *zap.Logger
}

// Option настраивает Store
type Option func(*Store)

// WithLogger задаёт логгер
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New создает пустой каталог. persister может быть nil.
func New(persister Persister, opts ...Option) *Store {
	s := &Store{
		entries:   make([]Entry, 0),
		persister: persister,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load заполняет каталог загруженными записями без повторного сохранения
func (s *Store) Load(movies []movie.Movie) {
	for _, m := range movies {
		s.push(m)
	}
	s.logger.Debug("Каталог загружен", zap.Int("movies", len(movies)))
}

// Append добавляет фильм в конец. Запись остаётся в памяти даже если
// сохранение не удалось.
func (s *Store) Append(name, genre string, rating float64) error {
	s.push(movie.Movie{Name: name, Genre: genre, Rating: rating})
	return s.save()
}

// FindByName возвращает первый фильм с точно таким именем
func (s *Store) FindByName(name string) (movie.Movie, bool) {
	i := s.indexByName(name)
	if i < 0 {
		return movie.Movie{}, false
	}
	return s.entries[i].Movie, true
}

// FilterByRating возвращает все фильмы с рейтингом, точно равным rating
func (s *Store) FilterByRating(rating float64) []movie.Movie {
	result := make([]movie.Movie, 0)
	for _, e := range s.entries {
		if e.Movie.Rating == rating {
			result = append(result, e.Movie)
		}
	}
	return result
}

// DeleteByName удаляет первый фильм с таким именем
func (s *Store) DeleteByName(name string) (bool, error) {
	i := s.indexByName(name)
	if i < 0 {
		return false, nil
	}
	s.removeAt(i)
	return true, s.save()
}

// EditByName перезаписывает поля первого фильма с именем oldName, не меняя его позицию
func (s *Store) EditByName(oldName, newName, newGenre string, newRating float64) (bool, error) {
	i := s.indexByName(oldName)
	if i < 0 {
		return false, nil
	}
	s.entries[i].Movie = movie.Movie{Name: newName, Genre: newGenre, Rating: newRating}
	return true, s.save()
}

// EditByID перезаписывает фильм с идентификатором id
func (s *Store) EditByID(id uuid.UUID, m movie.Movie) (bool, error) {
	i := s.indexByID(id)
	if i < 0 {
		return false, nil
	}
	s.entries[i].Movie = m
	return true, s.save()
}

// DeleteByID удаляет фильм с идентификатором id
func (s *Store) DeleteByID(id uuid.UUID) (bool, error) {
	i := s.indexByID(id)
	if i < 0 {
		return false, nil
	}
	s.removeAt(i)
	return true, s.save()
}

// Clear удаляет все фильмы и всегда сохраняет пустой каталог
func (s *Store) Clear() error {
	s.entries = make([]Entry, 0)
	return s.save()
}

// Replace заменяет содержимое каталога и сохраняет его один раз
func (s *Store) Replace(movies []movie.Movie) error {
	s.entries = make([]Entry, 0, len(movies))
	for _, m := range movies {
		s.push(m)
	}
	return s.save()
}

// All возвращает копию списка фильмов в порядке каталога
func (s *Store) All() []movie.Movie {
	movies := make([]movie.Movie, len(s.entries))
	for i, e := range s.entries {
		movies[i] = e.Movie
	}
	return movies
}

// Entries возвращает копию записей вместе с идентификаторами
func (s *Store) Entries() []Entry {
	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Len возвращает количество фильмов
func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) push(m movie.Movie) {
	s.entries = append(s.entries, Entry{ID: uuid.New(), Movie: m})
}

func (s *Store) removeAt(i int) {
	copy(s.entries[i:], s.entries[i+1:])
	s.entries[len(s.entries)-1] = Entry{}
	s.entries = s.entries[:len(s.entries)-1]
}

func (s *Store) indexByName(name string) int {
	for i, e := range s.entries {
		if e.Movie.Name == name {
			return i
		}
	}
	return -1
}

func (s *Store) indexByID(id uuid.UUID) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) save() error {
	if s.persister == nil {
		return nil
	}
	if err := s.persister.Save(s.All()); err != nil {
		s.logger.Warn("Не удалось сохранить каталог", zap.Error(err))
		return err
	}
	s.logger.Debug("Каталог сохранён", zap.Int("movies", len(s.entries)))
	return nil
}

// Package shell описывает команды пользователя над каталогом и их результат
// без ввода-вывода: команда применяется к каталогу и возвращает Output.
package shell

import (
	"fmt"

	"github.com/hazadus/go-movielist/internal/movie"
	"github.com/hazadus/go-movielist/internal/store"
)

// Status итог выполнения команды
type Status int

const (
	// StatusOK команда выполнена
	StatusOK Status = iota
	// StatusNotFound фильм не найден, каталог не изменён
	StatusNotFound
	// StatusEmpty каталог пуст
	StatusEmpty
	// StatusError изменение применено в памяти, но не сохранено
	StatusError
)

// Output результат команды для вывода пользователю
type Output struct {
	Status  Status
	Message string
	Movie   movie.Movie
	Movies  []movie.Movie
	Err     error
}

// Command команда над каталогом
type Command interface {
	apply(s *store.Store) Output
}

// Add добавляет фильм
type Add struct {
	Name   string
	Genre  string
	Rating float64
}

// Find ищет фильм по названию
type Find struct {
	Name string
}

// FilterRating ищет фильмы с точно таким рейтингом
type FilterRating struct {
	Rating float64
}

// Delete удаляет фильм по названию
type Delete struct {
	Name string
}

// Edit меняет фильм с названием OldName
type Edit struct {
	OldName string
	Name    string
	Genre   string
	Rating  float64
}

// Clear удаляет все фильмы
type Clear struct{}

// List показывает все фильмы
type List struct{}

// Execute применяет команду к каталогу
func Execute(s *store.Store, cmd Command) Output {
	return cmd.apply(s)
}

func (c Add) apply(s *store.Store) Output {
	if err := s.Append(c.Name, c.Genre, c.Rating); err != nil {
		return saveFailed(err)
	}
	return Output{Status: StatusOK, Message: "✅ Фильм добавлен."}
}

func (c Find) apply(s *store.Store) Output {
	m, ok := s.FindByName(c.Name)
	if !ok {
		return notFound()
	}
	return Output{Status: StatusOK, Message: "🎬 Фильм найден: " + m.String(), Movie: m}
}

func (c FilterRating) apply(s *store.Store) Output {
	if s.Len() == 0 {
		return Output{Status: StatusEmpty, Message: "📚 Нет фильмов для поиска."}
	}
	rating := movie.FormatRating(c.Rating)
	movies := s.FilterByRating(c.Rating)
	if len(movies) == 0 {
		return Output{Status: StatusNotFound, Message: fmt.Sprintf("❌ Фильмы с рейтингом %s не найдены.", rating)}
	}
	return Output{
		Status:  StatusOK,
		Message: fmt.Sprintf("🎬 Фильмы с рейтингом %s:", rating),
		Movies:  movies,
	}
}

func (c Delete) apply(s *store.Store) Output {
	ok, err := s.DeleteByName(c.Name)
	if !ok {
		return notFound()
	}
	if err != nil {
		return saveFailed(err)
	}
	return Output{Status: StatusOK, Message: "🗑️  Фильм удалён."}
}

func (c Edit) apply(s *store.Store) Output {
	ok, err := s.EditByName(c.OldName, c.Name, c.Genre, c.Rating)
	if !ok {
		return notFound()
	}
	if err != nil {
		return saveFailed(err)
	}
	return Output{Status: StatusOK, Message: "✅ Данные фильма обновлены!"}
}

func (c Clear) apply(s *store.Store) Output {
	if err := s.Clear(); err != nil {
		return saveFailed(err)
	}
	return Output{Status: StatusOK, Message: "🧹 Все фильмы удалены."}
}

func (c List) apply(s *store.Store) Output {
	if s.Len() == 0 {
		return Output{Status: StatusEmpty, Message: "📚 Нет фильмов для отображения."}
	}
	return Output{
		Status:  StatusOK,
		Message: fmt.Sprintf("📚 Фильмов в каталоге: %d", s.Len()),
		Movies:  s.All(),
	}
}

func notFound() Output {
	return Output{Status: StatusNotFound, Message: "❌ Фильм не найден."}
}

func saveFailed(err error) Output {
	return Output{
		Status:  StatusError,
		Message: fmt.Sprintf("⚠️  Ошибка сохранения в файл: %v", err),
		Err:     err,
	}
}

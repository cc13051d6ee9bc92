package shell

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazadus/go-movielist/internal/movie"
	"github.com/hazadus/go-movielist/internal/store"
)

type failingPersister struct{}

func (failingPersister) Save([]movie.Movie) error {
	return errors.New("диск недоступен")
}

func TestExecuteAddAndList(t *testing.T) {
	s := store.New(nil)

	out := Execute(s, List{})
	assert.Equal(t, StatusEmpty, out.Status)

	out = Execute(s, Add{Name: "Alien", Genre: "Sci-Fi", Rating: 8.5})
	assert.Equal(t, StatusOK, out.Status)

	out = Execute(s, List{})
	assert.Equal(t, StatusOK, out.Status)
	assert.Equal(t, []movie.Movie{{Name: "Alien", Genre: "Sci-Fi", Rating: 8.5}}, out.Movies)
	assert.Contains(t, out.Message, "1")
}

func TestExecuteFind(t *testing.T) {
	s := store.New(nil)
	Execute(s, Add{Name: "Alien", Genre: "Sci-Fi", Rating: 8.5})

	out := Execute(s, Find{Name: "Alien"})
	assert.Equal(t, StatusOK, out.Status)
	assert.Equal(t, "🎬 Фильм найден: Alien (Sci-Fi) с рейтингом 8.5", out.Message)
	assert.Equal(t, "Sci-Fi", out.Movie.Genre)

	out = Execute(s, Find{Name: "Heat"})
	assert.Equal(t, StatusNotFound, out.Status)
	assert.Equal(t, "❌ Фильм не найден.", out.Message)
}

func TestExecuteFilterRating(t *testing.T) {
	s := store.New(nil)

	out := Execute(s, FilterRating{Rating: 8.5})
	assert.Equal(t, StatusEmpty, out.Status)

	Execute(s, Add{Name: "Alien", Genre: "Sci-Fi", Rating: 8.5})
	Execute(s, Add{Name: "Heat", Genre: "Crime", Rating: 8.3})

	out = Execute(s, FilterRating{Rating: 8.5})
	assert.Equal(t, StatusOK, out.Status)
	require.Len(t, out.Movies, 1)
	assert.Equal(t, "Alien", out.Movies[0].Name)

	out = Execute(s, FilterRating{Rating: 9})
	assert.Equal(t, StatusNotFound, out.Status)
	assert.Contains(t, out.Message, "9")
}

func TestExecuteDeleteAndEdit(t *testing.T) {
	s := store.New(nil)
	Execute(s, Add{Name: "Alien", Genre: "Sci-Fi", Rating: 8.5})
	Execute(s, Add{Name: "Heat", Genre: "Crime", Rating: 8.3})

	out := Execute(s, Edit{OldName: "Heat", Name: "Heat", Genre: "Thriller", Rating: 9})
	assert.Equal(t, StatusOK, out.Status)
	assert.Equal(t, "Thriller", s.All()[1].Genre)

	out = Execute(s, Edit{OldName: "Missing", Name: "X", Genre: "Y", Rating: 1})
	assert.Equal(t, StatusNotFound, out.Status)

	out = Execute(s, Delete{Name: "Alien"})
	assert.Equal(t, StatusOK, out.Status)
	assert.Equal(t, 1, s.Len())

	out = Execute(s, Delete{Name: "Alien"})
	assert.Equal(t, StatusNotFound, out.Status)

	out = Execute(s, Clear{})
	assert.Equal(t, StatusOK, out.Status)
	assert.Equal(t, 0, s.Len())
}

func TestExecuteSaveFailure(t *testing.T) {
	s := store.New(failingPersister{})

	out := Execute(s, Add{Name: "Alien", Genre: "Sci-Fi", Rating: 8.5})
	assert.Equal(t, StatusError, out.Status)
	assert.Error(t, out.Err)
	assert.Contains(t, out.Message, "диск недоступен")

	// Запись остаётся в памяти
	assert.Equal(t, 1, s.Len())

	// Ненайденный фильм важнее ошибки сохранения: сохранения не было
	out = Execute(s, Delete{Name: "Heat"})
	assert.Equal(t, StatusNotFound, out.Status)
}

func TestRenderTable(t *testing.T) {
	assert.Empty(t, RenderTable(nil))

	table := RenderTable([]movie.Movie{
		{Name: "Alien", Genre: "Sci-Fi", Rating: 8.5},
		{Name: "Heat", Genre: "Crime", Rating: 8.3},
	})
	assert.Contains(t, table, "Название")
	assert.Contains(t, table, "Alien")
	assert.Contains(t, table, "8.3")
	assert.Less(t, strings.Index(table, "Alien"), strings.Index(table, "Heat"))
}

func TestMenuScript(t *testing.T) {
	s := store.New(nil)
	input := strings.Join([]string{
		"1", "Alien", "Sci-Fi", "8.5",
		"1", "Heat", "Crime", "8.3",
		"2", "Alien",
		"3", "8.3",
		"6", "Heat", "Heat", "Thriller", "9",
		"4", "Alien",
		"5",
		"8",
	}, "\n") + "\n"

	var out bytes.Buffer
	require.NoError(t, NewMenu(s, strings.NewReader(input), &out).Run())

	assert.Equal(t, []movie.Movie{{Name: "Heat", Genre: "Thriller", Rating: 9}}, s.All())

	output := out.String()
	assert.Contains(t, output, "🎬 Фильм найден: Alien (Sci-Fi) с рейтингом 8.5")
	assert.Contains(t, output, "🎬 Фильмы с рейтингом 8.3:")
	assert.Contains(t, output, "✅ Данные фильма обновлены!")
	assert.Contains(t, output, "🗑️  Фильм удалён.")
	assert.Contains(t, output, "Thriller")
	assert.Contains(t, output, "👋 До свидания!")
}

func TestMenuInvalidInput(t *testing.T) {
	s := store.New(nil)
	input := "42\nabc\n1\nAlien\nSci-Fi\nотлично\n8\n"

	var out bytes.Buffer
	require.NoError(t, NewMenu(s, strings.NewReader(input), &out).Run())

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 2, strings.Count(out.String(), "❌ Неверный выбор"))
	assert.Contains(t, out.String(), "рейтинг должен быть числом")
}

func TestMenuEndOfInput(t *testing.T) {
	s := store.New(nil)

	var out bytes.Buffer
	require.NoError(t, NewMenu(s, strings.NewReader("1\nAlien\nSci-Fi\n8.5"), &out).Run())

	// Последняя строка без перевода строки всё равно читается
	assert.Equal(t, 1, s.Len())
}

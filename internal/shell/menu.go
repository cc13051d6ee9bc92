package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hazadus/go-movielist/internal/movie"
	"github.com/hazadus/go-movielist/internal/store"
)

const menuText = `
1. Добавить фильм
2. Найти фильм по названию
3. Найти фильмы по рейтингу
4. Удалить фильм
5. Показать все фильмы
6. Редактировать фильм
7. Очистить каталог
8. Выход
`

var errInvalidInput = errors.New("неверный ввод")

// Menu интерактивное нумерованное меню поверх Execute
type Menu struct {
	store *store.Store
	in    *bufio.Reader
	out   io.Writer
}

// NewMenu создает меню, читающее команды из in и пишущее в out
func NewMenu(s *store.Store, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		store: s,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

// Run показывает меню до выбора пункта "Выход" или конца ввода
func (m *Menu) Run() error {
	for {
		fmt.Fprint(m.out, menuText)
		choice, err := m.prompt("Ваш выбор: ")
		if err != nil {
			return m.finish(err)
		}

		n, err := strconv.Atoi(strings.TrimSpace(choice))
		if err != nil {
			n = 0
		}
		if n == 8 {
			fmt.Fprintln(m.out, "👋 До свидания!")
			return nil
		}

		cmd, err := m.readCommand(n)
		if err != nil {
			if errors.Is(err, errInvalidInput) {
				fmt.Fprintf(m.out, "❌ %v\n", err)
				continue
			}
			return m.finish(err)
		}
		if cmd == nil {
			fmt.Fprintln(m.out, "❌ Неверный выбор, попробуйте снова.")
			continue
		}
		Print(m.out, Execute(m.store, cmd))
	}
}

func (m *Menu) readCommand(choice int) (Command, error) {
	switch choice {
	case 1:
		name, err := m.prompt("Введите название фильма: ")
		if err != nil {
			return nil, err
		}
		genre, err := m.prompt("Введите жанр: ")
		if err != nil {
			return nil, err
		}
		rating, err := m.promptRating("Введите рейтинг: ")
		if err != nil {
			return nil, err
		}
		return Add{Name: name, Genre: genre, Rating: rating}, nil

	case 2:
		name, err := m.prompt("Введите название фильма для поиска: ")
		if err != nil {
			return nil, err
		}
		return Find{Name: name}, nil

	case 3:
		rating, err := m.promptRating("Введите точный рейтинг для поиска: ")
		if err != nil {
			return nil, err
		}
		return FilterRating{Rating: rating}, nil

	case 4:
		name, err := m.prompt("Введите название фильма для удаления: ")
		if err != nil {
			return nil, err
		}
		return Delete{Name: name}, nil

	case 5:
		return List{}, nil

	case 6:
		oldName, err := m.prompt("Введите текущее название фильма: ")
		if err != nil {
			return nil, err
		}
		name, err := m.prompt("Введите новое название: ")
		if err != nil {
			return nil, err
		}
		genre, err := m.prompt("Введите новый жанр: ")
		if err != nil {
			return nil, err
		}
		rating, err := m.promptRating("Введите новый рейтинг: ")
		if err != nil {
			return nil, err
		}
		return Edit{OldName: oldName, Name: name, Genre: genre, Rating: rating}, nil

	case 7:
		return Clear{}, nil
	}
	return nil, nil
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (m *Menu) promptRating(label string) (float64, error) {
	text, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	rating, err := movie.ParseRating(text)
	if err != nil {
		return 0, fmt.Errorf("%w: рейтинг должен быть числом", errInvalidInput)
	}
	return rating, nil
}

// finish завершает меню: конец ввода считается выходом
func (m *Menu) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(m.out)
		return nil
	}
	return err
}

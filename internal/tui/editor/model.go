// Package editor содержит модель экрана добавления и редактирования фильма для TUI
package editor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/hazadus/go-movielist/internal/movie"
	"github.com/hazadus/go-movielist/internal/store"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).MarginBottom(1)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)

// SavedMsg отправляется когда фильм сохранён
type SavedMsg struct{}

// GoBackMsg отправляется при выходе из редактора
type GoBackMsg struct{}

const (
	nameField = iota
	genreField
	ratingField
)

type field struct {
	label string
	input textinput.Model
}

func newField(label, placeholder, value string) field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.SetValue(value)
	return field{label: label, input: in}
}

// Model экран редактирования одного фильма. Позиция фокуса len(fields)
// соответствует кнопке сохранения.
type Model struct {
	store   *store.Store
	entryID uuid.UUID
	isNew   bool
	fields  []field
	focus   int
	err     string
	success string
}

// NewModel создает редактор для entry. Если entry == nil, редактор добавляет новый фильм.
func NewModel(s *store.Store, entry *store.Entry) *Model {
	m := &Model{store: s, isNew: entry == nil}

	var current movie.Movie
	rating := ""
	if entry != nil {
		current = entry.Movie
		m.entryID = entry.ID
		rating = movie.FormatRating(current.Rating)
	}

	m.fields = []field{
		nameField:   newField("Название", "Введите название фильма", current.Name),
		genreField:  newField("Жанр", "Введите жанр", current.Genre),
		ratingField: newField("Рейтинг", "например 8.5", rating),
	}
	m.setFocus(0)
	return m
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// setFocus переводит фокус на позицию i по кругу
func (m *Model) setFocus(i int) tea.Cmd {
	n := len(m.fields) + 1
	m.focus = (i%n + n) % n

	var cmd tea.Cmd
	for j := range m.fields {
		if j == m.focus {
			cmd = m.fields[j].input.Focus()
		} else {
			m.fields[j].input.Blur()
		}
	}
	return cmd
}

func (m *Model) onSaveButton() bool {
	return m.focus == len(m.fields)
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, func() tea.Msg { return GoBackMsg{} }
		case "ctrl+s":
			return m, m.save()
		case "enter":
			if m.onSaveButton() {
				return m, m.save()
			}
			return m, m.setFocus(m.focus + 1)
		case "tab", "down":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		}

	case tea.WindowSizeMsg:
		for i := range m.fields {
			m.fields[i].input.Width = msg.Width - 20
		}
		return m, nil
	}

	if m.onSaveButton() {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m *Model) value(i int) string {
	return m.fields[i].input.Value()
}

// save применяет изменения к каталогу. Название и жанр сохраняются как есть,
// рейтинг должен быть числом.
func (m *Model) save() tea.Cmd {
	rating, err := movie.ParseRating(m.value(ratingField))
	if err != nil {
		m.err, m.success = "Рейтинг должен быть числом", ""
		return nil
	}
	updated := movie.Movie{Name: m.value(nameField), Genre: m.value(genreField), Rating: rating}

	var saveErr error
	if m.isNew {
		saveErr = m.store.Append(updated.Name, updated.Genre, updated.Rating)
		// Запись уже в каталоге: повторное сохранение должно её править, а не дублировать
		entries := m.store.Entries()
		m.entryID = entries[len(entries)-1].ID
		m.isNew = false
	} else {
		var ok bool
		if ok, saveErr = m.store.EditByID(m.entryID, updated); !ok {
			m.err, m.success = "Фильм не найден", ""
			return nil
		}
	}

	if saveErr != nil {
		m.err, m.success = fmt.Sprintf("Изменения применены, но не сохранены в файл: %v", saveErr), ""
	} else {
		m.err, m.success = "", "Фильм успешно сохранен!"
	}

	return tea.Batch(
		func() tea.Msg { return SavedMsg{} },
		tea.Tick(time.Second, func(time.Time) tea.Msg { return GoBackMsg{} }),
	)
}

// Err возвращает текст последней ошибки
func (m *Model) Err() string {
	return m.err
}

// View отображает модель
func (m *Model) View() string {
	header := "Редактирование фильма"
	if m.isNew {
		header = "Новый фильм"
	}

	rows := []string{headerStyle.Render(header)}
	for i, f := range m.fields {
		marker := "  "
		if i == m.focus {
			marker = activeStyle.Render("› ")
		}
		rows = append(rows, fmt.Sprintf("%s%-10s %s", marker, f.label+":", f.input.View()), "")
	}

	button := mutedStyle.Render("[ Сохранить ]")
	if m.onSaveButton() {
		button = activeStyle.Render("[ Сохранить ]")
	}
	rows = append(rows, button, "")

	switch {
	case m.err != "":
		rows = append(rows, errStyle.Render(m.err))
	case m.success != "":
		rows = append(rows, okStyle.Render(m.success))
	}

	rows = append(rows, mutedStyle.Render(strings.Join([]string{
		"Tab/↓ далее", "Shift+Tab/↑ назад", "Ctrl+S сохранить", "Esc отмена",
	}, " • ")))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

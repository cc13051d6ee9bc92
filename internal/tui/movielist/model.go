// Package movielist содержит модель экрана списка фильмов для TUI
package movielist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-movielist/internal/movie"
	"github.com/hazadus/go-movielist/internal/store"
	"github.com/hazadus/go-movielist/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	statusStyle       = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("241"))
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// EditMsg отправляется при выборе фильма для редактирования
type EditMsg struct {
	Entry store.Entry
}

// AddMsg отправляется при добавлении нового фильма
type AddMsg struct{}

// movieItem реализует интерфейс list.Item для фильма
type movieItem struct {
	entry store.Entry
}

func (i movieItem) FilterValue() string {
	return fmt.Sprintf("%s %s", i.entry.Movie.Name, i.entry.Movie.Genre)
}

// movieItemDelegate реализует отображение элементов списка
type movieItemDelegate struct{}

func (d movieItemDelegate) Height() int                             { return 1 }
func (d movieItemDelegate) Spacing() int                            { return 0 }
func (d movieItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d movieItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(movieItem)
	if !ok {
		return
	}

	// Название | Жанр | Рейтинг
	str := fmt.Sprintf("%-40s %-20s %s",
		utils.TruncateString(i.entry.Movie.Name, 40),
		utils.TruncateString(i.entry.Movie.Genre, 20),
		movie.FormatRating(i.entry.Movie.Rating))

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана списка фильмов
type Model struct {
	list     list.Model
	store    *store.Store
	status   string
	quitting bool
}

// NewModel создает новую модель списка фильмов
func NewModel(s *store.Store) *Model {
	l := list.New(toItems(s.Entries()), movieItemDelegate{}, 0, 0)
	l.Title = "Фильмы"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{
		list:  l,
		store: s,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData обновляет данные модели без пересоздания
func (m *Model) RefreshData() {
	m.list.SetItems(toItems(m.store.Entries()))
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // Оставляем место для статуса и справки
		return m, nil

	case tea.KeyMsg:
		// Во время ввода фильтра все клавиши принадлежат списку
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "a":
			return m, func() tea.Msg {
				return AddMsg{}
			}

		case "enter", "e":
			if item, ok := m.list.SelectedItem().(movieItem); ok {
				return m, func() tea.Msg {
					return EditMsg{Entry: item.entry}
				}
			}

		case "d":
			if item, ok := m.list.SelectedItem().(movieItem); ok {
				m.deleteEntry(item.entry)
			}
			return m, nil
		}
	}

	// Обновляем список
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) deleteEntry(entry store.Entry) {
	ok, err := m.store.DeleteByID(entry.ID)
	switch {
	case !ok:
		m.status = "Фильм не найден"
	case err != nil:
		m.status = fmt.Sprintf("Фильм удалён, но не сохранён: %v", err)
	default:
		m.status = fmt.Sprintf("Удалён фильм %q", entry.Movie.Name)
	}
	m.RefreshData()
}

// Status возвращает последнее сообщение для пользователя
func (m *Model) Status() string {
	return m.status
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	view := m.list.View()
	if m.status != "" {
		view += "\n" + statusStyle.Render(m.status)
	}
	extraHelp := helpStyle.Render("a: добавить • Enter/e: редактировать • d: удалить • q: выход")
	return view + "\n" + extraHelp
}

func toItems(entries []store.Entry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = movieItem{entry: e}
	}
	return items
}

// Package app содержит основную логику TUI приложения
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-movielist/internal/store"
	"github.com/hazadus/go-movielist/internal/tui/editor"
	"github.com/hazadus/go-movielist/internal/tui/movielist"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

const (
	// MovieListScreen - экран списка фильмов
	MovieListScreen ScreenType = iota
	// EditorScreen - экран редактирования
	EditorScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	store          *store.Store
	currentScreen  ScreenType
	movieListModel *movielist.Model
	editorModel    *editor.Model
}

// NewMainModel создает новую главную модель
func NewMainModel(s *store.Store) *MainModel {
	return &MainModel{
		store:          s,
		currentScreen:  MovieListScreen,
		movieListModel: movielist.NewModel(s),
	}
}

// CurrentScreen возвращает активный экран
func (m *MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.movieListModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" && m.currentScreen == MovieListScreen {
			return m, tea.Quit
		}

	case movielist.AddMsg:
		m.currentScreen = EditorScreen
		m.editorModel = editor.NewModel(m.store, nil)
		return m, m.editorModel.Init()

	case movielist.EditMsg:
		m.currentScreen = EditorScreen
		entry := msg.Entry
		m.editorModel = editor.NewModel(m.store, &entry)
		return m, m.editorModel.Init()

	case editor.SavedMsg:
		// Список обновится сразу, даже если пользователь ещё в редакторе
		m.movieListModel.RefreshData()
		return m, nil

	case editor.GoBackMsg:
		m.currentScreen = MovieListScreen
		m.editorModel = nil
		m.movieListModel.RefreshData()
		return m, nil

	case tea.WindowSizeMsg:
		// Размеры окна нужны обоим экранам
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.movieListModel, cmd = m.movieListModel.Update(msg)
		cmds = append(cmds, cmd)
		if m.editorModel != nil {
			m.editorModel, cmd = m.editorModel.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	// Передаем сообщение активной модели
	var cmd tea.Cmd
	switch m.currentScreen {
	case MovieListScreen:
		m.movieListModel, cmd = m.movieListModel.Update(msg)

	case EditorScreen:
		if m.editorModel != nil {
			m.editorModel, cmd = m.editorModel.Update(msg)
		}
	}

	return m, cmd
}

// View отображает интерфейс
func (m *MainModel) View() string {
	switch m.currentScreen {
	case MovieListScreen:
		return m.movieListModel.View()

	case EditorScreen:
		if m.editorModel != nil {
			return m.editorModel.View()
		}
		return "Ошибка: модель редактора не инициализирована"

	default:
		return "Неизвестный экран"
	}
}

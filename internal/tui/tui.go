// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-movielist/internal/store"
	"github.com/hazadus/go-movielist/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	store *store.Store
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(s *store.Store) *App {
	return &App{store: s}
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	model := app.NewMainModel(tuiApp.store)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

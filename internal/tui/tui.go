// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/track"
	"github.com/hazadus/go-playlist/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	trackManager *track.Manager
	demoLength   func(playlist.Track) time.Duration
	saveFunc     func() error // Функция для сохранения данных
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(trackManager *track.Manager, demoLength func(playlist.Track) time.Duration, saveFunc func() error) *App {
	return &App{
		trackManager: trackManager,
		demoLength:   demoLength,
		saveFunc:     saveFunc,
	}
}

// Model возвращает корневую модель Bubble Tea
func (tuiApp *App) Model() *app.MainModel {
	return app.NewMainModel(tuiApp.trackManager, tuiApp.demoLength, tuiApp.saveFunc)
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	p := tea.NewProgram(tuiApp.Model(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

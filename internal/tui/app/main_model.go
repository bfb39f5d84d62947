// Package app содержит основную логику TUI приложения
package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/track"
	"github.com/hazadus/go-playlist/internal/tui/editor"
	tuiPlayer "github.com/hazadus/go-playlist/internal/tui/player"
	"github.com/hazadus/go-playlist/internal/tui/tracklist"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// TracklistScreen - экран списка треков
	TracklistScreen ScreenType = iota
	// PlayerScreen - экран плеера
	PlayerScreen
	// EditorScreen - экран добавления трека
	EditorScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	trackManager   *track.Manager
	demoLength     func(playlist.Track) time.Duration
	currentScreen  ScreenType
	tracklistModel *tracklist.Model
	playerModel    *tuiPlayer.Model
	editorModel    *editor.Model
}

// NewMainModel создает новую главную модель.
// demoLength определяет длительность имитации воспроизведения трека.
func NewMainModel(trackManager *track.Manager, demoLength func(playlist.Track) time.Duration, saveFunc func() error) *MainModel {
	return &MainModel{
		trackManager:   trackManager,
		demoLength:     demoLength,
		currentScreen:  TracklistScreen,
		tracklistModel: tracklist.NewModel(trackManager, saveFunc),
	}
}

// CurrentScreen возвращает активный экран
func (m *MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.tracklistModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Глобальные горячие клавиши
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tracklist.TrackSelectedMsg:
		m.currentScreen = PlayerScreen
		m.playerModel = tuiPlayer.NewModel(msg.Position, msg.Track, m.demoLength(msg.Track))
		return m, m.playerModel.Init()

	case tracklist.NewTrackMsg:
		m.currentScreen = EditorScreen
		m.editorModel = editor.NewModel(m.trackManager)
		return m, m.editorModel.Init()

	case tuiPlayer.GoBackMsg:
		m.currentScreen = TracklistScreen
		m.playerModel = nil
		return m, nil

	case editor.GoBackMsg:
		m.currentScreen = TracklistScreen
		m.editorModel = nil
		return m, nil

	case editor.TrackAddedMsg:
		m.currentScreen = TracklistScreen
		m.editorModel = nil
		m.tracklistModel.RefreshData()
		m.tracklistModel.SetStatus(fmt.Sprintf("✅ Добавлен трек: %s", msg.Track.Title))
		return m, nil

	case tuiPlayer.TickMsg:
		// Таймер мог пережить закрытый экран плеера
		if m.playerModel == nil {
			return m, nil
		}
	}

	// Передаем сообщение активной модели
	var cmd tea.Cmd
	switch m.currentScreen {
	case TracklistScreen:
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)

	case PlayerScreen:
		if m.playerModel != nil {
			var updatedModel tea.Model
			updatedModel, cmd = m.playerModel.Update(msg)
			if playerModel, ok := updatedModel.(*tuiPlayer.Model); ok {
				m.playerModel = playerModel
			}
		}

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
	case TracklistScreen:
		return m.tracklistModel.View()

	case PlayerScreen:
		if m.playerModel != nil {
			return m.playerModel.View()
		}
		return "Ошибка: модель плеера не инициализирована"

	case EditorScreen:
		if m.editorModel != nil {
			return m.editorModel.View()
		}
		return "Ошибка: модель редактора не инициализирована"

	default:
		return "Неизвестный экран"
	}
}

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-playlist/internal/logging"
	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/track"
	"github.com/hazadus/go-playlist/internal/tui/app"
	"github.com/hazadus/go-playlist/internal/tui/editor"
	"github.com/hazadus/go-playlist/internal/tui/player"
	"github.com/hazadus/go-playlist/internal/tui/tracklist"
)

func newTestApp() (*App, *track.Manager) {
	collection := playlist.NewCollection()
	collection.Add("Test Track", "Test Artist", "Test Album", 180)
	manager := track.NewManager(collection, nil, logging.Discard(), "")

	demo := func(playlist.Track) time.Duration { return 2 * time.Second }
	return NewApp(manager, demo, nil), manager
}

func update(t *testing.T, model *app.MainModel, msg tea.Msg) *app.MainModel {
	t.Helper()
	updated, _ := model.Update(msg)
	mainModel, ok := updated.(*app.MainModel)
	if !ok {
		t.Fatalf("Update вернул %T", updated)
	}
	return mainModel
}

func TestMainModelRouting(t *testing.T) {
	tuiApp, manager := newTestApp()
	model := tuiApp.Model()

	if model.CurrentScreen() != app.TracklistScreen {
		t.Errorf("Ожидался экран списка, получено %v", model.CurrentScreen())
	}

	// Переход на экран плеера
	model = update(t, model, tracklist.TrackSelectedMsg{Position: 1, Track: manager.ListTracks()[0]})
	if model.CurrentScreen() != app.PlayerScreen {
		t.Errorf("Ожидался экран плеера, получено %v", model.CurrentScreen())
	}
	if !strings.Contains(model.View(), "Test Track") {
		t.Error("Экран плеера должен показывать трек")
	}

	// Возврат к списку
	model = update(t, model, player.GoBackMsg{})
	if model.CurrentScreen() != app.TracklistScreen {
		t.Errorf("Ожидался экран списка после GoBackMsg, получено %v", model.CurrentScreen())
	}

	// Запоздавший тик не должен ломать список
	model = update(t, model, player.TickMsg{})
	if model.CurrentScreen() != app.TracklistScreen {
		t.Error("Тик не должен менять экран")
	}

	// Глобальная горячая клавиша
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Ожидалась команда tea.Quit после Ctrl+C")
	}
}

func TestMainModelAddTrack(t *testing.T) {
	tuiApp, manager := newTestApp()
	model := tuiApp.Model()

	model = update(t, model, tracklist.NewTrackMsg{})
	if model.CurrentScreen() != app.EditorScreen {
		t.Fatalf("Ожидался экран редактора, получено %v", model.CurrentScreen())
	}
	if !strings.Contains(model.View(), "Новый трек") {
		t.Error("Ожидалась форма нового трека")
	}

	added, err := manager.Add("Fresh", "", "", "60")
	if err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}
	model = update(t, model, editor.TrackAddedMsg{Track: added})

	if model.CurrentScreen() != app.TracklistScreen {
		t.Errorf("Ожидался возврат к списку, получено %v", model.CurrentScreen())
	}
	if !strings.Contains(model.View(), "Добавлен трек: Fresh") {
		t.Error("Ожидалось сообщение о добавлении")
	}
}

func TestMainModelEditorCancel(t *testing.T) {
	tuiApp, _ := newTestApp()
	model := tuiApp.Model()

	model = update(t, model, tracklist.NewTrackMsg{})
	model = update(t, model, editor.GoBackMsg{})

	if model.CurrentScreen() != app.TracklistScreen {
		t.Errorf("Ожидался экран списка после отмены, получено %v", model.CurrentScreen())
	}
}

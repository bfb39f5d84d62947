// Package tracklist содержит модель экрана списка треков для TUI
package tracklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/track"
	"github.com/hazadus/go-playlist/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	statusStyle       = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("42"))
	errorStyle        = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("196"))
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// TrackSelectedMsg отправляется при выборе трека для воспроизведения
type TrackSelectedMsg struct {
	Position int
	Track    playlist.Track
}

// NewTrackMsg отправляется при запросе добавления нового трека
type NewTrackMsg struct{}

// trackItem реализует интерфейс list.Item для трека
type trackItem struct {
	position int
	track    playlist.Track
}

func (i trackItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", i.track.Artist, i.track.Title, i.track.Album)
}

// trackItemDelegate реализует отображение элементов списка
type trackItemDelegate struct{}

func (d trackItemDelegate) Height() int                             { return 1 }
func (d trackItemDelegate) Spacing() int                            { return 0 }
func (d trackItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d trackItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(trackItem)
	if !ok {
		return
	}

	// Позиция | Исполнитель | Название | Длительность
	str := fmt.Sprintf("%-4d %-20s %-50s %s",
		i.position,
		utils.TruncateString(i.track.Artist, 20),
		utils.TruncateString(i.track.Title, 50),
		utils.FormatTrackDuration(i.track.Duration))

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана списка треков
type Model struct {
	list         list.Model
	trackManager *track.Manager
	saveFunc     func() error
	status       string
	err          string
	quitting     bool
}

// NewModel создает новую модель списка треков
func NewModel(trackManager *track.Manager, saveFunc func() error) *Model {
	l := list.New(buildItems(trackManager.ListTracks()), trackItemDelegate{}, 0, 0)
	l.Title = "Плейлист"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{
		list:         l,
		trackManager: trackManager,
		saveFunc:     saveFunc,
	}
}

func buildItems(tracks []playlist.Track) []list.Item {
	items := make([]list.Item, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{position: i + 1, track: t}
	}
	return items
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData обновляет данные модели без пересоздания
func (m *Model) RefreshData() {
	m.list.SetItems(buildItems(m.trackManager.ListTracks()))
}

// SetStatus показывает сообщение под списком
func (m *Model) SetStatus(status string) {
	m.status = status
	m.err = ""
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 5) // Оставляем место для справки и статуса
		return m, nil

	case tea.KeyMsg:
		// Во время ввода фильтра клавиши принадлежат списку
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if item, ok := m.list.SelectedItem().(trackItem); ok {
				return m, func() tea.Msg {
					return TrackSelectedMsg{Position: item.position, Track: item.track}
				}
			}
			return m, nil

		case "n":
			return m, func() tea.Msg {
				return NewTrackMsg{}
			}

		case "s":
			m.trackManager.Shuffle()
			m.RefreshData()
			m.SetStatus("🔀 Плейлист перемешан")
			return m, nil

		case "t", "a", "d":
			m.sort(msg.String())
			return m, nil

		case "x":
			m.removeSelected()
			return m, nil

		case "w":
			m.save()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) sort(key string) {
	keys := map[string]string{"t": "title", "a": "artist", "d": "duration"}

	sortKey, err := m.trackManager.Sort(keys[key])
	if err != nil {
		m.err = err.Error()
		return
	}
	m.RefreshData()
	m.SetStatus(fmt.Sprintf("🔤 Отсортировано по %s", sortKey))
}

func (m *Model) removeSelected() {
	item, ok := m.list.SelectedItem().(trackItem)
	if !ok {
		return
	}

	removed, err := m.trackManager.Remove(item.position)
	if err != nil {
		m.err = err.Error()
		return
	}
	m.RefreshData()
	m.SetStatus(fmt.Sprintf("🗑️  Удален трек: %s", removed.Title))
}

func (m *Model) save() {
	if m.saveFunc == nil {
		return
	}
	if err := m.saveFunc(); err != nil {
		m.err = fmt.Sprintf("Ошибка сохранения: %v", err)
		return
	}
	m.SetStatus(fmt.Sprintf("💾 Сохранено треков: %d", m.trackManager.Len()))
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")
	switch {
	case m.err != "":
		b.WriteString(errorStyle.Render(m.err))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		"Enter: играть • n: новый • x: удалить • s: перемешать • t/a/d: сортировка • w: сохранить • q: выход"))
	return b.String()
}

// Package player содержит модель экрана имитации воспроизведения для TUI
package player

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0000ff")).
			MarginBottom(1)

	trackInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1).
			MarginBottom(1)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)
)

// tickInterval - шаг обновления прогресса
const tickInterval = time.Second

// GoBackMsg отправляется для возврата к списку треков
type GoBackMsg struct{}

// TickMsg продвигает имитацию воспроизведения
type TickMsg struct{}

// Model представляет модель экрана воспроизведения
type Model struct {
	position    int
	track       playlist.Track
	demo        time.Duration
	elapsed     time.Duration
	progressBar progress.Model
	paused      bool
}

// NewModel создает модель плеера для трека; demo - длительность имитации
func NewModel(position int, track playlist.Track, demo time.Duration) *Model {
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	return &Model{
		position:    position,
		track:       track,
		demo:        demo,
		progressBar: prog,
	}
}

// Init запускает таймер имитации
func (m *Model) Init() tea.Cmd {
	if m.demo <= 0 {
		return goBack
	}
	return tick()
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progressBar.Width = min(60, msg.Width-10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, goBack

		case " ":
			m.paused = !m.paused
			return m, nil
		}

	case TickMsg:
		if !m.paused {
			m.elapsed += tickInterval
		}
		if m.Finished() {
			return m, tea.Batch(m.progressBar.SetPercent(1), goBack)
		}
		return m, tea.Batch(m.progressBar.SetPercent(m.Percent()), tick())

	case progress.FrameMsg:
		progressModel, cmd := m.progressBar.Update(msg)
		m.progressBar = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

// Percent возвращает долю прошедшей имитации
func (m *Model) Percent() float64 {
	if m.demo <= 0 {
		return 1
	}
	return min(1, float64(m.elapsed)/float64(m.demo))
}

// Finished сообщает, закончилась ли имитация
func (m *Model) Finished() bool {
	return m.elapsed >= m.demo
}

// View отображает модель
func (m *Model) View() string {
	title := titleStyle.Render(fmt.Sprintf("🎵 Воспроизведение #%d", m.position))

	trackInfo := trackInfoStyle.Render(fmt.Sprintf(
		"🎤 %s\n🎵 %s\n💿 %s",
		m.track.Artist,
		m.track.Title,
		m.track.Album,
	))

	statusIcon := "▶️"
	if m.paused {
		statusIcon = "⏸️"
	}
	statusText := statusStyle.Render(fmt.Sprintf("%s %s", statusIcon, formatStatus(m.paused)))

	timeText := fmt.Sprintf(
		"%s / %s (трек %s)",
		utils.FormatDuration(m.elapsed),
		utils.FormatDuration(m.demo),
		utils.FormatTrackDuration(m.track.Duration),
	)

	controls := controlsStyle.Render("Пробел: пауза/воспроизведение • q/esc: назад к списку")

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s\n\n%s\n%s\n\n%s",
		title,
		trackInfo,
		statusText,
		m.progressBar.View(),
		timeText,
		controls,
	)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

func goBack() tea.Msg {
	return GoBackMsg{}
}

func formatStatus(paused bool) string {
	if paused {
		return "Пауза"
	}
	return "Воспроизведение (имитация)"
}

// Package editor содержит модель экрана добавления трека для TUI
package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/track"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(15)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
)

// TrackAddedMsg отправляется, когда трек добавлен в плейлист
type TrackAddedMsg struct {
	Track playlist.Track
}

// GoBackMsg отправляется при отмене добавления
type GoBackMsg struct{}

// fieldType определяет тип поля формы
type fieldType int

const (
	titleField fieldType = iota
	artistField
	albumField
	durationField
	numFields
)

var labels = [numFields]string{"Название:", "Исполнитель:", "Альбом:", "Длительность:"}

// Model представляет модель экрана добавления трека
type Model struct {
	trackManager *track.Manager
	inputs       []textinput.Model
	focusIndex   int
	err          string
}

// NewModel создает новую модель формы добавления трека
func NewModel(trackManager *track.Manager) *Model {
	inputs := make([]textinput.Model, numFields)

	inputs[titleField] = textinput.New()
	inputs[titleField].Placeholder = "Введите название трека"
	inputs[titleField].Focus()
	inputs[titleField].PromptStyle = focusedStyle
	inputs[titleField].TextStyle = focusedStyle

	inputs[artistField] = textinput.New()
	inputs[artistField].Placeholder = track.Unknown

	inputs[albumField] = textinput.New()
	inputs[albumField].Placeholder = track.Unknown

	// Длительность в секундах
	inputs[durationField] = textinput.New()
	inputs[durationField].Placeholder = "0"

	return &Model{
		trackManager: trackManager,
		inputs:       inputs,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg {
				return GoBackMsg{}
			}

		case "ctrl+s":
			return m, m.addTrack()

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			// Enter на кнопке добавления
			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, m.addTrack()
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			return m, m.updateFocus()
		}

	case tea.WindowSizeMsg:
		for i := range m.inputs {
			m.inputs[i].Width = msg.Width - 20
		}
		return m, nil
	}

	// Обновляем активное поле ввода
	if m.focusIndex < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) updateFocus() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle
		} else {
			m.inputs[i].Blur()
			m.inputs[i].PromptStyle = blurredStyle
			m.inputs[i].TextStyle = blurredStyle
		}
	}
	return tea.Batch(cmds...)
}

// addTrack добавляет трек через менеджер; при ошибке форма остается открытой
func (m *Model) addTrack() tea.Cmd {
	added, err := m.trackManager.Add(
		m.inputs[titleField].Value(),
		m.inputs[artistField].Value(),
		m.inputs[albumField].Value(),
		m.inputs[durationField].Value(),
	)
	if err != nil {
		m.err = fmt.Sprintf("Ошибка: %v", err)
		return nil
	}

	m.err = ""
	return func() tea.Msg {
		return TrackAddedMsg{Track: added}
	}
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Новый трек"))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString(" ")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	addButton := "[ Добавить ]"
	if m.focusIndex == len(m.inputs) {
		addButton = focusedStyle.Render(addButton)
	} else {
		addButton = blurredStyle.Render(addButton)
	}
	b.WriteString(addButton)
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("Tab/Enter: следующее поле • Shift+Tab: предыдущее поле"))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("Ctrl+S: добавить • Esc: отмена"))

	return b.String()
}

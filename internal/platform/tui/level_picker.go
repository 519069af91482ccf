package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// LevelSelection holds the user's choice from the picker.
type LevelSelection struct {
	Level int // 0 = keep the configured goal, 1..n = goal preset
}

// LevelPickerModel lets users keep the configured goal or pick a preset.
type LevelPickerModel struct {
	goal          int
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keys          MenuKeyMap
	help          help.Model
	selection     LevelSelection
	choosing      bool
	quitting      bool
}

// NewLevelPickerModel creates a picker. goal is the configured goal shown on the first entry.
func NewLevelPickerModel(goal, width, height int) LevelPickerModel {
	return LevelPickerModel{
		goal:     goal,
		width:    width,
		height:   height,
		keys:     DefaultMenuKeyMap(),
		help:     help.New(),
		choosing: true,
	}
}

// Init initializes the model.
func (m LevelPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keys.MenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleModeSelectKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m LevelPickerModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor == 0 {
			m.choosing = false
			m.selection = LevelSelection{}
			return m, tea.Quit
		}
		m.inLevelSelect = true
		m.levelCursor = 0
	}
	return m, nil
}

func (m LevelPickerModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < t2048.LevelCount()-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = LevelSelection{Level: m.levelCursor + 1}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the picker.
func (m LevelPickerModel) View() string {
	if m.quitting || !m.choosing {
		return ""
	}

	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	if m.inLevelSelect {
		b.WriteString(centerText(title.Render("SELECT GOAL"), m.width))
		b.WriteString("\n\n")
		for i, lvl := range t2048.Levels {
			b.WriteString(centerText(fmt.Sprintf("%s%d. %-18s %5d", cursorMark(i == m.levelCursor), lvl.ID, lvl.Name, lvl.Target), m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText(title.Render("2 0 4 8"), m.width))
		b.WriteString("\n\n")
		entries := []string{
			fmt.Sprintf("Classic (goal %d)", m.goal),
			"Choose goal...",
		}
		for i, e := range entries {
			b.WriteString(centerText(cursorMark(i == m.cursor)+e, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

func cursorMark(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

// Selected returns the selection, or nil if still choosing.
func (m LevelPickerModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelPickerModel) IsQuitting() bool {
	return m.quitting
}

// RunLevelPicker runs the picker and returns the selection, or nil if the user quit.
func RunLevelPicker(goal int, cfg core.RuntimeConfig) (*LevelSelection, error) {
	p := tea.NewProgram(
		NewLevelPickerModel(goal, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelPickerModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/numbertiles/internal/core"
)

// boardSizes are the presets offered by the size picker.
var boardSizes = []int{4, 5, 6, 8, 10, 12, 16}

// SizeSelection holds the user's choice from the board size menu.
// Size 0 means "use the configured default".
type SizeSelection struct {
	Size int
}

// SizeMenuModel lets users pick a board size before starting a game.
type SizeMenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection SizeSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewSizeMenuModel creates a new board size selection model.
func NewSizeMenuModel(width, height int) SizeMenuModel {
	return SizeMenuModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SizeMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SizeMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SizeMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	// Entry 0 is "default"; presets follow.
	entryCount := len(boardSizes) + 1

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < entryCount-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		if m.cursor == 0 {
			m.selection = SizeSelection{Size: 0}
		} else {
			m.selection = SizeSelection{Size: boardSizes[m.cursor-1]}
		}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the size selection.
func (m SizeMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("BOARD SIZE", m.width))
	b.WriteString("\n\n")

	entries := make([]string, 0, len(boardSizes)+1)
	entries = append(entries, "Default (from config)")
	for _, n := range boardSizes {
		entries = append(entries, fmt.Sprintf("%2d x %d", n, n))
	}

	for i, entry := range entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+entry, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SizeMenuModel) Selected() *SizeSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SizeMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SizeMenuModel) WantsBack() bool {
	return m.back
}

// RunSizeMenu runs the board size selection and returns the selection.
// A nil selection means the user backed out or quit.
func RunSizeMenu(cfg core.RuntimeConfig) (*SizeSelection, error) {
	model := NewSizeMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SizeMenuModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}

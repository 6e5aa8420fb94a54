package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#97F06C"))
	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	tableBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// MenuSelection is the board and difficulty picked in the menu.
type MenuSelection struct {
	Board      string
	Difficulty config.DifficultyPreset
}

// MenuModel is the Bubble Tea model for the board and difficulty picker.
type MenuModel struct {
	cfg        config.SnakeConfig
	boards     []string // Row order; the first row is always "auto"
	presets    []config.DifficultyPreset
	difficulty int // Index into presets
	table      table.Model
	help       help.Model
	keys       MenuKeyMap
	width      int
	height     int
	quitting   bool
	selected   *MenuSelection
}

// NewMenuModel creates a new menu model for a width x height terminal.
func NewMenuModel(cfg config.SnakeConfig, width, height int) MenuModel {
	m := MenuModel{
		cfg:     cfg,
		boards:  append([]string{config.BoardAuto}, cfg.BoardNames()...),
		presets: config.DifficultyPresets(),
		help:    help.New(),
		keys:    DefaultMenuKeyMap(),
		width:   width,
		height:  height,
	}
	for i, p := range m.presets {
		if p == config.DifficultyNormal {
			m.difficulty = i
		}
	}
	m.table = m.createTable()
	return m
}

// createTable builds the board table sized to the terminal.
func (m MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Board", Width: 10},
		{Title: "Cells", Width: 8},
		{Title: "Cell size", Width: 10},
		{Title: "Needs", Width: 8},
		{Title: "Fits", Width: 5},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(min(len(m.boards)+1, max(3, m.height-10))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// rows describes every board for the current terminal size.
func (m MenuModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.boards))
	for _, name := range m.boards {
		if name == config.BoardAuto {
			resolved, _, err := m.cfg.ResolveBoard(config.BoardAuto, m.fits)
			if err != nil {
				resolved = "-"
			}
			rows = append(rows, table.Row{name, "best fit", "", "", "→ " + resolved})
			continue
		}

		grid := m.cfg.Boards[name].Grid()
		w, h := snake.RequiredSize(grid)
		fits := "no"
		if m.fits(grid) {
			fits = "yes"
		}
		rows = append(rows, table.Row{
			name,
			fmt.Sprintf("%dx%d", grid.Columns, grid.Rows),
			fmt.Sprintf("%d", grid.CellSize),
			fmt.Sprintf("%dx%d", w, h+helpHeight),
			fits,
		})
	}
	return rows
}

// fits reports whether grid can be shown on the current terminal.
func (m MenuModel) fits(grid snake.Grid) bool {
	return snake.Fits(grid, m.width, gameHeight(m.height))
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Harder):
			m.difficulty = (m.difficulty + 1) % len(m.presets)
			return m, nil

		case key.Matches(msg, m.keys.Easier):
			m.difficulty = (m.difficulty + len(m.presets) - 1) % len(m.presets)
			return m, nil

		case key.Matches(msg, m.keys.Select):
			cursor := m.table.Cursor()
			if cursor >= 0 && cursor < len(m.boards) {
				m.selected = &MenuSelection{
					Board:      m.boards[cursor],
					Difficulty: m.presets[m.difficulty],
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for cursor movement
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtleStyle.Render("Pick a board"), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(tableBoxStyle.Render(m.table.View()), m.width))
	b.WriteString("\n\n")

	preset := m.presets[m.difficulty]
	diff := fmt.Sprintf("Difficulty: %s  %s",
		activeStyle.Render(string(preset)),
		subtleStyle.Render(preset.Describe()))
	b.WriteString(centerText(diff, m.width))
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the selection, or nil if none was made yet.
func (m MenuModel) Selected() *MenuSelection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers each line of a possibly styled block within width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

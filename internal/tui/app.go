// Package tui is the interactive terminal player. It follows the Elm
// architecture: the Model holds which screen we're on plus the live
// game, Update reacts to key presses, View renders the state. The
// engine stays headless; this is presentation only.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nofs/internal/card"
	"nofs/internal/condition"
	"nofs/internal/game"
)

type screen int

const (
	screenSetup screen = iota
	screenPlay
	screenOver
)

var modes = []game.Mode{game.ModeDay, game.ModeWeek, game.ModeLife}

type Model struct {
	screen screen

	// setup state
	modeIdx    int
	condCursor int
	selected   map[condition.Condition]bool
	condInfo   map[condition.Condition]condition.Info

	g   *game.Game
	err error
}

func NewModel() (Model, error) {
	info, err := condition.LoadInfo()
	if err != nil {
		return Model{}, err
	}
	return Model{
		modeIdx:  1, // week is the default run length
		selected: map[condition.Condition]bool{},
		condInfo: info,
	}, nil
}

// Run starts the interactive player and blocks until it exits.
func Run() error {
	m, err := NewModel()
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.screen {
	case screenSetup:
		return m.updateSetup(key)
	case screenPlay:
		return m.updatePlay(key)
	case screenOver:
		return m.updateOver(key)
	}
	return m, nil
}

func (m Model) updateSetup(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	conds := condition.All()
	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h":
		m.modeIdx = (m.modeIdx + len(modes) - 1) % len(modes)
	case "right", "l":
		m.modeIdx = (m.modeIdx + 1) % len(modes)
	case "up", "k":
		m.condCursor = (m.condCursor + len(conds) - 1) % len(conds)
	case "down", "j":
		m.condCursor = (m.condCursor + 1) % len(conds)
	case " ":
		c := conds[m.condCursor]
		m.selected[c] = !m.selected[c]
	case "enter":
		set := condition.Set{}
		for c, on := range m.selected {
			if on {
				set[c] = true
			}
		}
		g, err := game.New(modes[m.modeIdx], set)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.g = g
		m.screen = screenPlay
	}
	return m, nil
}

func (m Model) updatePlay(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s := key.String(); s {
	case "ctrl+c", "Q":
		return m, tea.Quit
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.g.SelectCard(int(s[0]-'0') - 1)
	case "z":
		m.g.SelectTask(0)
	case "x":
		m.g.SelectTask(1)
	case "a":
		m.g.AttemptTask()
	case "s":
		m.g.SkipTask()
	case "f":
		m.g.UseHyperfocus()
	case "d":
		m.g.DiscardToDraw()
	case "r":
		m.g.SpendToRemoveStress()
	case "c":
		m.g.ClearSelections()
	case "e":
		m.g.EndTurn()
	}
	if m.g.GameOver() {
		m.screen = screenOver
	}
	return m, nil
}

func (m Model) updateOver(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "n":
		m.screen = screenSetup
		m.g = nil
	case "ctrl+c", "q", "enter":
		return m, tea.Quit
	}
	return m, nil
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Underline(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
	stressStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	messageStyle  = lipgloss.NewStyle().Italic(true)

	kindGlyphs = map[card.Kind]string{
		card.Physical: "P",
		card.Social:   "S",
		card.Mental:   "M",
	}
)

func (m Model) View() string {
	switch m.screen {
	case screenSetup:
		return m.viewSetup()
	case screenPlay:
		return m.viewPlay()
	case screenOver:
		return m.viewOver()
	}
	return ""
}

func (m Model) viewSetup() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("No F's Given") + "\n\n")

	b.WriteString("Mode: ")
	for i, mode := range modes {
		label := string(mode)
		if i == m.modeIdx {
			label = selectedStyle.Render("[" + label + "]")
		} else {
			label = faintStyle.Render(" " + label + " ")
		}
		b.WriteString(label + " ")
	}
	b.WriteString("\n\nConditions (space to toggle):\n")

	for i, c := range condition.All() {
		cursor := "  "
		if i == m.condCursor {
			cursor = cursorStyle.Render("> ")
		}
		mark := "[ ]"
		if m.selected[c] {
			mark = "[x]"
		}
		info := m.condInfo[c]
		b.WriteString(fmt.Sprintf("%s%s %s: %s\n", cursor, mark, info.Name, faintStyle.Render(info.Rule)))
	}

	b.WriteString("\n" + faintStyle.Render("←/→ mode · ↑/↓ move · space toggle · enter start · q quit") + "\n")
	return b.String()
}

func (m Model) viewPlay() string {
	s := m.g.Snapshot()
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Day %d · %s (Turn %d)", s.Day, s.Timeslot, s.Turn)))
	b.WriteString("  ")
	stress := stressStyle.Render(fmt.Sprintf("Stress %d/7", s.Stress))
	if s.StressShield > 0 {
		stress += fmt.Sprintf(" (shield %d)", s.StressShield)
	}
	if s.BurntOut {
		stress += stressStyle.Render("  BURNT OUT")
	}
	b.WriteString(stress + "\n\n")

	b.WriteString("Tasks:\n")
	for i, t := range s.CurrentTasks {
		line := fmt.Sprintf("  [%s] %s  needs %s", []string{"z", "x"}[i], t.Name, s.ModifiedCosts[i])
		if s.SelectedTask == i {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if len(s.CurrentTasks) == 0 {
		b.WriteString(faintStyle.Render("  (no tasks this turn)") + "\n")
	}

	b.WriteString("\nHand:\n  ")
	selected := map[int]bool{}
	for _, i := range s.SelectedCards {
		selected[i] = true
	}
	for i, c := range s.Hand {
		label := fmt.Sprintf("%d:%s", i+1, kindGlyphs[c.Kind])
		if selected[i] {
			label = selectedStyle.Render(label)
		}
		b.WriteString(label + " ")
	}
	b.WriteString("\n\n")

	b.WriteString(messageStyle.Render(s.Message) + "\n\n")
	b.WriteString(faintStyle.Render("1-9 cards · z/x tasks · a attempt · s skip · f hyperfocus · d discard2 · r destress · c clear · e end turn · Q quit") + "\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("deck %d · discard %d · completed %d", s.ResourceDeck, s.ResourceDiscard, len(s.CompletedTasks))) + "\n")
	return b.String()
}

func (m Model) viewOver() string {
	s := m.g.Snapshot()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Game Over") + "\n\n")
	b.WriteString(s.Message + "\n")
	if s.Grade != "" {
		b.WriteString("\nGrade: " + selectedStyle.Render(s.Grade) + "\n")
	}
	b.WriteString("\n" + faintStyle.Render("n new game · q quit") + "\n")
	return b.String()
}

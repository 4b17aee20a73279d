// internal/tui/status.go
//
// The `aockit status` calendar. It uses bubbletea, which follows The Elm
// Architecture: Model (state) -> Update (messages) -> View (render).

package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MyNameIs-13/aockit/internal/solution"
)

// keyMap declares the calendar keybindings.
type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Edit key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Up:   key.NewBinding(key.WithKeys("up", "k")),
	Down: key.NewBinding(key.WithKeys("down", "j")),
	Edit: key.NewBinding(key.WithKeys("e", "enter")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	starStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	journalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginTop(1)
)

// DayStatus is one calendar row.
type DayStatus struct {
	Day         int
	HasSolution bool
	HasInput    bool
	Stars       int
	File        string
}

// Status holds everything the view needs; the CLI assembles it before the
// program starts so the model itself never touches the network.
type Status struct {
	Year    int
	Days    []DayStatus
	Journal []string
}

// Model is the bubbletea model for the status calendar.
type Model struct {
	status Status
	cursor int
	err    error
}

// NewModel builds the calendar model.
func NewModel(status Status) Model {
	return Model{status: status}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

type editorFinishedMsg struct{ err error }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.status.Days)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Edit):
			return m, m.openEditor()
		}
	case editorFinishedMsg:
		m.err = msg.err
	}
	return m, nil
}

// openEditor spawns $EDITOR on the selected day file, suspending the TUI
// while it runs.
func (m Model) openEditor() tea.Cmd {
	day := m.status.Days[m.cursor]
	if !day.HasSolution {
		return nil
	}
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	cmd := exec.Command(editor, day.File)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Advent of Code %d", m.status.Year)))
	b.WriteString("\n\n")

	for i, day := range m.status.Days {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("day %02d  %s  %s  %s",
			day.Day, renderStars(day.Stars), renderFlag(day.HasSolution, "code"), renderFlag(day.HasInput, "input"))
		if !day.HasSolution {
			line = missingStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	if len(m.status.Journal) > 0 {
		b.WriteString("\n" + titleStyle.Render("Recent submissions") + "\n")
		for _, line := range m.status.Journal {
			b.WriteString(journalStyle.Render(line) + "\n")
		}
	}
	if m.err != nil {
		b.WriteString("\n" + fmt.Sprintf("editor: %v", m.err) + "\n")
	}
	b.WriteString(footerStyle.Render("up/down move · e edit · q quit"))
	return b.String()
}

func renderStars(stars int) string {
	switch stars {
	case 2:
		return starStyle.Render("**")
	case 1:
		return starStyle.Render("* ")
	default:
		return "  "
	}
}

func renderFlag(set bool, label string) string {
	if set {
		return label
	}
	return missingStyle.Render(strings.Repeat("-", len(label)))
}

// TotalStars sums the stars across the calendar.
func (s Status) TotalStars() int {
	total := 0
	for _, day := range s.Days {
		total += day.Stars
	}
	return total
}

// NewStatus assembles calendar rows from the discovery and cache callbacks
// the CLI provides per day.
func NewStatus(year int, dayFiles map[int]string, hasInput func(int) bool, stars func(int) int, journal []string) Status {
	status := Status{Year: year, Journal: journal}
	for day := solution.FirstDay; day <= solution.LastDay; day++ {
		file, hasSolution := dayFiles[day]
		status.Days = append(status.Days, DayStatus{
			Day:         day,
			HasSolution: hasSolution,
			HasInput:    hasInput(day),
			Stars:       stars(day),
			File:        file,
		})
	}
	return status
}

// Run starts the bubbletea program.
func Run(status Status) error {
	_, err := tea.NewProgram(NewModel(status), tea.WithAltScreen()).Run()
	return err
}

package detection

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shipscout/pkg/detector"
)

var (
	titleStyle        = lipgloss.NewStyle().Background(lipgloss.Color("#5AD4E6")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	focusedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#5AD4E6")).Bold(true)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	descriptionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	chainArrowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type model struct {
	detection detector.Detection
	confirmed bool
	quitting  bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "y", "Y", "enter":
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		case "n", "N", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Detection Results"))
	s.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#5AD4E6")).
		Padding(1, 2).
		Width(60)

	var content strings.Builder
	content.WriteString(focusedStyle.Render("Runtime: "))
	content.WriteString(selectedItemStyle.Render(m.detection.Runtime))
	content.WriteString("\n")

	content.WriteString(focusedStyle.Render("Stack: "))
	if len(m.detection.Frameworks) == 0 {
		content.WriteString(descriptionStyle.Render("runtime only"))
	} else {
		// most-specific framework first, arrows point toward the runtime
		content.WriteString(selectedItemStyle.Render(strings.Join(m.detection.Frameworks, chainArrowStyle.Render(" → "))))
	}
	content.WriteString("\n")

	if m.detection.PackageManager != "" {
		content.WriteString(focusedStyle.Render("Package manager: "))
		content.WriteString(descriptionStyle.Render(m.detection.PackageManager))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	writeCommand := func(label, cmd string) {
		if cmd == "" {
			return
		}
		content.WriteString(focusedStyle.Render(label))
		content.WriteString(descriptionStyle.Render(cmd))
		content.WriteString("\n")
	}
	writeCommand("Install: ", m.detection.InstallCommand)
	writeCommand("Build:   ", m.detection.BuildCommand)
	writeCommand("Dev:     ", m.detection.DevCommand)

	if len(m.detection.Vars) > 0 {
		content.WriteString("\n")
		content.WriteString(focusedStyle.Render("Variables:"))
		content.WriteString("\n")
		keys := make([]string, 0, len(m.detection.Vars))
		for k := range m.detection.Vars {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			content.WriteString(descriptionStyle.Render("  " + k + " = " + m.detection.Vars[k]))
			content.WriteString("\n")
		}
	}

	s.WriteString(box.Render(content.String()))
	s.WriteString("\n\n")

	s.WriteString(focusedStyle.Render("Save this detection for the project?"))
	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Press "))
	s.WriteString(focusedStyle.Render("y"))
	s.WriteString(helpStyle.Render(" to save, "))
	s.WriteString(focusedStyle.Render("n"))
	s.WriteString(helpStyle.Render(" to skip, or "))
	s.WriteString(focusedStyle.Render("q"))
	s.WriteString(helpStyle.Render(" to quit"))

	return s.String()
}

// ShowDetectionResults displays the detection result and asks whether to save
// it to the project config.
func ShowDetectionResults(d detector.Detection) (bool, error) {
	p := tea.NewProgram(model{detection: d}, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	final := finalModel.(model)
	return final.confirmed, nil
}

// ABOUTME: Lipgloss styles for the demo form, suggestion popup and status line
// ABOUTME: Plain 16/256-color codes; termfix already fixed the background query

package btea

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("8")).
			PaddingLeft(1)
	focusedFieldStyle = fieldStyle.BorderForeground(lipgloss.Color("4"))

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("5"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	armedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	cursorStyle = lipgloss.NewStyle().Reverse(true)
)

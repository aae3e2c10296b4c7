package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	columnFocusedStyle = columnStyle.
				BorderForeground(lipgloss.Color("62"))

	// columnDroppableStyle is the visual "droppable" marker: applied
	// while the column's drop target is hovering.
	columnDroppableStyle = columnStyle.
				BorderForeground(lipgloss.Color("42"))

	columnTitleStyle = lipgloss.NewStyle().
				Bold(true)

	itemStyle = lipgloss.NewStyle()

	itemSelectedStyle = lipgloss.NewStyle().
				Reverse(true)

	// itemDraggingStyle marks the record currently in flight.
	itemDraggingStyle = lipgloss.NewStyle().
				Faint(true).
				Italic(true)

	emptyColumnStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)

	statusLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	formStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	formLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)
)

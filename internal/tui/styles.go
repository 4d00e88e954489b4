package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	panelHeadingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	focusMarkerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	tabStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeTabStyle = tabStyle.Bold(true).Underline(true).Foreground(lipgloss.Color("12"))

	buttonStyle         = lipgloss.NewStyle().Padding(0, 1)
	selectedButtonStyle = buttonStyle.Background(lipgloss.Color("6")).Foreground(lipgloss.Color("0"))
	allButtonStyle      = buttonStyle.Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0"))
	outlinedButtonStyle = buttonStyle.Foreground(lipgloss.Color("2"))
	cursorStyle         = lipgloss.NewStyle().Reverse(true)

	headerCellStyle = lipgloss.NewStyle().Bold(true)
	idCellStyle     = lipgloss.NewStyle().Bold(true)
	maleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	femaleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	selectedRowMark = focusMarkerStyle.Render(">")
)

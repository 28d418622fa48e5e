// ABOUTME: Terminal palette and styles for tables and charts.
// ABOUTME: lipgloss drops colors automatically when output is not a terminal.
package report

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("#FF79C6")
	colorSecondary = lipgloss.Color("#8BE9FD")
	colorSuccess   = lipgloss.Color("#50FA7B")
	colorError     = lipgloss.Color("#FF5555")
	colorMuted     = lipgloss.Color("#6272A4")
	colorTeal      = lipgloss.Color("#4ECDC4")
	colorYellow    = lipgloss.Color("#FFD93D")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)
)

const (
	iconChart   = "📊"
	iconWeek    = "📅"
	iconRobot   = "🤖"
	iconBlocked = "🚧"
)

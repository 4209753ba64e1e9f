package ui

import (
	"github.com/charmbracelet/lipgloss"

	"labbot/domain/toggle"
)

const (
	openBannerText   = "The Lab is\n  OPEN :)"
	closedBannerText = "The Lab is\nCLOSED :("
)

var (
	openBannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10")).
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(1, 6)

	closedBannerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("9")).
				BorderStyle(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("9")).
				Padding(1, 6)

	failureStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	helpStyle = lipgloss.NewStyle().
			Faint(true)
)

// Banner renders the large state banner for the current toggle state.
func Banner(state toggle.State) string {
	if state == toggle.Open {
		return openBannerStyle.Render(openBannerText)
	}
	return closedBannerStyle.Render(closedBannerText)
}

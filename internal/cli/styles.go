package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"})
	cliBorder  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
)

// kvPair is a label/value line inside a summary card.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders aligned key/value lines.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, fmt.Sprintf("%s  %s",
			cliMuted.Render(fmt.Sprintf("%-*s", width, p.key)), p.value))
	}
	return strings.Join(lines, "\n")
}

// renderSuccessCard renders a bordered card with a success title and
// optional detail blocks.
func renderSuccessCard(title string, details ...string) string {
	body := cliSuccess.Render("✓ ") + lipgloss.NewStyle().Bold(true).Render(title)
	for _, d := range details {
		if d != "" {
			body += "\n\n" + d
		}
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder).
		Padding(0, 2).
		Render(body)
}

// renderNextSteps renders the numbered next-step command list.
func renderNextSteps(steps []string) string {
	var b strings.Builder
	b.WriteString(cliPrimary.Render("Next steps:"))
	for i, s := range steps {
		b.WriteString(fmt.Sprintf("\n  %s %s", cliMuted.Render(fmt.Sprintf("%d.", i+1)), s))
	}
	return b.String()
}

// PrintBanner prints the tool banner shown before the wizard.
func PrintBanner(version string) {
	banner := cliPrimary.Bold(true).Render("create-node") + " " + cliMuted.Render(version)
	fmt.Println(banner)
	fmt.Println(cliMuted.Render("Scaffold an Express project in seconds."))
	fmt.Println()
}

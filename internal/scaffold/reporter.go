package scaffold

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter receives step-by-step progress during generation.
type Reporter interface {
	Step(format string, args ...any)
	Warn(format string, args ...any)
}

var (
	stepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
)

// consoleReporter prints colorized step-by-step progress.
type consoleReporter struct {
	w io.Writer
}

// NewConsoleReporter creates a Reporter that writes styled progress lines.
func NewConsoleReporter(w io.Writer) Reporter {
	return &consoleReporter{w: w}
}

func (r *consoleReporter) Step(format string, args ...any) {
	_, _ = fmt.Fprintln(r.w, stepStyle.Render("✓")+" "+fmt.Sprintf(format, args...))
}

func (r *consoleReporter) Warn(format string, args ...any) {
	_, _ = fmt.Fprintln(r.w, warnStyle.Render("Warning: "+fmt.Sprintf(format, args...)))
}

// quietReporter suppresses step output but still surfaces warnings.
type quietReporter struct {
	w io.Writer
}

// NewQuietReporter creates a Reporter that discards step output entirely.
func NewQuietReporter() Reporter {
	return &quietReporter{w: io.Discard}
}

// NewWarnOnlyReporter creates a Reporter that prints warnings but no steps.
func NewWarnOnlyReporter(w io.Writer) Reporter {
	return &quietReporter{w: w}
}

func (r *quietReporter) Step(string, ...any) {}

func (r *quietReporter) Warn(format string, args ...any) {
	_, _ = fmt.Fprintln(r.w, "Warning: "+fmt.Sprintf(format, args...))
}

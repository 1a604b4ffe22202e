package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, classroom-friendly
var (
	Primary = lipgloss.Color("#6366F1") // Indigo
	Success = lipgloss.Color("#22C55E") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Pass = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Fail = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Highlight = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)
)

// Card frames report output.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 2)

// levelStyles maps mastery levels to their display color.
var levelStyles = map[string]lipgloss.Style{
	"mastered":   lipgloss.NewStyle().Foreground(Success).Bold(true),
	"practicing": lipgloss.NewStyle().Foreground(Primary),
	"learning":   lipgloss.NewStyle().Foreground(Warning),
	"struggling": lipgloss.NewStyle().Foreground(Error),
}

// Level renders a mastery level in its color.
func Level(level string) string {
	if s, ok := levelStyles[level]; ok {
		return s.Render(level)
	}
	return level
}

// Trend renders a confidence trend with a direction marker.
func Trend(trend string) string {
	switch trend {
	case "improving":
		return Pass.Render("↑ improving")
	case "declining":
		return Fail.Render("↓ declining")
	default:
		return Hint.Render("→ stable")
	}
}

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the UI.
type Theme struct {
	Name string

	Surface       string
	SelectionBg   string
	SelectionText string
	Border        string
	BorderFocus   string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		FocusedPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Surface)).
			Padding(0, 1).
			Bold(true),

		theme: t,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header      lipgloss.Style
	Logo        lipgloss.Style
	Selected    lipgloss.Style
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style
	Badge       lipgloss.Style

	theme Theme
}

// StateBadge returns the badge style for a UI state label.
func (s Styles) StateBadge(label string) lipgloss.Style {
	color := s.theme.Muted
	switch label {
	case "loading":
		color = s.theme.Warning
	case "ready":
		color = s.theme.Success
	case "error":
		color = s.theme.Danger
	}
	return s.Badge.Background(lipgloss.Color(color))
}

// LevelStyle colours a log level the way the log pane shows it.
func (s Styles) LevelStyle(level string) lipgloss.Style {
	switch level {
	case "panic", "fatal", "error":
		return s.DangerText
	case "warn", "warning":
		return s.WarningText
	case "info":
		return s.InfoText
	default:
		return s.FaintText
	}
}

var themes = map[string]Theme{
	"Marsh": marshTheme(),
	"Pond":  pondTheme(),
	"Dusk":  duskTheme(),
}

var themeOrder = []string{"Marsh", "Pond", "Dusk"}

// GetTheme returns the named theme, falling back to the default.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return defaultTheme()
}

// NextTheme returns the theme after current in cycle order.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	out := make([]string, len(themeOrder))
	copy(out, themeOrder)
	return out
}

func defaultTheme() Theme {
	return marshTheme()
}

func marshTheme() Theme {
	return Theme{
		Name:          "Marsh",
		Surface:       "#1B2420",
		SelectionBg:   "#2F4A3A",
		SelectionText: "#E6F2E9",
		Border:        "#3B4D43",
		BorderFocus:   "#7BC47F",
		Text:          "#D8E4DC",
		Muted:         "#8FA397",
		Faint:         "#5E7066",
		Accent:        "#A3D977",
		Success:       "#7BC47F",
		Warning:       "#E8C468",
		Danger:        "#E06C75",
		Info:          "#6FB7C9",
	}
}

func pondTheme() Theme {
	return Theme{
		Name:          "Pond",
		Surface:       "#16202B",
		SelectionBg:   "#24405A",
		SelectionText: "#E3EEF8",
		Border:        "#34495E",
		BorderFocus:   "#5DADE2",
		Text:          "#D6E2EE",
		Muted:         "#8A9BAD",
		Faint:         "#5B6B7C",
		Accent:        "#5DADE2",
		Success:       "#58D68D",
		Warning:       "#F5B041",
		Danger:        "#EC7063",
		Info:          "#85C1E9",
	}
}

func duskTheme() Theme {
	return Theme{
		Name:          "Dusk",
		Surface:       "#211B2B",
		SelectionBg:   "#3E3153",
		SelectionText: "#F1EAF9",
		Border:        "#4A3F5C",
		BorderFocus:   "#BD93F9",
		Text:          "#E4DDEE",
		Muted:         "#9E92AE",
		Faint:         "#6C6179",
		Accent:        "#BD93F9",
		Success:       "#50FA7B",
		Warning:       "#F1FA8C",
		Danger:        "#FF5555",
		Info:          "#8BE9FD",
	}
}

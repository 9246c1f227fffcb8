package output

import "github.com/charmbracelet/lipgloss"

// Color palette for the CLI. These are the single source of truth; never
// use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: mod ids, paths, class names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for descriptions and structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Styles groups the semantic styles used when rendering generation output.
type Styles struct {
	// Bold styles the root directory line of the file tree.
	Bold lipgloss.Style

	// Muted styles per-file descriptions and separators.
	Muted lipgloss.Style

	// Noun styles identifiable nouns (mod id, main class, target path).
	Noun lipgloss.Style
}

// GetStyles returns the semantic style set.
func GetStyles() Styles {
	return Styles{
		Bold:  lipgloss.NewStyle().Bold(true),
		Muted: lipgloss.NewStyle().Foreground(ColorDimGray),
		Noun:  lipgloss.NewStyle().Foreground(ColorCyan),
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

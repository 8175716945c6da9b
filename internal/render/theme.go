package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/workplan/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StreamStyle colors text with a workstream's own sheet color.
func StreamStyle(ws domain.Workstream) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ws.Color))
}

// ConfidenceDot returns the colored dot drawn next to open tasks that
// carry a confidence level; completed and parked tasks never get one.
func ConfidenceDot(c domain.Confidence) string {
	switch c {
	case domain.ConfidenceHigh:
		return StyleGreen.Render("●")
	case domain.ConfidenceMedium:
		return StyleYellow.Render("●")
	case domain.ConfidenceLow:
		return StyleRed.Render("●")
	default:
		return ""
	}
}

// PriorityBadge renders a priority label, top tiers warm, low tiers dim.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityP1:
		return StyleRed.Render("[P1]")
	case domain.PriorityP2:
		return StyleYellow.Render("[P2]")
	case domain.PriorityP3:
		return StyleBlue.Render("[P3]")
	default:
		return StyleDim.Render(fmt.Sprintf("[%s]", string(p)))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/workplan/internal/render"
)

// workplanHuhTheme styles huh forms to match the chart palette.
func workplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(render.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(render.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(render.ColorFg).Background(render.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(render.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(render.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(render.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(render.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(render.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(render.ColorDim)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(render.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(render.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(render.ColorDim)

	return t
}

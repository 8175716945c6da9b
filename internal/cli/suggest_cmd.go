package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/workplan/internal/render"
)

func newSuggestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "List blocked, overdue and reallocatable work",
		RunE:  runRender(app, render.Suggestions),
	}
}

package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse the plan in an interactive viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("view needs an interactive terminal; try report instead")
			}
			d, err := loadData(cmd, app)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newViewerModel(d), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

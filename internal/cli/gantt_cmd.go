package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/workplan/internal/render"
)

func newGanttCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "gantt",
		Short: "Draw the task schedule as per-stream timelines",
		RunE: runRender(app, func(d *render.Data) string {
			if plainOutput() {
				return render.TasksTable(d)
			}
			return render.Gantt(d)
		}),
	}
}

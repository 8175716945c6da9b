package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/workplan/internal/render"
)

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Executive summary: capacity, priorities and every warning",
		RunE: runRender(app, func(d *render.Data) string {
			if plainOutput() {
				return render.TasksTable(d) + "\n" + render.WeeklyTable(d)
			}
			return render.Summary(d)
		}),
	}
}

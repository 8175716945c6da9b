package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/workplan/internal/render"
)

func newRoadmapCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "roadmap",
		Short: "Draw one bar per workstream spanning its tasks",
		RunE: runRender(app, func(d *render.Data) string {
			if plainOutput() {
				return render.RoadmapTable(d)
			}
			return render.Roadmap(d)
		}),
	}
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/workplan/internal/render"
)

func newReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Full report: summary, schedule, weekly load and suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadData(cmd, app)
			if err != nil {
				return err
			}

			var sections []string
			if plainOutput() {
				sections = []string{
					render.TasksTable(d),
					render.WeeklyTable(d),
					render.RoadmapTable(d),
				}
			} else {
				sections = []string{
					render.Summary(d),
					render.Header("Schedule") + "\n" + render.Gantt(d),
					render.Header("Weekly load") + "\n" + render.WeeklyChart(d),
					render.Header("Suggestions") + "\n" + render.Suggestions(d),
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), strings.Join(sections, "\n"))
			return nil
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/workplan/internal/render"
)

func newWeeklyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "weekly",
		Short: "Compare each person's booked days against availability per week",
		RunE: runRender(app, func(d *render.Data) string {
			if plainOutput() {
				return render.WeeklyTable(d)
			}
			return render.WeeklyChart(d)
		}),
	}
}

func newMonthlyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "monthly",
		Short: "Compare each person's booked days against availability per month",
		RunE: runRender(app, func(d *render.Data) string {
			if plainOutput() {
				return render.MonthlyTable(d)
			}
			return render.MonthlyChart(d)
		}),
	}
}

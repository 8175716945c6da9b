package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexanderramin/workplan/internal/render"
	"github.com/alexanderramin/workplan/internal/validate"
	"github.com/alexanderramin/workplan/internal/workbook"
)

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the workbook and report every problem",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString("input")
			rows, err := workbook.Read(path)
			if err != nil {
				return err
			}

			plan, report := validate.Check(rows)
			out := cmd.OutOrStdout()
			printReport(out, report)
			if !report.OK() {
				return fmt.Errorf("%s failed validation with %d errors", path, len(report.Errors))
			}

			fmt.Fprintf(out, "%s %s is valid: %d team members, %d workstreams, %d tasks\n",
				render.StyleGreen.Render("✔"), path,
				len(plan.Team), len(plan.Streams), len(plan.Tasks))
			return nil
		},
	}
}

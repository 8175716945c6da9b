package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexanderramin/workplan/internal/render"
	"github.com/alexanderramin/workplan/internal/validate"
	"github.com/alexanderramin/workplan/internal/workbook"
)

// loadData runs the pipeline behind every reporting command: read the
// workbook, validate it, and derive schedules, capacity and findings for
// the requested window. Validation problems go to stderr; any error
// aborts before scheduling, warnings do not.
func loadData(cmd *cobra.Command, app *App) (*render.Data, error) {
	path := viper.GetString("input")
	rows, err := workbook.Read(path)
	if err != nil {
		return nil, err
	}

	plan, report := validate.Check(rows)
	printReport(cmd.ErrOrStderr(), report)
	if !report.OK() {
		return nil, fmt.Errorf("%s failed validation with %d errors", path, len(report.Errors))
	}

	from, err := windowFlag("from")
	if err != nil {
		return nil, err
	}
	to, err := windowFlag("to")
	if err != nil {
		return nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, fmt.Errorf("--to %s is before --from %s",
			workbook.FormatDate(*to), workbook.FormatDate(*from))
	}

	return render.New(plan, from, to, app.now()), nil
}

// windowFlag parses an optional window bound.
func windowFlag(name string) (*time.Time, error) {
	raw := viper.GetString(name)
	if raw == "" {
		return nil, nil
	}
	t, err := workbook.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s date %q, expected YYYY-MM-DD", name, raw)
	}
	return &t, nil
}

// printReport writes validation problems, errors first.
func printReport(w io.Writer, report *validate.Report) {
	for _, msg := range report.Errors {
		fmt.Fprintln(w, render.StyleRed.Render("✗ "+msg))
	}
	for _, msg := range report.Warnings {
		fmt.Fprintln(w, render.StyleYellow.Render("⚠ "+msg))
	}
}

// plainOutput reports whether tables should replace the styled charts.
func plainOutput() bool { return viper.GetBool("plain") }

// runRender wraps the load pipeline around a single renderer.
func runRender(app *App, draw func(*render.Data) string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		d, err := loadData(cmd, app)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), draw(d))
		return nil
	}
}

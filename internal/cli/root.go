// Package cli wires the workplan commands: every reporting command runs
// the same pipeline, workbook in, validation, scheduling, one rendered
// view out.
package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// App holds the process-level dependencies commands read; tests pin both.
type App struct {
	// Now returns the date "today" resolves to in schedules and findings.
	Now func() time.Time

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	if a.IsInteractive != nil {
		return a.IsInteractive()
	}
	return false
}

// NewRootCmd creates the top-level "workplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "workplan",
		Short: "Team capacity planner over a shared workbook",
		Long: `Workplan reads a planning workbook (team, workstreams, tasks,
holidays, leave), schedules every task across working days, and renders
schedules, capacity charts and suggestions for the terminal.`,
	}

	bindPersistentFlags(root.PersistentFlags())

	viper.SetEnvPrefix("WORKPLAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// An optional workplan.yaml in the working directory supplies
	// defaults; a missing file is not an error.
	viper.SetConfigName("workplan")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()

	root.AddCommand(
		newReportCmd(app),
		newGanttCmd(app),
		newWeeklyCmd(app),
		newMonthlyCmd(app),
		newRoadmapCmd(app),
		newSummaryCmd(app),
		newSuggestCmd(app),
		newValidateCmd(app),
		newInitCmd(app),
		newViewCmd(app),
	)

	return root
}

// bindPersistentFlags declares the flags every command shares and binds
// them into viper, so config file and WORKPLAN_* env values act as
// defaults with flags overriding.
func bindPersistentFlags(fs *pflag.FlagSet) {
	fs.StringP("input", "i", "workplan.db", "workbook path")
	fs.String("from", "", "only show tasks ending on or after this date (YYYY-MM-DD)")
	fs.String("to", "", "only show tasks starting on or before this date (YYYY-MM-DD)")
	fs.Bool("plain", false, "tables instead of charts, no styling")

	for _, name := range []string{"input", "from", "to", "plain"} {
		_ = viper.BindPFlag(name, fs.Lookup(name))
	}
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexanderramin/workplan/internal/workbook"
)

func newInitCmd(app *App) *cobra.Command {
	var force, interactive bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter workbook",
		Long: `Writes a new workbook at the --input path. By default it contains an
example plan that renders a full report straight away; with --interactive
a short form collects your own roster and workstreams instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString("input")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, pass --force to overwrite it", path)
			}

			rows := workbook.Template()
			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive needs a terminal")
				}
				var err error
				rows, err = runSetupWizard()
				if err != nil {
					return err
				}
			}

			if err := workbook.Write(path, rows); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s: %d team members, %d workstreams, %d tasks\n",
				path, len(rows.Team), len(rows.Streams), len(rows.Tasks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing workbook")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "collect the roster and workstreams in a guided form")

	return cmd
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/timestables/internal/drill"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Play one game on plain stdin/stdout",
	Long:  "drill asks each question on its own line and reads one answer per line. It works with pipes and scripts.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		return drill.New(rt.session, cmd.InOrStdin(), cmd.OutOrStdout(), rt.logger).Run()
	},
}

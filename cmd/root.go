package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/timestables/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "timestables",
	Short: "Multiplication table quiz",
	Long:  "timestables drills multiplication facts in the terminal. Pick a table limit and a question amount, then answer.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SilenceUsage = true

	def := session.DefaultConfiguration()

	pf := rootCmd.PersistentFlags()
	pf.Int("max-factor", def.MaxFactor, "Largest table to practise (2-12)")
	pf.Int("questions", int(def.QuestionCount), "Questions per game (1, 5, 10 or 20)")
	pf.Uint64("seed", 0, "Seed for a reproducible question sequence (0 = random)")
	pf.String("log-file", "", "Write diagnostic logs to this file")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text or json")
	pf.String("config", "", "Path to a TOML config file (default $XDG_CONFIG_HOME/timestables/config.toml)")

	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(versionCmd)
}

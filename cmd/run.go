package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/timestables/internal/app"
	"github.com/abhisek/timestables/internal/config"
	"github.com/abhisek/timestables/internal/logging"
	"github.com/abhisek/timestables/internal/session"
)

// runtime bundles what every command needs: a configured session and a logger.
type runtime struct {
	session *session.Session
	logger  *slog.Logger
	close   func() error
}

// newRuntime resolves configuration, opens the log file and builds a session.
func newRuntime(cmd *cobra.Command) (*runtime, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cmd.Flags(), configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	sessCfg, err := cfg.Session()
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger = logger.With("command", cmd.Name())
	logger.Debug("configuration loaded",
		"max_factor", sessCfg.MaxFactor,
		"question_count", int(sessCfg.QuestionCount),
		"seeded", cfg.Seed != 0)

	sess := session.New(cfg.Generator(),
		session.WithConfiguration(sessCfg),
		session.WithLogger(logger))

	return &runtime{session: sess, logger: logger, close: closeLog}, nil
}

// runApp launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	return app.Run(cmd.Context(), app.Options{
		Session: rt.session,
		Logger:  rt.logger,
	})
}

// Package cmd wires configuration, logging and storage into the terminal
// clock and its subcommands.
package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"clock_tui/internal"
	"clock_tui/internal/archive"
	"clock_tui/internal/config"
	"clock_tui/internal/logging"
	"clock_tui/internal/widget"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "clock_tui",
		Short:         "Analog clock and lap stopwatch for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default ~/.config/clock_tui/config.toml)")
	flags.String("db", "", "session archive database path")
	flags.Bool("no-archive", false, "do not archive lap sessions")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-file", "", "write logs to this file")
	root.Flags().String("mode", "", "start in clock or stopwatch mode")

	root.AddCommand(newHistoryCmd())
	return root
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	startMode, _ := widget.ParseMode(cfg.UI.StartMode)
	opts := internal.Options{
		Logger:    logger,
		StartMode: startMode,
		LapRows:   cfg.UI.LapRows,
	}

	if cfg.Database.Archive {
		repo, err := archive.NewRepository(cfg.Database.Path)
		if err != nil {
			return errors.Wrap(err, "failed to open session archive")
		}
		defer repo.Close()
		opts.Store = repo
	}

	m := internal.NewModel(opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	m.Attach(p.Send)

	logger.Info("starting", "mode", startMode, "archive", cfg.Database.Archive)
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "error running program")
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/librescoot/dubstep"
	"github.com/librescoot/dubstep/internal/tui"
	"github.com/urfave/cli/v3"
)

func newPlayCmd() *cli.Command {
	return &cli.Command{
		Name:   "play",
		Usage:  "Run the interactive step player",
		Flags:  settingsFlags(),
		Action: playAction,
	}
}

func playAction(ctx context.Context, cmd *cli.Command) error {
	f, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger := slog.Default()
	model, err := tui.New(f.Controller(loggingHooks(logger)), f.Title, dubstep.WithLogger(logger))
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		model.Controller().Teardown()
		return fmt.Errorf("player failed: %w", err)
	}
	return nil
}

// loggingHooks reports every transition and playback change at debug level
func loggingHooks(logger *slog.Logger) dubstep.Hooks {
	return dubstep.Hooks{
		OnNext:         func() { logger.Debug("next") },
		OnPrevious:     func() { logger.Debug("previous") },
		OnPlay:         func() { logger.Debug("play") },
		OnPause:        func() { logger.Debug("pause") },
		OnBeforeChange: func(step int) { logger.Debug("before change", "step", step) },
		OnChange:       func(step int) { logger.Debug("change", "step", step) },
		OnAfterChange:  func(step int) { logger.Debug("after change", "step", step) },
	}
}

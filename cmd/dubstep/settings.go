package main

import (
	"fmt"

	"github.com/librescoot/dubstep/internal/config"
	"github.com/urfave/cli/v3"
)

// settingsFlags override values from the config file and environment
func settingsFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a TOML configuration file",
			Sources: cli.EnvVars("DUBSTEP_CONFIG"),
		},
		&cli.IntFlag{
			Name:  "total",
			Usage: "Number of steps",
		},
		&cli.BoolFlag{
			Name:  "cycle",
			Usage: "Wrap around at both ends (requires --total or slides)",
		},
		&cli.DurationFlag{
			Name:    "duration",
			Aliases: []string{"d"},
			Usage:   "Interval between automatic advances",
		},
		&cli.BoolFlag{
			Name:  "autoplay",
			Usage: "Start advancing immediately (requires --duration)",
		},
		&cli.DurationFlag{
			Name:  "animation-speed",
			Usage: "How long the transition indicator stays visible",
		},
	}
}

// loadSettings merges, in increasing priority: config file (or nothing),
// DUBSTEP_* environment variables, then flags
func loadSettings(cmd *cli.Command) (*config.File, error) {
	var (
		f   *config.File
		err error
	)
	if path := cmd.String("config"); path != "" {
		f, err = config.Load(path)
	} else {
		f, err = config.FromEnv()
	}
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("total") {
		f.Total = int(cmd.Int("total"))
	}
	if cmd.IsSet("cycle") {
		f.Cycle = cmd.Bool("cycle")
	}
	if cmd.IsSet("duration") {
		f.Duration = config.Duration(cmd.Duration("duration"))
	}
	if cmd.IsSet("autoplay") {
		f.AutoPlay = cmd.Bool("autoplay")
	}
	if cmd.IsSet("animation-speed") {
		f.AnimationSpeed = config.Duration(cmd.Duration("animation-speed"))
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return f, nil
}

package main

import (
	"context"
	"fmt"

	"github.com/librescoot/dubstep/internal/config"
	"github.com/urfave/cli/v3"
)

func newValidateCmd() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"lint"},
		Usage:   "Validate a configuration file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the configuration file",
			},
		},
		Action: validateAction,
	}
}

func validateAction(_ context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		if cmd.Args().Len() < 1 {
			return fmt.Errorf(
				"config file path required (use the --config flag, or provide the config file as positional argument)",
			)
		}
		configPath = cmd.Args().Get(0)
	}

	f, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := cmd.Root().Writer
	fmt.Fprintf(out, "Configuration file %s is valid\n\n", configPath)
	fmt.Fprintln(out, f)
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/librescoot/dubstep/internal/logging"
	"github.com/urfave/cli/v3"
)

// Version is set during build using ldflags
var Version = "dev"

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "dubstep",
		Version: Version,
		Usage:   "Step through a sequence in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("DUBSTEP_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format (text, json)",
				Value:   logging.FormatText,
				Sources: cli.EnvVars("DUBSTEP_LOG_FORMAT"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetupLogger(cmd.String("log-format"), cmd.String("log-level"), cmd.Root().ErrWriter)
			return ctx, nil
		},
		Commands: []*cli.Command{
			newPlayCmd(),
			newValidateCmd(),
			{
				Name:  "version",
				Usage: "Print the version information",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Fprintf(cmd.Root().Writer, "dubstep version %s\n", cmd.Root().Version)
					return nil
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yzhelezko/thermwin/internal/config"
	"github.com/yzhelezko/thermwin/internal/logging"
)

const (
	AppName  = "thermwin"
	AppTitle = "Thermwin"
)

// NewCli builds the command line interface
func NewCli() *cli.App {
	return &cli.App{
		Name:   AppName,
		Usage:  "terminal emulator window",
		Action: CmdMain,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Use a different config file",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:    "fullscreen",
				Aliases: []string{"f"},
				Usage:   "Make the window fill the screen",
			},
			&cli.BoolFlag{
				Name:    "maximise",
				Aliases: []string{"m"},
				Usage:   "Open the window maximised",
			},
			&cli.BoolFlag{
				Name:    "borderless",
				Aliases: []string{"b"},
				Usage:   "Turn off the window's borders",
			},
			&cli.BoolFlag{
				Name:    "hidden",
				Aliases: []string{"H"},
				Usage:   "Open the window hidden",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "Print version information",
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, GetVersionInfo())
					return nil
				},
			},
		},
	}
}

// CmdMain loads the configuration and runs the window until it is closed
func CmdMain(c *cli.Context) error {
	log := logging.New(logging.Options{Debug: c.Bool("debug")})

	path := c.String("config")
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	manager := config.NewManager(path, log)
	cfg, err := manager.Load()
	if err != nil {
		return err
	}
	applyOverrides(c, cfg)

	log.WithField("version", GetVersionInfo().Version).Info("Starting " + AppTitle)
	return NewApp(log, manager).Run(cfg)
}

// applyOverrides copies command line switches over the file values. Flags
// that were not given leave the file value alone.
func applyOverrides(c *cli.Context, cfg *config.Config) {
	if c.IsSet("fullscreen") {
		cfg.Fullscreen = c.Bool("fullscreen")
	}
	if c.IsSet("maximise") {
		cfg.Maximised = c.Bool("maximise")
	}
	if c.IsSet("borderless") {
		cfg.Borderless = c.Bool("borderless")
	}
	if c.IsSet("hidden") {
		cfg.Hidden = c.Bool("hidden")
	}
}

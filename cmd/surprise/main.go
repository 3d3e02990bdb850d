package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/surprise/internal/cli"
	"github.com/julianstephens/surprise/internal/config"
	"github.com/julianstephens/surprise/internal/constants"
	"github.com/julianstephens/surprise/internal/errors"
	"github.com/julianstephens/surprise/internal/logger"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string   `help:"Config file path." type:"path"`
	Content  string   `help:"Content file with the quiz, gifts and letter." type:"path"`
	Debug    bool     `help:"Enable debug logging."`
	Volume   *float64 `help:"Melody volume between 0 and 1."`
	Mute     bool     `help:"Never play the melody."`
	Autoplay bool     `help:"Start the melody without waiting for a key press."`
	Strict   bool     `help:"Reject out-of-order stage transitions."`

	Play   cli.PlayCmd   `cmd:"" help:"Run the greeting." default:"1"`
	Melody cli.MelodyCmd `cmd:"" help:"Print the melody timeline."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("An animated birthday greeting for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:       CLI.Debug,
		ConfigDir:   config.ExpandHome(constants.DefaultConfigDir),
		Interactive: ctx.Command() == "play",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(errors.Wrap(errors.KindConfig, "load config", err))
	}
	cfg.Apply(config.Overrides{
		Content:  CLI.Content,
		Volume:   CLI.Volume,
		Mute:     CLI.Mute,
		Autoplay: CLI.Autoplay,
		Strict:   CLI.Strict,
	})
	// doctor reports invalid values itself.
	if ctx.Command() != "doctor" {
		if err := cfg.Validate(); err != nil {
			errors.Fatal(errors.Wrap(errors.KindConfig, "validate config", err))
		}
	}
	logger.Debug("Configuration loaded", "file", cfg.File, "target", cfg.Target, "strict", cfg.StrictTransitions)

	errors.Fatal(ctx.Run(cli.NewContext(cfg)))
	_ = logger.Close()
}

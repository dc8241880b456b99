// Package utils holds the flags and helpers shared by commands.
package utils

import (
	"github.com/urfave/cli/v2"

	"github.com/Lantah/go-lantah-base/log"
	"github.com/Lantah/go-lantah-base/params"
)

var (
	// ConfigFileFlag --config
	ConfigFileFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Specify config file",
	}
	// VerbosityFlag --verbosity
	VerbosityFlag = &cli.Uint64Flag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log verbosity (0:panic, 1:fatal, 2:error, 3:warn, 4:info, 5:debug, 6:trace)",
		Value:   3,
	}
	// JSONFormatFlag --json
	JSONFormatFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output log in json format",
	}
	// ColorFormatFlag --color
	ColorFormatFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "output log in color text format",
	}
	// TypeFlag --type
	TypeFlag = &cli.StringFlag{
		Name:    "type",
		Aliases: []string{"t"},
		Usage:   "integer type (i64, u64, i128, u128, i256, u256)",
	}
	// OutputFlag --output
	OutputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format (json, text), overrides the config file",
	}
)

// SetLogger sets the logger from the verbosity and format flags.
func SetLogger(ctx *cli.Context) {
	logLevel := ctx.Uint64(VerbosityFlag.Name)
	jsonFormat := ctx.Bool(JSONFormatFlag.Name)
	colorFormat := ctx.Bool(ColorFormatFlag.Name)
	log.SetLogger(uint32(logLevel), jsonFormat, colorFormat)
	log.SetOutput(ctx.App.ErrWriter)
}

// GetConfigFilePath returns the --config value.
func GetConfigFilePath(ctx *cli.Context) string {
	return ctx.String(ConfigFileFlag.Name)
}

// LoadConfig loads the --config file, if any, and makes it current.
// Without a file the defaults are used.
func LoadConfig(ctx *cli.Context) error {
	config := params.DefaultConfig()

	if path := GetConfigFilePath(ctx); path != "" {
		var err error
		config, err = params.LoadConfig(path)
		if err != nil {
			return err
		}

		log.Info("loaded config", "file", path, "output", config.Output, "scale", config.Scale)
	}

	params.SetConfig(config)

	return nil
}

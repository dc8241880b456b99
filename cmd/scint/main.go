// Command scint converts integers to and from their ScVal XDR form.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Lantah/go-lantah-base/cmd/utils"
)

var (
	clientIdentifier = "scint"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
)

func newApp() *cli.App {
	app := utils.NewApp(clientIdentifier, gitCommit, gitDate, "smart contract integer tool")
	app.Name = clientIdentifier
	app.HideVersion = true // we have a command to print the version
	app.Before = func(ctx *cli.Context) error {
		utils.SetLogger(ctx)
		return utils.LoadConfig(ctx)
	}
	app.Commands = []*cli.Command{
		inferCommand,
		encodeCommand,
		decodeCommand,
		utils.VersionCommand,
	}
	app.Flags = []cli.Flag{
		utils.ConfigFileFlag,
		utils.VerbosityFlag,
		utils.JSONFormatFlag,
		utils.ColorFormatFlag,
		utils.OutputFlag,
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

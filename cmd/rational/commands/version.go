package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v2"
)

// NewVersionCommand returns a cli.Command for "rational version".
func NewVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Shows the rational CLI version",
		Action: func(c *cli.Context) error {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				_, err := fmt.Fprintln(c.App.Writer, "rational version not available")
				return err
			}

			version := info.Main.Version
			if version == "" {
				version = "(devel)"
			}

			_, err := fmt.Fprintf(c.App.Writer, "rational %v %v\n", version, info.GoVersion)
			return err
		},
	}
}

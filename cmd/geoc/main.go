// Command geoc constructs circles and spheres with exact arithmetic.
package main

import (
	"os"

	"github.com/katalvlaran/lvgeo/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}

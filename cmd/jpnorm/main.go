// jpnorm is a command line front end to the jpnorm package.
package main

import (
	"log/slog"
	"os"

	"github.com/scalecode-solutions/jpnorm/cmd/jpnorm/command"
)

func main() {
	if err := command.NewRoot().Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

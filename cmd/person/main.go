package main

import (
	"os"

	"github.com/eli-rousseau/person/internal/cli"
)

func main() {
	err := cli.Execute(cli.NewRootCommand())
	os.Exit(cli.GetExitCode(err))
}

package main

import (
	"os"

	"github.com/signalnine/benchwrap/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}

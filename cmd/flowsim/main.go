package main

import (
	"os"

	"github.com/rustyeddy/flowsim/cmd/flowsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

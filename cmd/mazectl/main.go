package main

import (
	"os"

	"github.com/beka-birhanu/wallmaze/cmd/mazectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

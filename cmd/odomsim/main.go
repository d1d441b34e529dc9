package main

import (
	"os"

	"github.com/zeusync/motion/cmd/odomsim/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

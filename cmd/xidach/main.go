package main

import (
	"os"

	"xidach-server/cmd/xidach/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

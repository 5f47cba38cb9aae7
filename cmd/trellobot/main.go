package main

import (
	"os"

	"github.com/potatoworkshop/trellobot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

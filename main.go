package main

import (
	"os"

	"github.com/kaplat/book-server/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

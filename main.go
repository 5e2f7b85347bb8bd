package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), NewRootCmd()); err != nil {
		os.Exit(1)
	}
}

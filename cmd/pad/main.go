package main

import (
	"flag"
	"fmt"
	"os"

	"pad/internal/di"
	"pad/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "c", "config.yaml", "path to the yaml config file")
	flag.BoolVar(&flags.DebugMode, "d", false, "enable debug mode")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "pad: %s\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/mmynk/tipcalc/internal/cli"
	"github.com/mmynk/tipcalc/pkg/logging"
)

func main() {
	logging.Setup()

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tipcalc:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/notemill/notemill/internal/adapters/driving/cli"
)

// version is injected at build time via
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

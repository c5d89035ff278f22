// Command smokifit is a console fitness companion: exercise and
// nutrition search with paged browsing, nutrition advice, and a daily
// calorie tracker.
package main

import (
	"fmt"
	"os"

	"github.com/smokifit/smokifit/internal/cli"
	"github.com/smokifit/smokifit/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}

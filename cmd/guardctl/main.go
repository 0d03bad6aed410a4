// guardctl inspects the guard violation taxonomy and check configuration.
//
// Usage:
//
//	guardctl kinds [--lang ja] [--json]
//	guardctl config [--file guard.yaml]
package main

import (
	"fmt"
	"os"

	"github.com/reoring/guard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

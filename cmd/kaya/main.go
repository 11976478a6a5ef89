package main

import (
	"os"

	"github.com/kayatools/kayadata/internal/cli"
	"github.com/kayatools/kayadata/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the result to a process exit code.
// Cobra prints the error itself, so this only translates failure to a
// non-zero exit.
func run() int {
	if err := cli.NewRootCmd(version.GetVersion()).Execute(); err != nil {
		return 1
	}
	return 0
}

// Command lazyk runs a Lazy K source file against stdin/stdout.
package main

import (
	"os"

	"github.com/vic/lazyk/internal/cli"
)

func main() {
	root := cli.NewRootCommand()
	if err := root.Execute(); err != nil {
		cli.Fail("%s", err)
	}
	os.Exit(0)
}

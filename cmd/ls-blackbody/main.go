// Command ls-blackbody is a terminal explorer for blackbody radiation.
package main

import (
	"os"

	"github.com/litescript/ls-blackbody/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

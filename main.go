// main is the entry point for the steelrank CLI.
package main

import (
	"github.com/oreforge/steelrank/cmd"
	"github.com/oreforge/steelrank/internal"
)

func main() {
	if err := cmd.Execute(); err != nil {
		internal.LogFatal("Cannot execute command", err)
	}
}

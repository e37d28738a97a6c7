// Package main is the entry point for the floatingclock desktop overlay.
package main

import (
	"os"

	"floatingclock/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main is the entry point for the watch-price-tracker server.
package main

import (
	"os"

	"github.com/donaldgifford/watch-price-tracker/cmd/watch-price-tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

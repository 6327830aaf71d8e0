// Package main is the entry point for the wpt CLI client.
package main

import (
	"github.com/donaldgifford/watch-price-tracker/cmd/wpt/cmd"
)

func main() {
	cmd.Execute()
}

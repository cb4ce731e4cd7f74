// Command reelcarbon is the production carbon calculator: it converts
// activity entries (fuel, travel, utilities, hotels, charter flights) into
// kg CO2e using published emission factors, either as a one-shot CLI
// calculation or as a JSON HTTP API.
package main

import (
	"fmt"
	"os"
)

var version = "dev" // set via -ldflags at release time

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

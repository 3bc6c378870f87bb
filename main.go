package main

import (
	"github.com/ion-oset/electorate-vanadium-core/cmd"
)

// main is the entry point for the vanadium command line interface. All
// functionality lives in the cmd package and the packages below it.
func main() {
	cmd.Execute()
}

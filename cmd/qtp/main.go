// SPDX-License-Identifier: MIT

// Command qtp estimates quantum tunneling transport properties (transmission
// coefficients, fluxes, rate constants and activation energies) of a
// particle crossing a symmetric one-dimensional potential-energy barrier.
package main

import (
	"os"

	"github.com/af0liveira/qtp/cmd/qtp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

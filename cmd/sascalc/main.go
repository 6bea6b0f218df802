// SPDX-License-Identifier: MIT

// Command sascalc evaluates small-angle scattering models from HCL job files.
package main

import "github.com/katalvlaran/lvsas/internal/cmd"

func main() {
	cmd.Execute()
}

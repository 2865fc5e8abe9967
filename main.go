package main

import (
	"os"

	"legendary/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute(), which parses the command line, dispatches to
// pacman, yay or snapper, and returns the exit code of the action.
//
// legendary is the LegendaryOS front-end for package and snapshot management:
//   - install and search try the package manager first and fall back to the AUR helper
//   - update, upgrade, remove, list and clean map to a single package manager call
//   - rollback and status drive snapper
//   - about and help only print
//
// Spawned tools inherit the terminal, so their own output and prompts appear
// unmodified between legendary's status lines.
func main() {
	os.Exit(cmd.Execute())
}

// Package main is the entry point for the lastupdate CLI application.
//
// lastupdate tells when a package was last changed in the openSUSE Build
// Service and whether other distributions already ship a newer version.
package main

import "github.com/ajxudir/lastupdate/cmd"

// main delegates all argument parsing and execution to the cmd package.
func main() {
	cmd.Execute()
}

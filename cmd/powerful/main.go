// Package main is the powerful entrypoint: a host-status predicate that
// gates batch jobs on power, charge, load, and wireless network.
package main

import "powerful/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}

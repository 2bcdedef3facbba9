package main

import "github.com/firedeskhq/firedesk/pkg/sentinel"

// runSentinel starts the sentinel supervisor, which spawns this binary with
// the "run" subcommand and restarts it on crash or binary replacement.
func runSentinel() {
	sentinel.Run()
}

// Package main provides the entry point for the wayfindex CLI tool.
package main

import "github.com/agentstation/wayfindex/cmd/wayfindex/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}

// Package main provides the entry point for the rolecheck CLI tool.
package main

import "github.com/talentops/rolecheck/cmd/rolecheck/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}

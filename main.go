// Package main is the entry point for the elmdecode CLI.
package main

import "elmdecode.dev/pkg/elmdecode/cmd"

func main() {
	cmd.Execute()
}

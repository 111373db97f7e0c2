// Package main provides the alchemist CLI.
package main

import "github.com/mesh-intelligence/alchemy/internal/cli"

func main() {
	cli.Execute()
}

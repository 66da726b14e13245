// Package main is the entry point for the proart CLI tool.
package main

import (
	"github.com/proartlab/proart/internal/cmd"
)

func main() {
	cmd.Execute()
}

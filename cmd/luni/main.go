// Package main is the entry point for the luni command
package main

import (
	"fmt"
	"os"

	"luni/cmd/luni/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package main provides the cdms CLI, a single-user customer record manager
// with per-region statistics and value segmentation.
package main

import (
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Package main is the entry point for undeadlemon.
package main

import (
	"log"
	"os"

	"github.com/UndeadLeech/bar-helpers/internal/cli"
)

func main() {
	log.SetPrefix("[undeadlemon] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

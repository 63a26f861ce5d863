package main

import (
	"os"

	"github.com/arthur-debert/meshdeps/cmd/meshdeps"
)

func main() {
	os.Exit(meshdeps.Run(os.Args[1:], os.Stdout, os.Stderr))
}

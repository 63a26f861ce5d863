package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/meshdeps/cmd/meshdeps"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bash|zsh|fish|powershell>\n", os.Args[0])
		os.Exit(1)
	}

	// The root command's completion subcommand already knows every shell
	os.Exit(meshdeps.Run([]string{"completion", os.Args[1]}, os.Stdout, os.Stderr))
}

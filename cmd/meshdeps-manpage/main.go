package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/meshdeps/cmd/meshdeps"
	"github.com/arthur-debert/meshdeps/internal/version"
)

func main() {
	rootCmd := meshdeps.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "MESHDEPS",
		Section: "1",
		Source:  "meshdeps " + version.Version,
		Manual:  "meshdeps manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "presentationgen",
		Short: "Generate PowerPoint decks from PDF sources via an LLM outline",
	}

	root.AddCommand(serveCmd())
	root.AddCommand(generateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "prosegeek",
		Short: "Prose statistics for plain text, HTML and Markdown",
		Long: `prosegeek counts words and sentences, finds the longest and shortest
sentences and ranks the most frequent words and phrases of a text.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.AddCommand(ReportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

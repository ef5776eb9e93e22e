package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atscli",
	Short: "Run the rapt ATS analysis engine from the command line",
	Long: `atscli runs the same deterministic ATS engine the rapt service uses,
without a database or server: point it at a resume file and it prints the
structured analysis as JSON.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

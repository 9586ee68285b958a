// Package main provides the jobmatcher command: the HTTP API server and a
// one-shot profile analysis from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobmatcher",
	Short: "Career readiness analyzer",
	Long:  "Analyzes skills, desired job titles and an optional CV with Gemini and reports current skills, gaps, matching roles and learning recommendations.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

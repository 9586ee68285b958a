package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jobmatcher/career-analyzer/internal/config"
	"jobmatcher/career-analyzer/internal/services"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a profile once and print the result as JSON",
	Long:  "Runs the same pipeline as POST /match-jobs against local input. The document, if given, is read in place and never copied or deleted.",
	RunE:  runAnalyze,
}

var (
	analyzeSkills      string
	analyzeDesiredJobs string
	analyzeFile        string
	analyzeOutputFile  string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeSkills, "skills", "s", "", "Free-text skills")
	analyzeCmd.Flags().StringVarP(&analyzeDesiredJobs, "desired-jobs", "j", "", "Desired job titles")
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to a CV (pdf, docx, jpg, jpeg, png, txt)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Write the JSON result to this file instead of stdout")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzeFile != "" {
		if _, err := os.Stat(analyzeFile); err != nil {
			return fmt.Errorf("cannot read document: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger(cfg)
	// Keep stdout for the JSON result.
	logger.SetOutput(os.Stderr)

	p, err := buildPipeline(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	result, err := p.matcher.Match(cmd.Context(), services.MatchInput{
		Skills:       analyzeSkills,
		DesiredJobs:  analyzeDesiredJobs,
		DocumentPath: analyzeFile,
	})
	if err != nil {
		var aerr *services.AnalysisError
		if errors.As(err, &aerr) && aerr.RawResponse != "" {
			fmt.Fprintf(os.Stderr, "Raw model response:\n%s\n", aerr.RawResponse)
		}
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if analyzeOutputFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if err := os.WriteFile(analyzeOutputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Analysis written to %s\n", analyzeOutputFile)
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-fit/internal/observability"
)

var (
	scoreResumeFile string
	scoreJobFile    string
	scoreQuick      bool
	scoreJSON       bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against an optional job posting",
	Long:  "Score a resume file against an optional job posting file. The full pipeline combines keyword, format, and AI semantic signals; --quick skips the AI call and uses only the deterministic signals.",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to resume text file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job posting text file")
	scoreCmd.Flags().BoolVar(&scoreQuick, "quick", false, "Skip the AI semantic signal")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Emit the raw report as JSON")
	_ = scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(false, cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	resumeText, err := readTextFile(scoreResumeFile)
	if err != nil {
		return err
	}

	var jobText string
	if scoreJobFile != "" {
		jobText, err = readTextFile(scoreJobFile)
		if err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	engine, cleanup, err := buildEngine(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	printer := observability.NewPrinter(os.Stdout)

	if scoreQuick {
		quick := engine.QuickScore(resumeText, jobText)
		if scoreJSON {
			return emitJSON(quick)
		}
		printer.PrintQuickReport(quick)
		return nil
	}

	report := engine.Score(ctx, resumeText, jobText)
	if scoreJSON {
		return emitJSON(report)
	}
	printer.PrintFitReport(report)
	return nil
}

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

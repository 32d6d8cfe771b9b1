package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-fit/internal/observability"
	"github.com/jonathan/resume-fit/internal/scoring"
)

var (
	batchResumeFile string
	batchJobsFile   string
	batchJSON       bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Rank a resume against multiple job postings",
	Long:  "Rank a resume against multiple job postings read from a JSON file. The file holds an array of objects with title, company, and description fields. Results are sorted best fit first.",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchResumeFile, "resume", "r", "", "Path to resume text file (required)")
	batchCmd.Flags().StringVarP(&batchJobsFile, "jobs", "f", "", "Path to JSON file with job postings (required)")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Emit the raw results as JSON")
	_ = batchCmd.MarkFlagRequired("resume")
	_ = batchCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(false, cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	resumeText, err := readTextFile(batchResumeFile)
	if err != nil {
		return err
	}

	jobsData, err := readTextFile(batchJobsFile)
	if err != nil {
		return err
	}

	var jobs []scoring.JobPosting
	if err := json.Unmarshal([]byte(jobsData), &jobs); err != nil {
		return fmt.Errorf("failed to parse jobs file: %w", err)
	}
	if len(jobs) == 0 {
		return fmt.Errorf("jobs file contains no postings")
	}

	ctx := cmd.Context()
	engine, cleanup, err := buildEngine(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	results := engine.ScoreBatch(ctx, resumeText, jobs)

	if batchJSON {
		return emitJSON(results)
	}

	observability.NewPrinter(os.Stdout).PrintBatchResults(results)
	return nil
}

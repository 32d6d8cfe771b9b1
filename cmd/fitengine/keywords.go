package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-fit/internal/keywords"
	"github.com/jonathan/resume-fit/internal/taxonomy"
)

var extractJobFile string

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Inspect the keyword taxonomy or extract keywords from a job posting",
	Long:  "Without flags, prints the built-in keyword taxonomy by category. With --job, extracts the recurring keywords from a job posting file the same way the scorer does.",
	RunE:  runKeywords,
}

func init() {
	keywordsCmd.Flags().StringVarP(&extractJobFile, "job", "j", "", "Path to job posting text file to extract keywords from")
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(_ *cobra.Command, _ []string) error {
	if extractJobFile != "" {
		jobText, err := readTextFile(extractJobFile)
		if err != nil {
			return err
		}
		extracted := keywords.ExtractJobKeywords(jobText)
		if len(extracted) == 0 {
			fmt.Println("No recurring keywords found.")
			return nil
		}
		fmt.Println(strings.Join(extracted, "\n"))
		return nil
	}

	tax, err := taxonomy.Load()
	if err != nil {
		return fmt.Errorf("failed to load keyword taxonomy: %w", err)
	}

	fmt.Printf("Taxonomy version %s, %d terms\n\n", tax.Version(), tax.Size())
	for _, category := range tax.Categories() {
		fmt.Printf("%s (%d):\n  %s\n", category.Name, len(category.Terms), strings.Join(category.Terms, ", "))
	}
	return nil
}

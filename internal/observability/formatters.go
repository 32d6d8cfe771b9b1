// Package observability provides formatted report output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-fit/internal/keywords"
	"github.com/jonathan/resume-fit/internal/scoring"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted report output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFitReport outputs a human-readable summary of a full fit report.
func (p *Printer) PrintFitReport(report *scoring.FitReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:     %d/100\n", report.Score))
	sb.WriteString(fmt.Sprintf("Keywords:    %d\n", report.Breakdown.Keywords))
	sb.WriteString(fmt.Sprintf("Format:      %d\n", report.Breakdown.Format))
	sb.WriteString(fmt.Sprintf("AI analysis: %d\n", report.Breakdown.AIAnalysis))

	if len(report.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(report.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  + %s\n", report.Strengths[i]))
		}
		if len(report.Strengths) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Strengths)-maxItemsToShow))
		}
	}

	if len(report.Weaknesses) > 0 {
		sb.WriteString("\nWeaknesses:\n")
		count := min(len(report.Weaknesses), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  - %s\n", report.Weaknesses[i]))
		}
		if len(report.Weaknesses) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Weaknesses)-maxItemsToShow))
		}
	}

	p.printBox("FIT REPORT", strings.TrimSuffix(sb.String(), "\n"))
	p.PrintSuggestions(report.Suggestions)
	p.printMissingKeywords(report.MissingKeywords)
}

// PrintQuickReport outputs the two-signal report.
func (p *Printer) PrintQuickReport(report *scoring.QuickReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %d/100\n", report.Score))
	sb.WriteString(fmt.Sprintf("Keywords: %d\n", report.Keywords))
	sb.WriteString(fmt.Sprintf("Format:   %d\n", report.Format))
	sb.WriteString(fmt.Sprintf("Words:    %d", report.WordCount))

	p.printBox("QUICK FIT REPORT", sb.String())
}

// PrintSuggestions outputs ranked suggestions.
func (p *Printer) PrintSuggestions(suggestions []scoring.Suggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range suggestions {
		sb.WriteString(fmt.Sprintf("[%s/%s]\n", s.Category, s.Priority))
		sb.WriteString(fmt.Sprintf("  %s", s.Suggestion))
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SUGGESTIONS", sb.String())
}

// PrintBatchResults outputs ranked batch results, best fit first.
func (p *Printer) PrintBatchResults(results []scoring.BatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Postings ranked: %d\n\n", len(results)))

	for i, res := range results {
		sb.WriteString(fmt.Sprintf("#%d  %s", i+1, res.JobTitle))
		if res.Company != "" {
			sb.WriteString(fmt.Sprintf(" at %s", res.Company))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Score: %d/100 (%s)\n", res.Score, res.MatchStrength))
		for _, s := range res.TopSuggestions {
			suggestion := s.Suggestion
			if len(suggestion) > 40 {
				suggestion = suggestion[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", suggestion))
		}
		if i < len(results)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RANKED POSTINGS", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printMissingKeywords(missing []keywords.Keyword) {
	if len(missing) == 0 {
		return
	}

	terms := make([]string, len(missing))
	for i, k := range missing {
		terms[i] = k.Keyword
	}

	var sb strings.Builder
	for start := 0; start < len(terms); start += 4 {
		end := min(start+4, len(terms))
		sb.WriteString(strings.Join(terms[start:end], ", "))
		if end < len(terms) {
			sb.WriteString(",\n")
		}
	}

	p.printBox("MISSING KEYWORDS", sb.String())
}

// Package scoring combines the keyword, format, and semantic signals into fit
// reports and ranks a resume against multiple job postings.
package scoring

import (
	"github.com/jonathan/resume-fit/internal/keywords"
	"github.com/jonathan/resume-fit/internal/semantic"
)

// MatchStrength is the qualitative label derived from a fit score.
type MatchStrength string

// Match strength tiers.
const (
	MatchStrong   MatchStrength = "strong"
	MatchModerate MatchStrength = "moderate"
	MatchWeak     MatchStrength = "weak"
)

// Breakdown carries the three per-signal scores behind the overall score.
type Breakdown struct {
	Keywords   int `json:"keywords"`
	Format     int `json:"format"`
	AIAnalysis int `json:"aiAnalysis"`
}

// Suggestion is one ranked, actionable improvement.
type Suggestion struct {
	Category   string `json:"category"`
	Priority   string `json:"priority"`
	Suggestion string `json:"suggestion"`
}

// DetailedAnalysis exposes per-signal detail for clients that want more than
// the headline numbers.
type DetailedAnalysis struct {
	CategoryScores map[string]keywords.CategoryScore `json:"categoryScores"`
	FormatIssues   []string                          `json:"formatIssues"`
	WordCount      int                               `json:"wordCount"`
	Semantic       semantic.Analysis                 `json:"semantic"`
}

// FitReport is the engine's externally visible output for one resume/job pair.
// It is constructed fresh per invocation and never persisted by the engine.
type FitReport struct {
	Score            int                `json:"score"`
	Breakdown        Breakdown          `json:"breakdown"`
	Strengths        []string           `json:"strengths"`
	Weaknesses       []string           `json:"weaknesses"`
	Suggestions      []Suggestion       `json:"suggestions"`
	MatchedKeywords  []keywords.Keyword `json:"matchedKeywords"`
	MissingKeywords  []keywords.Keyword `json:"missingKeywords"`
	DetailedAnalysis DetailedAnalysis   `json:"detailedAnalysis"`
}

// QuickReport is the fast two-signal variant; it never touches the external
// service.
type QuickReport struct {
	Score     int `json:"score"`
	Keywords  int `json:"keywords"`
	Format    int `json:"format"`
	WordCount int `json:"wordCount"`
}

// JobPosting is one batch-mode input.
type JobPosting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// BatchResult is one batch-mode output, computed and discarded per call.
type BatchResult struct {
	JobTitle       string        `json:"jobTitle"`
	Company        string        `json:"company"`
	Score          int           `json:"score"`
	MatchStrength  MatchStrength `json:"matchStrength"`
	TopSuggestions []Suggestion  `json:"topSuggestions"`
}

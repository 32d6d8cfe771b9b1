package scoring

import (
	"strings"

	"github.com/jonathan/resume-fit/internal/format"
	"github.com/jonathan/resume-fit/internal/keywords"
	"github.com/jonathan/resume-fit/internal/semantic"
)

const (
	// strongSignalThreshold marks a signal worth calling out as a strength.
	strongSignalThreshold = 70
	// weakSignalThreshold marks a signal worth calling out as a weakness.
	weakSignalThreshold = 50
	// maxSummarizedKeywords limits how many missing keywords the keyword
	// suggestion names.
	maxSummarizedKeywords = 5
)

// Limits caps the synthesized insight lists. Suggestions are deliberately
// uncapped; only strengths and weaknesses are truncated.
type Limits struct {
	MaxStrengths  int
	MaxWeaknesses int
}

// DefaultLimits returns the standard caps.
func DefaultLimits() Limits {
	return Limits{MaxStrengths: 8, MaxWeaknesses: 8}
}

// buildStrengths merges per-signal strengths in fixed order and truncates
// without reordering.
func buildStrengths(kw *keywords.Score, fs *format.Score, sem *semantic.Result, limits Limits) []string {
	var out []string
	if kw.Score >= strongSignalThreshold {
		out = append(out, "Strong keyword optimization")
	}
	if fs.Score >= strongSignalThreshold {
		out = append(out, "ATS-friendly formatting")
	}
	out = append(out, fs.Positives...)
	out = append(out, sem.Analysis.Strengths...)

	if len(out) > limits.MaxStrengths {
		out = out[:limits.MaxStrengths]
	}
	return out
}

// buildWeaknesses mirrors buildStrengths with the low-signal thresholds.
func buildWeaknesses(kw *keywords.Score, fs *format.Score, sem *semantic.Result, limits Limits) []string {
	var out []string
	if kw.Score < weakSignalThreshold {
		out = append(out, "Low keyword match with the target role")
	}
	if fs.Score < weakSignalThreshold {
		out = append(out, "Formatting needs ATS optimization")
	}
	out = append(out, fs.Issues...)
	out = append(out, sem.Analysis.Weaknesses...)

	if len(out) > limits.MaxWeaknesses {
		out = out[:limits.MaxWeaknesses]
	}
	return out
}

// buildSuggestions assembles the prioritized suggestion list. There is no
// global cap, unlike strengths and weaknesses.
func buildSuggestions(kw *keywords.Score, fs *format.Score, sem *semantic.Result) []Suggestion {
	var out []Suggestion

	if len(kw.Missing) > 0 {
		missing := kw.Missing
		if len(missing) > maxSummarizedKeywords {
			missing = missing[:maxSummarizedKeywords]
		}
		terms := make([]string, len(missing))
		for i, m := range missing {
			terms[i] = m.Keyword
		}
		out = append(out, Suggestion{
			Category:   "Keywords",
			Priority:   "high",
			Suggestion: "Add these keywords to your resume: " + strings.Join(terms, ", "),
		})
	}

	for _, issue := range fs.Issues {
		out = append(out, Suggestion{Category: "Format", Priority: "medium", Suggestion: issue})
	}

	for _, rec := range sem.Analysis.Recommendations {
		out = append(out, Suggestion{Category: "AI Insight", Priority: "high", Suggestion: rec})
	}

	if len(sem.Analysis.SkillsGap) > 0 {
		out = append(out, Suggestion{
			Category:   "Skills Gap",
			Priority:   "high",
			Suggestion: "Develop or highlight these skills: " + strings.Join(sem.Analysis.SkillsGap, ", "),
		})
	}

	return out
}

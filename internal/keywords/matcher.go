package keywords

import (
	"math"
	"strings"

	"github.com/jonathan/resume-fit/internal/taxonomy"
)

const (
	// maxMatched and maxMissing cap the term lists in the matcher result.
	maxMatched = 20
	maxMissing = 15
	// neutralScore is returned when no taxonomy term is relevant to the job.
	neutralScore = 50
	// jobSpecificCategory labels extracted job-posting terms that are not part
	// of the taxonomy.
	jobSpecificCategory = "job-specific"
)

// Keyword pairs a term with the category it came from.
type Keyword struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
}

// CategoryScore summarizes the overlap for one taxonomy category.
type CategoryScore struct {
	Score   int `json:"score"`
	Matches int `json:"matches"`
	Total   int `json:"total"`
}

// Score is the keyword matcher result.
type Score struct {
	Score          int                      `json:"score"`
	CategoryScores map[string]CategoryScore `json:"categoryScores"`
	Matched        []Keyword                `json:"matched"`
	Missing        []Keyword                `json:"missing"`
	TotalMatches   int                      `json:"totalMatches"`
	TotalKeywords  int                      `json:"totalKeywords"`
}

// Match scores resume text against the taxonomy and, when job text is present,
// against salient terms extracted from the job posting. A taxonomy term is
// relevant only if it appears in the job text; with no job text every term is
// treated as relevant. Matching is case-insensitive substring containment,
// deliberately without stemming or synonymy.
func Match(resumeText, jobText string, tax *taxonomy.Taxonomy) *Score {
	resumeLower := strings.ToLower(resumeText)
	jobLower := strings.ToLower(jobText)
	hasJob := strings.TrimSpace(jobText) != ""

	result := &Score{
		CategoryScores: make(map[string]CategoryScore, len(tax.Categories())),
	}

	var matched, missing []Keyword
	for _, category := range tax.Categories() {
		matches, total := 0, 0
		for _, term := range category.Terms {
			inJob := true
			if hasJob {
				inJob = strings.Contains(jobLower, term)
			}
			if !inJob {
				continue
			}
			total++
			if strings.Contains(resumeLower, term) {
				matches++
				matched = append(matched, Keyword{Keyword: term, Category: category.Name})
			} else {
				missing = append(missing, Keyword{Keyword: term, Category: category.Name})
			}
		}

		score := 0
		if total > 0 {
			score = roundPercent(matches, total)
		}
		result.CategoryScores[category.Name] = CategoryScore{Score: score, Matches: matches, Total: total}
		result.TotalMatches += matches
		result.TotalKeywords += total
	}

	// Extracted job-posting terms absent from the resume are appended last
	// under the synthetic job-specific category.
	for _, term := range ExtractJobKeywords(jobText) {
		if !strings.Contains(resumeLower, term) {
			missing = append(missing, Keyword{Keyword: term, Category: jobSpecificCategory})
		}
	}

	if len(matched) > maxMatched {
		matched = matched[:maxMatched]
	}
	if len(missing) > maxMissing {
		missing = missing[:maxMissing]
	}
	result.Matched = matched
	result.Missing = missing

	if result.TotalKeywords > 0 {
		result.Score = roundPercent(result.TotalMatches, result.TotalKeywords)
	} else {
		result.Score = neutralScore
	}
	return result
}

// roundPercent converts part/whole to a 0-100 score with round-half-up.
func roundPercent(part, whole int) int {
	return int(math.Floor(float64(part)/float64(whole)*100 + 0.5))
}

// Package keywords implements the deterministic keyword signals: salient-term
// extraction from job postings and resume-vs-taxonomy overlap scoring.
package keywords

import (
	"regexp"
	"strings"
)

const (
	// minTokenFrequency is how often a token must occur to qualify as salient.
	minTokenFrequency = 2
	// maxJobKeywords caps how many extracted terms a job posting contributes.
	maxJobKeywords = 20
)

// tokenPattern matches runs of at least three alphabetic characters.
var tokenPattern = regexp.MustCompile(`[a-zA-Z]{3,}`)

// stopWords are common English and job-posting boilerplate words excluded from
// extraction. Exact lowercase match only; no stemming.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {}, "you": {},
	"all": {}, "can": {}, "had": {}, "has": {}, "have": {}, "her": {}, "his": {},
	"him": {}, "how": {}, "its": {}, "new": {}, "now": {}, "our": {}, "out": {},
	"was": {}, "who": {}, "will": {}, "with": {}, "this": {}, "that": {},
	"they": {}, "them": {}, "their": {}, "there": {}, "these": {}, "those": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "while": {}, "would": {},
	"your": {}, "about": {}, "been": {}, "being": {}, "both": {}, "each": {},
	"from": {}, "into": {}, "more": {}, "most": {}, "other": {}, "over": {},
	"some": {}, "such": {}, "than": {}, "then": {}, "were": {}, "also": {},
	"should": {}, "must": {}, "may": {}, "per": {}, "including": {},
	"work": {}, "working": {}, "job": {}, "role": {}, "position": {},
	"candidate": {}, "candidates": {}, "company": {}, "team": {}, "teams": {},
	"years": {}, "year": {}, "plus": {}, "strong": {}, "ability": {},
	"required": {}, "requirements": {}, "preferred": {}, "looking": {},
	"join": {}, "help": {}, "opportunity": {}, "benefits": {}, "salary": {},
}

// ExtractJobKeywords derives salient terms from free-text job postings via
// frequency counting with stop-word exclusion. Tokens qualify once they occur
// at least twice and are returned in the order they first qualify, capped at
// 20. Empty input yields an empty list, not an error.
func ExtractJobKeywords(jobText string) []string {
	if strings.TrimSpace(jobText) == "" {
		return nil
	}

	counts := make(map[string]int)
	qualified := make([]string, 0, maxJobKeywords)
	for _, token := range tokenPattern.FindAllString(strings.ToLower(jobText), -1) {
		if _, stop := stopWords[token]; stop {
			continue
		}
		counts[token]++
		if counts[token] == minTokenFrequency {
			qualified = append(qualified, token)
		}
	}

	if len(qualified) > maxJobKeywords {
		qualified = qualified[:maxJobKeywords]
	}
	return qualified
}

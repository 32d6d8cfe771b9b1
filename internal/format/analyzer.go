// Package format applies structural and ATS-compatibility heuristics to resume
// text. Each heuristic is an independent all-or-nothing point bucket; a resume
// can fail several buckets and still keep the points from the others.
package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-fit/internal/taxonomy"
)

const (
	minWords       = 400
	maxWords       = 1000
	minActionVerbs = 5

	lengthPoints     = 20
	contactPoints    = 15
	sectionPoints    = 15
	quantifiedPoints = 20
	actionVerbPoints = 15
	characterPoints  = 15

	maxScore = 100
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	// Loose North-American-style phone shape: 3-3-4 digit grouping with
	// optional separators and parentheses.
	phonePattern      = regexp.MustCompile(`\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	quantifiedPattern = regexp.MustCompile(`(?i)\d+(\.\d+)?\s*%|\$\s*\d+|\d+\s*years|increased|reduced|improved|saved`)
	// Characters known to confuse ATS parsers.
	hostilePattern = regexp.MustCompile("[<>{}\\[\\]|\\\\#@*&^~`]")
)

// sectionHeaders are the standard resume sections ATS software keys on.
var sectionHeaders = []string{"experience", "education", "skills", "projects"}

// Score is the format analyzer result.
type Score struct {
	Score     int      `json:"score"`
	Issues    []string `json:"issues"`
	Positives []string `json:"positives"`
	WordCount int      `json:"wordCount"`
}

// Analyze runs the format heuristics over resume text. It is a pure function
// with no external calls.
func Analyze(resumeText string, tax *taxonomy.Taxonomy) *Score {
	result := &Score{WordCount: len(strings.Fields(resumeText))}
	lower := strings.ToLower(resumeText)
	points := 0

	switch {
	case result.WordCount >= minWords && result.WordCount <= maxWords:
		points += lengthPoints
		result.Positives = append(result.Positives, "Good resume length")
	case result.WordCount < minWords:
		result.Issues = append(result.Issues,
			fmt.Sprintf("Resume is too short (%d words) - aim for %d-%d words", result.WordCount, minWords, maxWords))
	default:
		result.Issues = append(result.Issues,
			fmt.Sprintf("Resume is too long (%d words) - trim to at most %d words", result.WordCount, maxWords))
	}

	if emailPattern.MatchString(resumeText) && phonePattern.MatchString(resumeText) {
		points += contactPoints
		result.Positives = append(result.Positives, "Contact information present")
	} else {
		result.Issues = append(result.Issues,
			"Missing contact information - include both an email address and a phone number")
	}

	if containsAny(lower, sectionHeaders) {
		points += sectionPoints
		result.Positives = append(result.Positives, "Clear section headers")
	} else {
		result.Issues = append(result.Issues,
			"Missing standard section headers such as Experience, Education, or Skills")
	}

	if quantifiedPattern.MatchString(resumeText) {
		points += quantifiedPoints
		result.Positives = append(result.Positives, "Contains quantified achievements")
	} else {
		result.Issues = append(result.Issues,
			"No quantified achievements - add numbers, percentages, or dollar figures")
	}

	if countActionVerbs(lower, tax) >= minActionVerbs {
		points += actionVerbPoints
		result.Positives = append(result.Positives, "Good use of action verbs")
	} else {
		result.Issues = append(result.Issues,
			"Few action verbs - start bullet points with verbs like developed, led, or improved")
	}

	// Email addresses are masked before the scan so a contact email's "@" does
	// not count against the resume.
	if hostilePattern.MatchString(emailPattern.ReplaceAllString(resumeText, " ")) {
		result.Issues = append(result.Issues,
			"Contains special characters that may confuse ATS parsers")
	} else {
		points += characterPoints
		result.Positives = append(result.Positives, "ATS-friendly character usage")
	}

	if points > maxScore {
		points = maxScore
	}
	result.Score = points
	return result
}

// countActionVerbs counts distinct taxonomy action verbs present in the text.
func countActionVerbs(lowerText string, tax *taxonomy.Taxonomy) int {
	count := 0
	for _, verb := range tax.ActionVerbs() {
		if strings.Contains(lowerText, verb) {
			count++
		}
	}
	return count
}

func containsAny(text string, substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

package scoring

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-fit/internal/format"
	"github.com/jonathan/resume-fit/internal/keywords"
	"github.com/jonathan/resume-fit/internal/semantic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStrengths_ThresholdEntriesComeFirst(t *testing.T) {
	kw := &keywords.Score{Score: 70}
	fs := &format.Score{Score: 70, Positives: []string{"Good resume length"}}
	sem := &semantic.Result{Analysis: semantic.Analysis{Strengths: []string{"clear impact"}}}

	got := buildStrengths(kw, fs, sem, DefaultLimits())

	assert.Equal(t, []string{
		"Strong keyword optimization",
		"ATS-friendly formatting",
		"Good resume length",
		"clear impact",
	}, got)
}

func TestBuildStrengths_CappedAtEightWithoutReordering(t *testing.T) {
	kw := &keywords.Score{Score: 90}
	fs := &format.Score{
		Score:     90,
		Positives: []string{"p1", "p2", "p3", "p4", "p5", "p6"},
	}
	sem := &semantic.Result{Analysis: semantic.Analysis{Strengths: []string{"s1", "s2"}}}

	got := buildStrengths(kw, fs, sem, DefaultLimits())

	require.Len(t, got, 8)
	// Truncated, not prioritized: the semantic strengths fall off the end.
	assert.Equal(t, "Strong keyword optimization", got[0])
	assert.Equal(t, "p6", got[7])
}

func TestBuildWeaknesses_LowSignalThresholds(t *testing.T) {
	kw := &keywords.Score{Score: 49}
	fs := &format.Score{Score: 49, Issues: []string{"Resume is too short"}}
	sem := &semantic.Result{Analysis: semantic.Analysis{Weaknesses: []string{"vague bullets"}}}

	got := buildWeaknesses(kw, fs, sem, DefaultLimits())

	assert.Equal(t, []string{
		"Low keyword match with the target role",
		"Formatting needs ATS optimization",
		"Resume is too short",
		"vague bullets",
	}, got)
}

func TestBuildWeaknesses_FiftyIsNotWeak(t *testing.T) {
	kw := &keywords.Score{Score: 50}
	fs := &format.Score{Score: 50}
	sem := &semantic.Result{}

	got := buildWeaknesses(kw, fs, sem, DefaultLimits())

	assert.Empty(t, got)
}

func TestBuildSuggestions_KeywordSummaryUsesFirstFiveMissing(t *testing.T) {
	kw := &keywords.Score{
		Missing: []keywords.Keyword{
			{Keyword: "docker"}, {Keyword: "kubernetes"}, {Keyword: "terraform"},
			{Keyword: "aws"}, {Keyword: "gcp"}, {Keyword: "azure"},
		},
	}
	fs := &format.Score{}
	sem := &semantic.Result{}

	got := buildSuggestions(kw, fs, sem)

	require.Len(t, got, 1)
	assert.Equal(t, "Keywords", got[0].Category)
	assert.Equal(t, "high", got[0].Priority)
	assert.Contains(t, got[0].Suggestion, "docker, kubernetes, terraform, aws, gcp")
	assert.NotContains(t, got[0].Suggestion, "azure")
}

func TestBuildSuggestions_AllCategoriesAndNoGlobalCap(t *testing.T) {
	kw := &keywords.Score{Missing: []keywords.Keyword{{Keyword: "sql"}}}
	fs := &format.Score{Issues: []string{"i1", "i2", "i3", "i4", "i5"}}
	sem := &semantic.Result{Analysis: semantic.Analysis{
		Recommendations: []string{"r1", "r2", "r3", "r4"},
		SkillsGap:       []string{"terraform"},
	}}

	got := buildSuggestions(kw, fs, sem)

	// 1 keyword + 5 format + 4 recommendations + 1 skills gap = 11, uncapped.
	require.Len(t, got, 11)

	byCategory := map[string]int{}
	for _, s := range got {
		byCategory[s.Category]++
	}
	assert.Equal(t, 1, byCategory["Keywords"])
	assert.Equal(t, 5, byCategory["Format"])
	assert.Equal(t, 4, byCategory["AI Insight"])
	assert.Equal(t, 1, byCategory["Skills Gap"])

	for _, s := range got {
		if s.Category == "Format" {
			assert.Equal(t, "medium", s.Priority)
		} else {
			assert.Equal(t, "high", s.Priority)
		}
	}
}

func TestBuildSuggestions_SkillsGapSuggestion(t *testing.T) {
	kw := &keywords.Score{}
	fs := &format.Score{}
	sem := &semantic.Result{Analysis: semantic.Analysis{SkillsGap: []string{"rust", "kafka"}}}

	got := buildSuggestions(kw, fs, sem)

	require.Len(t, got, 1)
	assert.Equal(t, "Skills Gap", got[0].Category)
	assert.True(t, strings.Contains(got[0].Suggestion, "rust, kafka"))
}

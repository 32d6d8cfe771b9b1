// Package semantic invokes the external text-analysis service and parses its
// structured response. Any transport or parsing failure degrades to a
// documented neutral result; nothing in this package raises to the caller.
package semantic

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-fit/internal/llm"
	"github.com/jonathan/resume-fit/internal/prompts"
)

// NeutralScore is used whenever the external signal is unavailable.
const NeutralScore = 50

// Analysis is the narrative portion of the external service's response. The
// shape is a contract with the service; absent fields stay empty.
type Analysis struct {
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	RoleAlignment   string   `json:"roleAlignment,omitempty"`
	SkillsGap       []string `json:"skillsGap,omitempty"`
}

// Result is the semantic analysis outcome.
type Result struct {
	Score    int      `json:"score"`
	Analysis Analysis `json:"analysis"`
}

// Analyzer wraps the injected llm.Client with prompt construction, response
// parsing, and the neutral-fallback contract.
type Analyzer struct {
	client llm.Client
	logger *zap.Logger
}

// NewAnalyzer creates an Analyzer. A nil client is allowed: every call then
// takes the fallback path, which keeps the engine usable without a credential.
func NewAnalyzer(client llm.Client, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if client == nil {
		logger.Warn("no analysis client configured, semantic scoring will use the neutral fallback")
	}
	return &Analyzer{client: client, logger: logger}
}

// Analyze runs the external semantic analysis for the given resume and
// optional job text. It never fails; on any problem it returns Fallback().
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobText string) *Result {
	if a.client == nil {
		return Fallback()
	}

	raw, err := a.client.GenerateJSON(ctx, buildPrompt(resumeText, jobText))
	if err != nil {
		a.logger.Warn("semantic analysis call failed", zap.Error(err))
		return Fallback()
	}

	result, err := parseResponse(raw)
	if err != nil {
		a.logger.Warn("semantic analysis response unusable",
			zap.Error(err),
			zap.String("response_preview", preview(raw)),
		)
		return Fallback()
	}
	return result
}

// Fallback returns the documented neutral result: score 50 plus placeholder
// advisory strings.
func Fallback() *Result {
	return &Result{
		Score: NeutralScore,
		Analysis: Analysis{
			Strengths:  []string{"Resume received and processed"},
			Weaknesses: []string{"Semantic analysis was unavailable for this run"},
			Recommendations: []string{
				"Semantic feedback is temporarily unavailable; the score reflects keyword and format analysis",
			},
		},
	}
}

// buildPrompt selects the with-job or without-job template.
func buildPrompt(resumeText, jobText string) string {
	if strings.TrimSpace(jobText) == "" {
		template := prompts.MustGet("analysis.json", "analyze-resume")
		return prompts.Format(template, map[string]string{"Resume": resumeText})
	}
	template := prompts.MustGet("analysis.json", "analyze-resume-for-job")
	return prompts.Format(template, map[string]string{"Resume": resumeText, "Job": jobText})
}

// serviceResponse mirrors the flat JSON contract with the external service.
// Score is a pointer so a missing field is distinguishable from zero.
type serviceResponse struct {
	Score           *float64 `json:"score"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	RoleAlignment   string   `json:"roleAlignment"`
	SkillsGap       []string `json:"skillsGap"`
}

// parseResponse extracts the first balanced JSON object from the raw response
// text and maps it onto a Result.
func parseResponse(raw string) (*Result, error) {
	block, err := llm.ExtractJSONObject(llm.CleanJSONBlock(raw))
	if err != nil {
		return nil, err
	}

	var resp serviceResponse
	if err := json.Unmarshal([]byte(block), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}
	if resp.Score == nil {
		return nil, fmt.Errorf("analysis response is missing a score")
	}

	score := int(math.Floor(*resp.Score + 0.5))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &Result{
		Score: score,
		Analysis: Analysis{
			Strengths:       resp.Strengths,
			Weaknesses:      resp.Weaknesses,
			Recommendations: resp.Recommendations,
			RoleAlignment:   resp.RoleAlignment,
			SkillsGap:       resp.SkillsGap,
		},
	}, nil
}

// preview shortens raw response text for log output.
func preview(s string) string {
	const limit = 200
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

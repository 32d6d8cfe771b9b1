package scoring

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-fit/internal/format"
	"github.com/jonathan/resume-fit/internal/keywords"
	"github.com/jonathan/resume-fit/internal/semantic"
	"github.com/jonathan/resume-fit/internal/taxonomy"
)

const (
	// defaultBatchConcurrency bounds concurrent semantic-analysis calls in
	// batch mode so the external service is not overwhelmed.
	defaultBatchConcurrency = 4
	// maxBatchSuggestions is how many suggestions each batch result keeps.
	maxBatchSuggestions = 3
)

// SemanticAnalyzer is the external-signal capability consumed by the engine.
// Implementations must absorb their own failures and return a usable result.
type SemanticAnalyzer interface {
	Analyze(ctx context.Context, resumeText, jobText string) *semantic.Result
}

// Config holds the engine tunables.
type Config struct {
	Weights          Weights
	Limits           Limits
	BatchConcurrency int
}

// Engine runs the scoring pipeline. It holds only immutable state and is safe
// for concurrent use across requests.
type Engine struct {
	tax      *taxonomy.Taxonomy
	analyzer SemanticAnalyzer
	cfg      Config
	logger   *zap.Logger
}

// NewEngine creates an Engine. Zero-value config fields fall back to defaults.
func NewEngine(tax *taxonomy.Taxonomy, analyzer SemanticAnalyzer, logger *zap.Logger, cfg Config) *Engine {
	if cfg.Weights == (Weights{}) {
		cfg.Weights = DefaultWeights()
	}
	if cfg.Limits == (Limits{}) {
		cfg.Limits = DefaultLimits()
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = defaultBatchConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{tax: tax, analyzer: analyzer, cfg: cfg, logger: logger}
}

// Taxonomy returns a read-only snapshot of the keyword taxonomy for client
// display.
func (e *Engine) Taxonomy() map[string][]string {
	return e.tax.Snapshot()
}

// Score runs the full three-signal pipeline. The semantic call runs
// concurrently with the deterministic signals; its failures have already been
// converted to the neutral fallback by the analyzer, so Score itself cannot
// fail.
func (e *Engine) Score(ctx context.Context, resumeText, jobText string) *FitReport {
	semCh := make(chan *semantic.Result, 1)
	go func() {
		semCh <- e.analyzer.Analyze(ctx, resumeText, jobText)
	}()

	kw := keywords.Match(resumeText, jobText, e.tax)
	fs := format.Analyze(resumeText, e.tax)
	sem := <-semCh

	overall := e.cfg.Weights.Combine(kw.Score, fs.Score, sem.Score)
	e.logger.Debug("scored resume",
		zap.Int("overall", overall),
		zap.Int("keywords", kw.Score),
		zap.Int("format", fs.Score),
		zap.Int("semantic", sem.Score),
	)

	return &FitReport{
		Score: overall,
		Breakdown: Breakdown{
			Keywords:   kw.Score,
			Format:     fs.Score,
			AIAnalysis: sem.Score,
		},
		Strengths:       buildStrengths(kw, fs, sem, e.cfg.Limits),
		Weaknesses:      buildWeaknesses(kw, fs, sem, e.cfg.Limits),
		Suggestions:     buildSuggestions(kw, fs, sem),
		MatchedKeywords: kw.Matched,
		MissingKeywords: kw.Missing,
		DetailedAnalysis: DetailedAnalysis{
			CategoryScores: kw.CategoryScores,
			FormatIssues:   fs.Issues,
			WordCount:      fs.WordCount,
			Semantic:       sem.Analysis,
		},
	}
}

// QuickScore runs only the two deterministic signals with the 60/40 weighting.
// It never invokes the semantic analyzer.
func (e *Engine) QuickScore(resumeText, jobText string) *QuickReport {
	kw := keywords.Match(resumeText, jobText, e.tax)
	fs := format.Analyze(resumeText, e.tax)

	return &QuickReport{
		Score:     e.cfg.Weights.CombineQuick(kw.Score, fs.Score),
		Keywords:  kw.Score,
		Format:    fs.Score,
		WordCount: fs.WordCount,
	}
}

// ScoreBatch runs the full pipeline once per posting with bounded concurrency
// and returns results sorted by score descending. The sort is stable, so ties
// keep their input order.
func (e *Engine) ScoreBatch(ctx context.Context, resumeText string, postings []JobPosting) []BatchResult {
	results := make([]BatchResult, len(postings))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.BatchConcurrency)
	for i, posting := range postings {
		g.Go(func() error {
			report := e.Score(gctx, resumeText, posting.Description)

			top := report.Suggestions
			if len(top) > maxBatchSuggestions {
				top = top[:maxBatchSuggestions]
			}
			results[i] = BatchResult{
				JobTitle:       posting.Title,
				Company:        posting.Company,
				Score:          report.Score,
				MatchStrength:  strengthFor(report.Score),
				TopSuggestions: top,
			}
			return nil
		})
	}
	// Workers never return errors; failures inside a scoring call have
	// already degraded to fallback values.
	_ = g.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// pkg/engine/engine.go
package engine

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/clapenergy/mailtrace-render-starter/pkg/detect"
	"github.com/clapenergy/mailtrace-render-starter/pkg/match"
	"github.com/clapenergy/mailtrace-render-starter/pkg/model"
)

// Config bundles the tunables for one engine instance.
type Config struct {
	Detect detect.Config
	Score  match.ScoreConfig
	// Optional override for the unit-plausibility heuristic.
	UnitPlausible match.UnitPlausibleFunc
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Detect: detect.DefaultConfig(),
		Score:  match.DefaultScoreConfig(),
	}
}

// Result is the full output of one matching run.
type Result struct {
	Results []match.MatchResult
	Summary match.Summary
}

// Engine orchestrates one synchronous, request-scoped pass over the two
// datasets: detect, normalize, match, score, aggregate. It holds no state
// across runs; every invocation is pure with respect to its inputs.
type Engine struct {
	detector *detect.Detector
	matcher  *match.Matcher
	scorer   *match.Scorer
	logger   *zap.Logger
}

// New creates an engine with default configuration.
func New(logger *zap.Logger) (*Engine, error) {
	return NewWithConfig(logger, DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(logger *zap.Logger, config Config) (*Engine, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Engine{
		detector: detect.NewDetectorWithConfig(logger, config.Detect),
		matcher:  match.NewMatcher(logger),
		scorer:   match.NewScorerWithConfig(logger, config.Score, config.UnitPlausible),
		logger:   logger,
	}, nil
}

// DetectColumns guesses the column mapping for one dataset.
func (e *Engine) DetectColumns(ds *model.Dataset) detect.Guess {
	return e.detector.Detect(ds)
}

// Run executes the full pipeline for confirmed mappings. The only error it
// can return is a MappingIncompleteError; malformed rows degrade to empty
// normalized fields and, at worst, an unmatched classification. The run
// never aborts partway because of one bad row.
func (e *Engine) Run(mail, crm *model.Dataset, mailMapping, crmMapping model.ColumnMapping) (*Result, error) {
	if missing := mailMapping.Missing(); len(missing) > 0 {
		return nil, &MappingIncompleteError{Dataset: mail.Name, Missing: missing}
	}
	if missing := crmMapping.Missing(); len(missing) > 0 {
		return nil, &MappingIncompleteError{Dataset: crm.Name, Missing: missing}
	}

	start := time.Now()

	mailRecords := match.BuildRecords(mail, mailMapping)
	crmRecords := match.BuildRecords(crm, crmMapping)

	candidates := e.matcher.Match(mailRecords, crmRecords)
	results := e.scorer.ResolveAll(candidates)
	summary := match.Aggregate(results)

	e.logger.Info("Matching run complete",
		zap.Int("mailRecords", summary.TotalMail),
		zap.Int("matched", summary.Matched),
		zap.Float64("matchRate", summary.MatchRate),
		zap.Duration("elapsed", time.Since(start)))

	return &Result{Results: results, Summary: summary}, nil
}

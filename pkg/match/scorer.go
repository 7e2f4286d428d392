// pkg/match/scorer.go
package match

import (
	"strings"

	"go.uber.org/zap"

	"github.com/clapenergy/mailtrace-render-starter/pkg/model"
)

// UnitPlausibleFunc decides whether an address is of a kind that commonly
// carries a unit even though neither dataset supplied one. Pluggable because
// the right heuristic is deployment-specific; the default keys off the
// street name.
type UnitPlausibleFunc func(model.NormalizedAddress) bool

// ScoreConfig holds the scoring constants. The exact penalty values and the
// acceptance threshold are product decisions, kept here as configuration
// rather than literals in the scoring path.
type ScoreConfig struct {
	// Baseline confidence for an address-key match.
	Baseline int
	// Penalty when both sides carry units whose values disagree.
	UnitMismatchPenalty int
	// Penalty when exactly one side carries a unit.
	UnitMissingPenalty int
	// Minimum confidence for a best candidate to be accepted as the
	// surfaced match. Candidates below it remain visible for audit only.
	AcceptThreshold int
}

// DefaultScoreConfig returns the default scoring constants.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		Baseline:            100,
		UnitMismatchPenalty: 40,
		UnitMissingPenalty:  20,
		AcceptThreshold:     50,
	}
}

// Scorer assigns each candidate a confidence and a match note, and selects
// the best candidate per mail-history record. Pure with respect to its
// inputs; the unit fields it inspects were computed during normalization.
type Scorer struct {
	config        ScoreConfig
	unitPlausible UnitPlausibleFunc
	logger        *zap.Logger
}

// NewScorer creates a scorer with default constants and the default
// unit-plausibility heuristic.
func NewScorer(logger *zap.Logger) *Scorer {
	return NewScorerWithConfig(logger, DefaultScoreConfig(), nil)
}

// NewScorerWithConfig creates a scorer with custom constants. A nil
// plausibility predicate falls back to the street-name keyword heuristic.
func NewScorerWithConfig(logger *zap.Logger, config ScoreConfig, unitPlausible UnitPlausibleFunc) *Scorer {
	if config.Baseline <= 0 {
		config.Baseline = DefaultScoreConfig().Baseline
	}
	if unitPlausible == nil {
		unitPlausible = StreetNameSuggestsUnit
	}
	return &Scorer{
		config:        config,
		unitPlausible: unitPlausible,
		logger:        logger,
	}
}

// Score rates one candidate pair. The address keys already agree, so scoring
// starts at the baseline and applies exactly one unit rule, in priority
// order. The no-unit-info annotation carries no numeric penalty: absent unit
// data cannot be held against a record when it is unknowable.
func (s *Scorer) Score(mail, crm Record) (int, string) {
	confidence := s.config.Baseline
	note := ""

	mailHas := mail.Addr.HasUnit()
	crmHas := crm.Addr.HasUnit()

	switch {
	case mailHas && crmHas:
		if !mail.Addr.Unit.Equal(crm.Addr.Unit) {
			confidence -= s.config.UnitMismatchPenalty
			note = NoteUnitMismatch
		}
	case mailHas != crmHas:
		confidence -= s.config.UnitMissingPenalty
		note = NoteUnitMissing
	default:
		if s.unitPlausible(mail.Addr) || s.unitPlausible(crm.Addr) {
			note = NoteNoUnitInfo
		}
	}

	if confidence < 0 {
		confidence = 0
	} else if confidence > 100 {
		confidence = 100
	}
	return confidence, note
}

// Resolve scores a record's candidates and selects the best. Ties break by
// CRM extraction order, which the matcher preserves, so resolution is stable
// and deterministic. A record with no candidates, or whose best falls below
// the acceptance threshold, is unmatched; its candidates stay attached for
// audit.
func (s *Scorer) Resolve(c Candidates) MatchResult {
	result := MatchResult{Mail: c.Mail, Status: StatusUnmatched}
	if len(c.CRM) == 0 {
		return result
	}

	result.Candidates = make([]CandidateMatch, 0, len(c.CRM))
	best := -1
	for i, crm := range c.CRM {
		confidence, note := s.Score(c.Mail, crm)
		result.Candidates = append(result.Candidates, CandidateMatch{
			Mail:       c.Mail,
			CRM:        crm,
			Confidence: confidence,
			MatchNote:  note,
		})
		if best < 0 || confidence > result.Candidates[best].Confidence {
			best = i
		}
	}

	if result.Candidates[best].Confidence >= s.config.AcceptThreshold {
		result.Status = StatusMatched
		result.Best = &result.Candidates[best]
	}
	return result
}

// ResolveAll resolves every mail-history record.
func (s *Scorer) ResolveAll(candidates []Candidates) []MatchResult {
	results := make([]MatchResult, 0, len(candidates))
	matched := 0
	for _, c := range candidates {
		r := s.Resolve(c)
		if r.Matched() {
			matched++
		}
		results = append(results, r)
	}

	s.logger.Info("Scored match results",
		zap.Int("mailRecords", len(results)),
		zap.Int("matched", matched),
		zap.Int("unmatched", len(results)-matched))

	return results
}

// Street-name tokens that mark complex-style addresses where a unit would
// normally exist.
var unitProneTokens = map[string]bool{
	"APTS":       true,
	"APARTMENTS": true,
	"CONDO":      true,
	"CONDOS":     true,
	"TOWER":      true,
	"TOWERS":     true,
	"LOFTS":      true,
	"COMPLEX":    true,
	"VILLAS":     true,
}

// StreetNameSuggestsUnit is the default unit-plausibility heuristic.
func StreetNameSuggestsUnit(addr model.NormalizedAddress) bool {
	for _, token := range strings.Fields(addr.StreetName) {
		if unitProneTokens[token] {
			return true
		}
	}
	return false
}

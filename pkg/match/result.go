// pkg/match/result.go
package match

import (
	"github.com/clapenergy/mailtrace-render-starter/pkg/model"
)

// Record pairs a raw input row with its normalized address.
type Record struct {
	Raw  model.RawRecord
	Addr model.NormalizedAddress
}

// Match-note wording is part of the output contract: the export CSV and the
// audit view surface these strings verbatim.
const (
	NoteUnitMismatch = "unit mismatch"
	NoteUnitMissing  = "unit missing on one side"
	NoteNoUnitInfo   = "no unit info available"
)

// CandidateMatch is a scored pairing of one mail-history record with one CRM
// record sharing its address key.
type CandidateMatch struct {
	Mail Record
	CRM  Record
	// Confidence is 0..100 after penalties and clamping.
	Confidence int
	// MatchNote is empty for clean matches. The engine always computes
	// it; renderers outside audit views are responsible for suppressing
	// the no-unit-info annotation.
	MatchNote string
}

// Status classifies the outcome for a mail-history record.
type Status string

const (
	StatusMatched   Status = "matched"
	StatusUnmatched Status = "unmatched"
)

// MatchResult is the final decision for one mail-history record: either a
// best candidate or an explicit unmatched marker. Lesser candidates are
// retained for audit but never surfaced as the primary result.
type MatchResult struct {
	Mail       Record
	Status     Status
	Best       *CandidateMatch
	Candidates []CandidateMatch
}

// Matched reports whether the record found an accepted best candidate.
func (r MatchResult) Matched() bool {
	return r.Status == StatusMatched && r.Best != nil
}

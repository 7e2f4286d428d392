// pkg/match/aggregate_test.go
package match

import (
	"testing"

	"github.com/clapenergy/mailtrace-render-starter/pkg/model"
)

func matchedResult(confidence int, note, city, state, zip string) MatchResult {
	mail := Record{Addr: model.NormalizedAddress{
		StreetNumber: "1", StreetName: "MAIN ST",
		City: city, State: state, Zip: zip,
	}}
	best := CandidateMatch{Mail: mail, Confidence: confidence, MatchNote: note}
	return MatchResult{
		Mail:       mail,
		Status:     StatusMatched,
		Best:       &best,
		Candidates: []CandidateMatch{best},
	}
}

func unmatchedResult() MatchResult {
	return MatchResult{Status: StatusUnmatched}
}

func TestAggregate(t *testing.T) {
	results := []MatchResult{
		matchedResult(100, "", "SPRINGFIELD", "IL", "62704"),
		matchedResult(60, NoteUnitMismatch, "SPRINGFIELD", "IL", "62704"),
		matchedResult(80, NoteUnitMissing, "SAN DIEGO", "CA", "92101"),
		matchedResult(100, NoteNoUnitInfo, "SPRINGFIELD", "IL", "62705"),
		unmatchedResult(),
	}

	s := Aggregate(results)

	if s.TotalMail != 5 {
		t.Errorf("TotalMail = %d, want 5", s.TotalMail)
	}
	if s.Matched != 4 || s.Unmatched != 1 {
		t.Errorf("Matched/Unmatched = %d/%d, want 4/1", s.Matched, s.Unmatched)
	}
	if s.MatchRate != 0.8 {
		t.Errorf("MatchRate = %v, want 0.8", s.MatchRate)
	}
	if s.AvgConfidence != 85 {
		t.Errorf("AvgConfidence = %v, want 85", s.AvgConfidence)
	}
	if s.UnitMismatches != 1 || s.UnitMissing != 1 || s.NoUnitInfo != 1 {
		t.Errorf("note tallies = %d/%d/%d, want 1/1/1",
			s.UnitMismatches, s.UnitMissing, s.NoUnitInfo)
	}

	if len(s.TopCities) != 2 {
		t.Fatalf("TopCities = %d entries, want 2", len(s.TopCities))
	}
	if s.TopCities[0].City != "SPRINGFIELD" || s.TopCities[0].Count != 3 {
		t.Errorf("top city = %+v, want SPRINGFIELD with 3", s.TopCities[0])
	}

	if len(s.TopZips) != 3 {
		t.Fatalf("TopZips = %d entries, want 3", len(s.TopZips))
	}
	if s.TopZips[0].Zip != "62704" || s.TopZips[0].Count != 2 {
		t.Errorf("top zip = %+v, want 62704 with 2", s.TopZips[0])
	}
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)
	if s.TotalMail != 0 || s.MatchRate != 0 || s.AvgConfidence != 0 {
		t.Errorf("empty aggregate = %+v, want zero values", s)
	}
}

func TestAggregateTopListsCapped(t *testing.T) {
	var results []MatchResult
	zips := []string{"10001", "10002", "10003", "10004", "10005", "10006", "10007"}
	for _, zip := range zips {
		results = append(results, matchedResult(100, "", "NEW YORK", "NY", zip))
	}

	s := Aggregate(results)
	if len(s.TopZips) != topListSize {
		t.Errorf("TopZips = %d entries, want cap of %d", len(s.TopZips), topListSize)
	}
}

func TestAggregateDeterministicOrdering(t *testing.T) {
	results := []MatchResult{
		matchedResult(100, "", "AUSTIN", "TX", "73301"),
		matchedResult(100, "", "BOSTON", "MA", "02108"),
	}

	first := Aggregate(results)
	for i := 0; i < 10; i++ {
		again := Aggregate(results)
		if again.TopCities[0] != first.TopCities[0] || again.TopZips[0] != first.TopZips[0] {
			t.Fatal("tied tallies must order deterministically")
		}
	}
	if first.TopCities[0].City != "AUSTIN" {
		t.Errorf("tie should break alphabetically, got %q first", first.TopCities[0].City)
	}
}

// pkg/match/aggregate.go
package match

import "sort"

// Summary rolls the match results into KPI figures for presentation. It is a
// pure reduction over the result set and carries no further logic.
type Summary struct {
	TotalMail     int
	Matched       int
	Unmatched     int
	MatchRate     float64
	AvgConfidence float64

	UnitMismatches int
	UnitMissing    int
	NoUnitInfo     int

	TopCities []CityCount
	TopZips   []ZipCount
}

// CityCount is a matched-records tally for one city.
type CityCount struct {
	City  string
	State string
	Count int
}

// ZipCount is a matched-records tally for one ZIP.
type ZipCount struct {
	Zip   string
	Count int
}

const topListSize = 5

// Aggregate computes summary KPIs over the full result set. City and ZIP
// tallies only count accepted matches.
func Aggregate(results []MatchResult) Summary {
	s := Summary{TotalMail: len(results)}

	cities := make(map[CityCount]int)
	zips := make(map[string]int)
	confidenceTotal := 0

	for _, r := range results {
		if !r.Matched() {
			s.Unmatched++
			continue
		}
		s.Matched++
		confidenceTotal += r.Best.Confidence

		switch r.Best.MatchNote {
		case NoteUnitMismatch:
			s.UnitMismatches++
		case NoteUnitMissing:
			s.UnitMissing++
		case NoteNoUnitInfo:
			s.NoUnitInfo++
		}

		addr := r.Best.Mail.Addr
		cities[CityCount{City: addr.City, State: addr.State}]++
		zips[addr.Zip]++
	}

	if s.TotalMail > 0 {
		s.MatchRate = float64(s.Matched) / float64(s.TotalMail)
	}
	if s.Matched > 0 {
		s.AvgConfidence = float64(confidenceTotal) / float64(s.Matched)
	}

	s.TopCities = topCities(cities)
	s.TopZips = topZips(zips)
	return s
}

// Sorted by count descending, then name, so the dashboard is deterministic.
func topCities(tallies map[CityCount]int) []CityCount {
	out := make([]CityCount, 0, len(tallies))
	for key, count := range tallies {
		key.Count = count
		out = append(out, key)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].City != out[j].City {
			return out[i].City < out[j].City
		}
		return out[i].State < out[j].State
	})
	if len(out) > topListSize {
		out = out[:topListSize]
	}
	return out
}

func topZips(tallies map[string]int) []ZipCount {
	out := make([]ZipCount, 0, len(tallies))
	for zip, count := range tallies {
		out = append(out, ZipCount{Zip: zip, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Zip < out[j].Zip
	})
	if len(out) > topListSize {
		out = out[:topListSize]
	}
	return out
}

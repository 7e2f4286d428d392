// pkg/match/matcher.go
package match

import (
	"go.uber.org/zap"

	"github.com/clapenergy/mailtrace-render-starter/pkg/model"
	"github.com/clapenergy/mailtrace-render-starter/pkg/normalize"
)

// Candidates holds one mail-history record together with every CRM record
// that shares its address key, in CRM extraction order.
type Candidates struct {
	Mail Record
	CRM  []Record
}

// Matcher pairs records from the two datasets by exact address key. No
// fuzzy or partial-key matching is performed: a record whose key has any
// empty required component is unmatched regardless of partial similarity.
type Matcher struct {
	logger *zap.Logger
}

// NewMatcher creates a new matcher.
func NewMatcher(logger *zap.Logger) *Matcher {
	return &Matcher{logger: logger}
}

// BuildRecords normalizes every row of a dataset under its mapping.
func BuildRecords(ds *model.Dataset, mapping model.ColumnMapping) []Record {
	records := make([]Record, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		records = append(records, Record{
			Raw:  row,
			Addr: normalize.Normalize(row, mapping),
		})
	}
	return records
}

// Match looks up each mail record's address key in an index over the CRM
// records. Every CRM record sharing the key becomes a candidate; duplicate
// mail rows are matched independently, and the input is never deduplicated.
func (m *Matcher) Match(mail, crm []Record) []Candidates {
	index := make(map[string][]Record)
	indexed := 0
	for _, rec := range crm {
		key := rec.Addr.Key()
		if key == "" {
			continue
		}
		index[key] = append(index[key], rec)
		indexed++
	}

	results := make([]Candidates, 0, len(mail))
	for _, rec := range mail {
		c := Candidates{Mail: rec}
		if key := rec.Addr.Key(); key != "" {
			c.CRM = index[key]
		}
		results = append(results, c)
	}

	m.logger.Debug("Matched datasets",
		zap.Int("mailRecords", len(mail)),
		zap.Int("crmRecordsIndexed", indexed),
		zap.Int("crmKeys", len(index)))

	return results
}

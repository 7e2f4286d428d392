// pkg/csvio/write.go
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/clapenergy/mailtrace-render-starter/pkg/match"
	"github.com/clapenergy/mailtrace-render-starter/pkg/model"
)

// Export column order. Mail and CRM address cells carry the original raw
// values, not the normalized forms, so the download remains recognizable to
// whoever produced the files.
var exportHeaders = []string{
	"mail_street", "mail_unit", "mail_city", "mail_state", "mail_zip",
	"crm_street", "crm_unit", "crm_city", "crm_state", "crm_zip",
	"status", "confidence", "match_note",
}

// WriteResults serializes the full result set as the downloadable CSV.
// Unmatched records leave the CRM cells and confidence empty; match_note is
// populated only with the scorer's annotations and stays blank otherwise.
func WriteResults(w io.Writer, results []match.MatchResult, mailMapping, crmMapping model.ColumnMapping) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeaders); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, r := range results {
		row := make([]string, 0, len(exportHeaders))
		row = append(row, rawFields(r.Mail.Raw, mailMapping)...)

		if r.Matched() {
			row = append(row, rawFields(r.Best.CRM.Raw, crmMapping)...)
			row = append(row,
				string(r.Status),
				strconv.Itoa(r.Best.Confidence),
				r.Best.MatchNote)
		} else {
			row = append(row, "", "", "", "", "")
			row = append(row, string(r.Status), "", "")
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func rawFields(rec model.RawRecord, mapping model.ColumnMapping) []string {
	return []string{
		rec.Field(mapping, model.FieldStreet),
		rec.Field(mapping, model.FieldUnit),
		rec.Field(mapping, model.FieldCity),
		rec.Field(mapping, model.FieldState),
		rec.Field(mapping, model.FieldZip),
	}
}

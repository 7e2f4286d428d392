// pkg/csvio/read.go
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/clapenergy/mailtrace-render-starter/pkg/model"
)

// Read parses CSV content into an in-memory Dataset. The first row is the
// header; every cell stays a string. Ragged rows are tolerated: short rows
// leave trailing columns empty, long rows drop spill-over cells. Nothing is
// written anywhere; the dataset lives only as long as the request.
func Read(r io.Reader, name string) (*model.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("dataset %q is empty", name)
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	// Excel exports routinely prefix the first header with a UTF-8 BOM.
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	ds := &model.Dataset{Name: name, Headers: headers}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(ds.Rows)+2, err)
		}

		values := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				values[header] = row[i]
			} else {
				values[header] = ""
			}
		}
		ds.Rows = append(ds.Rows, model.RawRecord{
			Index:  len(ds.Rows),
			Values: values,
		})
	}

	return ds, nil
}

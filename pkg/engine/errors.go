// pkg/engine/errors.go
package engine

import (
	"errors"
	"fmt"

	"github.com/clapenergy/mailtrace-render-starter/pkg/model"
)

// MappingIncompleteError reports that required logical fields have no
// confirmed column for a dataset. It is the only dataset-level failure the
// engine distinguishes: the caller must collect a mapping from the user and
// retry. Per-row anomalies never surface as errors.
type MappingIncompleteError struct {
	Dataset string
	Missing []model.Field
}

func (e *MappingIncompleteError) Error() string {
	return fmt.Sprintf("dataset %q is missing column mappings for required fields %v", e.Dataset, e.Missing)
}

// IsMappingIncomplete reports whether err is a MappingIncompleteError.
func IsMappingIncomplete(err error) bool {
	var target *MappingIncompleteError
	return errors.As(err, &target)
}

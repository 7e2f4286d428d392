// pkg/detect/detect.go
package detect

import (
	"strings"

	"go.uber.org/zap"

	"github.com/clapenergy/mailtrace-render-starter/pkg/model"
)

// Config provides tuning knobs for column detection.
type Config struct {
	// Number of data rows sampled for value-shape checks.
	SampleSize int
	// Minimum combined confidence before a column is mapped at all.
	// Fields that stay below this are left unmapped for the user to
	// resolve; that is a deferred decision, not an error.
	MinConfidence float64
	// Header synonym lists, overridable via LoadSynonyms.
	Synonyms Synonyms
}

// DefaultConfig returns the default detection configuration.
func DefaultConfig() Config {
	return Config{
		SampleSize:    20,
		MinConfidence: 0.35,
		Synonyms:      DefaultSynonyms(),
	}
}

// Guess is the detector's best mapping for one dataset, with a per-field
// confidence so the UI can flag weak guesses for manual confirmation.
// Unmapped fields carry confidence 0.
type Guess struct {
	Mapping    model.ColumnMapping
	Confidence map[model.Field]float64
}

// LowConfidence lists the required fields whose guess sits below the given
// threshold, including fields that could not be mapped at all.
func (g Guess) LowConfidence(threshold float64) []model.Field {
	var weak []model.Field
	for _, field := range model.RequiredFields() {
		if g.Confidence[field] < threshold {
			weak = append(weak, field)
		}
	}
	return weak
}

// Detector guesses which dataset columns hold each logical address field.
// Detection is a pure function of the header row and a bounded row sample;
// it never mutates the dataset.
type Detector struct {
	config Config
	logger *zap.Logger
}

// NewDetector creates a detector with default configuration.
func NewDetector(logger *zap.Logger) *Detector {
	return NewDetectorWithConfig(logger, DefaultConfig())
}

// NewDetectorWithConfig creates a detector with custom configuration.
func NewDetectorWithConfig(logger *zap.Logger, config Config) *Detector {
	if config.SampleSize <= 0 {
		config.SampleSize = DefaultConfig().SampleSize
	}
	if config.Synonyms == nil {
		config.Synonyms = DefaultSynonyms()
	}
	return &Detector{config: config, logger: logger}
}

// Fields with decisive value shapes are resolved first so that, for example,
// a lone "st" header lands on state before the street pass can claim it.
var detectionOrder = []model.Field{
	model.FieldZip,
	model.FieldState,
	model.FieldStreet,
	model.FieldUnit,
	model.FieldCity,
}

// Detect produces the best-guess column mapping for a dataset. Each column
// is claimed by at most one field.
func (d *Detector) Detect(ds *model.Dataset) Guess {
	sample := d.sampleColumns(ds)
	used := make(map[string]bool)
	guess := Guess{
		Mapping:    model.ColumnMapping{},
		Confidence: make(map[model.Field]float64, len(detectionOrder)),
	}

	for _, field := range detectionOrder {
		column, confidence := d.bestColumn(field, ds.Headers, sample, used)
		if column == "" || confidence < d.config.MinConfidence {
			guess.Confidence[field] = 0
			continue
		}
		guess.Mapping[field] = column
		guess.Confidence[field] = confidence
		used[column] = true
	}

	d.logger.Debug("Column detection complete",
		zap.String("dataset", ds.Name),
		zap.Any("mapping", guess.Mapping))

	return guess
}

// bestColumn scores every unclaimed header for a field and returns the
// winner. Header evidence dominates; value shapes break ties and rescue
// columns whose headers are unhelpful.
func (d *Detector) bestColumn(
	field model.Field,
	headers []string,
	sample map[string][]string,
	used map[string]bool,
) (string, float64) {
	bestColumn := ""
	bestScore := 0.0

	for _, header := range headers {
		if used[header] {
			continue
		}

		exact, headerScore := d.headerScore(field, header)
		score := headerScore
		if ratio, ok := shapeRatio(field, sample[header]); ok {
			score = 0.6*headerScore + 0.4*ratio
			// A non-exact header whose values clearly fail the shape
			// probe is almost always a false positive ("street"
			// matching the "st" state synonym).
			if !exact && ratio < 0.3 {
				score *= 0.4
			}
		}

		if score > bestScore {
			bestColumn = header
			bestScore = score
		}
	}

	return bestColumn, bestScore
}

// headerScore rates a header against the field's synonym list on a 0..1
// scale. Exact matches score 1; substring hits score by synonym rank, so
// "address1" outranks "line1" for the street field.
func (d *Detector) headerScore(field model.Field, header string) (exact bool, score float64) {
	h := strings.ToLower(strings.TrimSpace(header))
	synonyms := d.config.Synonyms[field]

	for i, syn := range synonyms {
		if h == syn {
			return true, 1.0
		}
		if strings.Contains(h, syn) {
			rank := float64(10-i) / 10.0
			if rank < 0.1 {
				rank = 0.1
			}
			if rank > score {
				score = rank
			}
		}
	}
	return false, score
}

// sampleColumns collects up to SampleSize values per column.
func (d *Detector) sampleColumns(ds *model.Dataset) map[string][]string {
	n := d.config.SampleSize
	if n > len(ds.Rows) {
		n = len(ds.Rows)
	}

	sample := make(map[string][]string, len(ds.Headers))
	for _, header := range ds.Headers {
		values := make([]string, 0, n)
		for _, row := range ds.Rows[:n] {
			values = append(values, row.Get(header))
		}
		sample[header] = values
	}
	return sample
}

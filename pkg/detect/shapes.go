// pkg/detect/shapes.go
package detect

import (
	"regexp"
	"strings"

	"github.com/clapenergy/mailtrace-render-starter/pkg/model"
	"github.com/clapenergy/mailtrace-render-starter/pkg/normalize"
)

// Value-shape probes used to break header ties and to find columns whose
// headers say nothing useful. Each returns whether a single cell value looks
// like the field in question.
var (
	zipShape            = regexp.MustCompile(`^\d{5}(?:-\d{4})?$`)
	streetShape         = regexp.MustCompile(`^\d{1,6}\s+\S+`)
	unitDesignatorShape = regexp.MustCompile(`(?i)^(?:apt|apartment|suite|ste|unit|bldg|floor|fl|room|rm|#)\.?\s*#?\s*[a-z0-9-]{1,6}$`)
)

func looksLikeZip(v string) bool {
	return zipShape.MatchString(strings.TrimSpace(v))
}

func looksLikeState(v string) bool {
	return normalize.IsStateCode(v)
}

func looksLikeStreet(v string) bool {
	return streetShape.MatchString(strings.TrimSpace(v))
}

// Unit cells either carry an explicit designator ("Apt 4B") or are very
// short alphanumeric tokens ("2", "4B"). Anything longer is more likely a
// second address line or a city leak.
func looksLikeUnit(v string) bool {
	s := strings.TrimSpace(v)
	if s == "" {
		return false
	}
	if unitDesignatorShape.MatchString(s) {
		return true
	}
	if len(s) > 4 {
		return false
	}
	for _, r := range s {
		if !(r >= '0' && r <= '9') && !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

var shapeChecks = map[model.Field]func(string) bool{
	model.FieldZip:    looksLikeZip,
	model.FieldState:  looksLikeState,
	model.FieldStreet: looksLikeStreet,
	model.FieldUnit:   looksLikeUnit,
}

// shapeRatio returns the fraction of non-empty sampled values that match the
// field's shape probe. The second return is false when the field has no
// probe (city) or the sample holds no usable values.
func shapeRatio(field model.Field, values []string) (float64, bool) {
	check, ok := shapeChecks[field]
	if !ok {
		return 0, false
	}

	total, hits := 0, 0
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		total++
		if check(v) {
			hits++
		}
	}
	if total == 0 {
		return 0, false
	}
	return float64(hits) / float64(total), true
}

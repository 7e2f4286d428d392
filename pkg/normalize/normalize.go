// pkg/normalize/normalize.go
package normalize

import (
	"strings"

	"github.com/clapenergy/mailtrace-render-starter/pkg/model"
)

// Normalize derives the canonical structured address for one record under a
// confirmed column mapping. It never fails: unparseable components degrade to
// empty values and the caller decides eligibility from the resulting key.
// Normalization is deterministic, so identical raw input always yields an
// identical NormalizedAddress.
func Normalize(rec model.RawRecord, mapping model.ColumnMapping) model.NormalizedAddress {
	addr := model.NormalizedAddress{
		City:  CityName(rec.Field(mapping, model.FieldCity)),
		State: StateCode(rec.Field(mapping, model.FieldState)),
		Zip:   ZipCode(rec.Field(mapping, model.FieldZip)),
	}

	var inline *model.Unit
	addr.StreetNumber, addr.StreetName, inline = StreetParts(rec.Field(mapping, model.FieldStreet))

	// A dedicated unit column wins when it carries a value; otherwise fall
	// back to a unit embedded in the street string. Mail exports commonly
	// lack a unit column entirely, which is why the inline form matters.
	if column, ok := mapping.Column(model.FieldUnit); ok {
		addr.Unit = ParseUnit(rec.Get(column))
	}
	if addr.Unit == nil {
		addr.Unit = inline
	}

	return addr
}

// StreetParts splits a raw street string into its leading house number, the
// canonicalized street name, and any trailing inline unit designation.
func StreetParts(raw string) (number, name string, unit *model.Unit) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", "", nil
	}

	s, unit = splitInlineUnit(s)

	tokens := strings.Fields(scrub(s))
	if len(tokens) > 0 && tokens[0] != "" && tokens[0][0] >= '0' && tokens[0][0] <= '9' {
		number = tokens[0]
		tokens = tokens[1:]
	}

	for i, token := range tokens {
		if abbr, ok := directionals[token]; ok {
			tokens[i] = abbr
			continue
		}
		if abbr, ok := streetSuffixes[token]; ok {
			tokens[i] = abbr
		}
	}

	return number, strings.Join(tokens, " "), unit
}

// CityName uppercases and squashes a city value, dropping punctuation so
// "St. Louis" and "ST LOUIS" compare equal.
func CityName(raw string) string {
	return strings.Join(strings.Fields(scrub(strings.ToUpper(raw))), " ")
}

// ZipCode keeps the leading digit run of a zip value, truncating ZIP+4 to
// five digits. Anything shorter than five digits is unusable and comes back
// empty.
func ZipCode(raw string) string {
	s := strings.TrimSpace(raw)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end < 5 {
		return ""
	}
	return s[:5]
}

// scrub replaces every non-alphanumeric rune with a space. Hyphens count as
// separators here: "FORTY-SECOND" tokenizes the same as "FORTY SECOND".
func scrub(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

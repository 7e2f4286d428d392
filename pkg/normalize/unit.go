// pkg/normalize/unit.go
package normalize

import (
	"regexp"
	"strings"

	"github.com/clapenergy/mailtrace-render-starter/pkg/model"
)

// unitPattern matches a trailing unit designation in either the worded form
// ("Apt 4B", "Suite #300") or the bare hash form ("#12"). Anchored at the end
// of the string so street names containing designator words mid-string are
// left alone.
var unitPattern = regexp.MustCompile(
	`(?i)(?:^|[\s,.-])(?:(APARTMENT|APT|SUITE|STE|UNIT|BLDG|FLOOR|FL|ROOM|RM)\.?\s*#?\s*([A-Za-z0-9-]+)|#\s*([A-Za-z0-9-]+))\s*$`)

// ParseUnit canonicalizes a dedicated unit-column value. Designators all
// collapse to UNIT; the value survives verbatim apart from trimming and
// uppercasing. Values with no recognizable designator ("2B", "B-2") are
// treated as bare unit values. Empty or unusable input yields nil.
func ParseUnit(raw string) *model.Unit {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if m := unitPattern.FindStringSubmatch(s); m != nil {
		value := m[2]
		if value == "" {
			value = m[3]
		}
		if value != "" {
			return &model.Unit{
				Designator: CanonicalUnitDesignator,
				Value:      strings.ToUpper(value),
			}
		}
	}
	// A lone designator with no value ("Apt", "#") is not a usable unit.
	if _, ok := unitDesignators[strings.Trim(strings.ToUpper(s), " .")]; ok {
		return nil
	}

	// No designator found; keep whatever alphanumeric content remains.
	var b strings.Builder
	for _, r := range s {
		if r == '-' ||
			(r >= '0' && r <= '9') ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return nil
	}
	return &model.Unit{
		Designator: CanonicalUnitDesignator,
		Value:      strings.ToUpper(b.String()),
	}
}

// splitInlineUnit strips a trailing unit designation from a street string and
// returns the remaining street together with the parsed unit. Returns the
// input unchanged and a nil unit when no trailing designation exists.
func splitInlineUnit(street string) (string, *model.Unit) {
	loc := unitPattern.FindStringSubmatchIndex(street)
	if loc == nil {
		return street, nil
	}
	value := submatch(street, loc, 2)
	if value == "" {
		value = submatch(street, loc, 3)
	}
	if value == "" {
		return street, nil
	}
	rest := strings.TrimRight(street[:loc[0]], " ,.-")
	return rest, &model.Unit{
		Designator: CanonicalUnitDesignator,
		Value:      strings.ToUpper(value),
	}
}

func submatch(s string, loc []int, group int) string {
	start, end := loc[2*group], loc[2*group+1]
	if start < 0 {
		return ""
	}
	return s[start:end]
}

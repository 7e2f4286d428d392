// pkg/normalize/states.go
package normalize

import "strings"

var stateCodes = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"CT": true, "DC": true, "DE": true, "FL": true, "GA": true, "HI": true,
	"IA": true, "ID": true, "IL": true, "IN": true, "KS": true, "KY": true,
	"LA": true, "MA": true, "MD": true, "ME": true, "MI": true, "MN": true,
	"MO": true, "MS": true, "MT": true, "NC": true, "ND": true, "NE": true,
	"NH": true, "NJ": true, "NM": true, "NV": true, "NY": true, "OH": true,
	"OK": true, "OR": true, "PA": true, "RI": true, "SC": true, "SD": true,
	"TN": true, "TX": true, "UT": true, "VA": true, "VT": true, "WA": true,
	"WI": true, "WV": true, "WY": true, "PR": true,
}

var stateNames = map[string]string{
	"ALABAMA": "AL", "ALASKA": "AK", "ARIZONA": "AZ", "ARKANSAS": "AR",
	"CALIFORNIA": "CA", "COLORADO": "CO", "CONNECTICUT": "CT",
	"DELAWARE": "DE", "FLORIDA": "FL", "GEORGIA": "GA", "HAWAII": "HI",
	"IDAHO": "ID", "ILLINOIS": "IL", "INDIANA": "IN", "IOWA": "IA",
	"KANSAS": "KS", "KENTUCKY": "KY", "LOUISIANA": "LA", "MAINE": "ME",
	"MARYLAND": "MD", "MASSACHUSETTS": "MA", "MICHIGAN": "MI",
	"MINNESOTA": "MN", "MISSISSIPPI": "MS", "MISSOURI": "MO",
	"MONTANA": "MT", "NEBRASKA": "NE", "NEVADA": "NV",
	"NEW HAMPSHIRE": "NH", "NEW JERSEY": "NJ", "NEW MEXICO": "NM",
	"NEW YORK": "NY", "NORTH CAROLINA": "NC", "NORTH DAKOTA": "ND",
	"OHIO": "OH", "OKLAHOMA": "OK", "OREGON": "OR", "PENNSYLVANIA": "PA",
	"PUERTO RICO": "PR", "RHODE ISLAND": "RI", "SOUTH CAROLINA": "SC",
	"SOUTH DAKOTA": "SD", "TENNESSEE": "TN", "TEXAS": "TX", "UTAH": "UT",
	"VERMONT": "VT", "VIRGINIA": "VA", "WASHINGTON": "WA",
	"WEST VIRGINIA": "WV", "WISCONSIN": "WI", "WYOMING": "WY",
	"DISTRICT OF COLUMBIA": "DC",
}

// IsStateCode reports whether s is a valid 2-letter US state or territory
// code, ignoring case and surrounding whitespace.
func IsStateCode(s string) bool {
	return stateCodes[strings.ToUpper(strings.TrimSpace(s))]
}

// StateCode canonicalizes a state value to its 2-letter code. Valid codes
// pass through uppercased, full names are looked up, and anything else is
// returned uppercased as-is so a typo still round-trips into output.
func StateCode(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.TrimSuffix(s, ".")
	if stateCodes[s] {
		return s
	}
	if code, ok := stateNames[s]; ok {
		return code
	}
	return s
}

// pkg/normalize/tables.go
package normalize

// Street suffixes are always contracted to their USPS-style abbreviation so
// that both datasets land on the same spelling regardless of which form the
// source used. Tokens already in abbreviated form pass through unchanged.
var streetSuffixes = map[string]string{
	"STREET":    "ST",
	"ROAD":      "RD",
	"AVENUE":    "AVE",
	"AV":        "AVE",
	"BOULEVARD": "BLVD",
	"LANE":      "LN",
	"DRIVE":     "DR",
	"COURT":     "CT",
	"CIRCLE":    "CIR",
	"PARKWAY":   "PKWY",
	"PKWAY":     "PKWY",
	"HIGHWAY":   "HWY",
	"FREEWAY":   "FWY",
	"TERRACE":   "TER",
	"PLACE":     "PL",
	"SQUARE":    "SQ",
	"PLAZA":     "PLZ",
	"TRAIL":     "TRL",
	"ALLEY":     "ALY",
	"COMMON":    "CMN",
	"CENTER":    "CTR",
	"WY":        "WAY",
}

// Directionals are likewise contracted: NORTH -> N, SOUTHWEST -> SW.
var directionals = map[string]string{
	"NORTH":     "N",
	"SOUTH":     "S",
	"EAST":      "E",
	"WEST":      "W",
	"NORTHEAST": "NE",
	"NORTHWEST": "NW",
	"SOUTHEAST": "SE",
	"SOUTHWEST": "SW",
}

// Unit designators all canonicalize to the single token UNIT. The "#" form
// is handled separately during extraction since it glues onto its value.
var unitDesignators = map[string]string{
	"APT":       "UNIT",
	"APARTMENT": "UNIT",
	"SUITE":     "UNIT",
	"STE":       "UNIT",
	"UNIT":      "UNIT",
	"BLDG":      "UNIT",
	"FL":        "UNIT",
	"FLOOR":     "UNIT",
	"RM":        "UNIT",
	"ROOM":      "UNIT",
	"#":         "UNIT",
}

// CanonicalUnitDesignator is the designator every parsed unit ends up with.
const CanonicalUnitDesignator = "UNIT"

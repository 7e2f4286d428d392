// pkg/model/address.go
package model

import "strings"

// Unit is a parsed unit/suite designation. The designator is always the
// canonical token "UNIT" regardless of whether the source said APT, STE or
// "#"; the value is kept verbatim apart from trimming and uppercasing, since
// unit values are frequently alphanumeric ("4B", "B-2") and zero padding can
// be meaningful.
type Unit struct {
	Designator string
	Value      string
}

// Equal compares two unit values case-insensitively. Designators are already
// canonical and do not participate in the comparison.
func (u *Unit) Equal(other *Unit) bool {
	if u == nil || other == nil {
		return u == other
	}
	return strings.EqualFold(u.Value, other.Value)
}

// String renders the unit for display, e.g. "UNIT 4B".
func (u *Unit) String() string {
	if u == nil {
		return ""
	}
	return strings.TrimSpace(u.Designator + " " + u.Value)
}

// NormalizedAddress is the canonical structured form of an address. All
// fields are uppercased; StreetName carries standardized directional and
// suffix abbreviations so "123 MAIN STREET" and "123 Main St" compare equal.
// Unit is nil when no unit information exists anywhere in the record, which
// is distinct from a unit that was present but empty after parsing.
type NormalizedAddress struct {
	StreetNumber string
	StreetName   string
	City         string
	State        string
	Zip          string
	Unit         *Unit
}

// Complete reports whether every component of the address key is populated.
// Incomplete addresses are ineligible for matching; no partial-key matching
// is performed.
func (a NormalizedAddress) Complete() bool {
	return a.StreetNumber != "" && a.StreetName != "" &&
		a.City != "" && a.State != "" && a.Zip != ""
}

// Key returns the five-component address key used for matching. The unit is
// deliberately excluded: unit presence or disagreement must not prevent an
// address-level match, it only drives the confidence penalty. Returns "" for
// incomplete addresses.
func (a NormalizedAddress) Key() string {
	if !a.Complete() {
		return ""
	}
	return strings.Join([]string{
		a.StreetNumber, a.StreetName, a.City, a.State, a.Zip,
	}, "|")
}

// HasUnit reports whether the address carries a usable unit value.
func (a NormalizedAddress) HasUnit() bool {
	return a.Unit != nil && a.Unit.Value != ""
}

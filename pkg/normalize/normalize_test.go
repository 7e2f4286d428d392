// pkg/normalize/normalize_test.go
package normalize

import (
	"testing"

	"github.com/clapenergy/mailtrace-render-starter/pkg/model"
)

func TestStreetParts(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantNumber string
		wantName   string
		wantUnit   string
	}{
		{
			name:       "Plain street",
			raw:        "123 Main St",
			wantNumber: "123",
			wantName:   "MAIN ST",
		},
		{
			name:       "Suffix expansion",
			raw:        "123 Main Street",
			wantNumber: "123",
			wantName:   "MAIN ST",
		},
		{
			name:       "Directional expansion",
			raw:        "123 North Main Street",
			wantNumber: "123",
			wantName:   "N MAIN ST",
		},
		{
			name:       "Avenue variants",
			raw:        "9 Ocean Av",
			wantNumber: "9",
			wantName:   "OCEAN AVE",
		},
		{
			name:       "Trailing apartment",
			raw:        "123 Main St Apt 4B",
			wantNumber: "123",
			wantName:   "MAIN ST",
			wantUnit:   "4B",
		},
		{
			name:       "Trailing hash unit",
			raw:        "123 Main St #12",
			wantNumber: "123",
			wantName:   "MAIN ST",
			wantUnit:   "12",
		},
		{
			name:       "Suite with punctuation",
			raw:        "500 Market Blvd, Ste. 300",
			wantNumber: "500",
			wantName:   "MARKET BLVD",
			wantUnit:   "300",
		},
		{
			name:     "No house number",
			raw:      "Main Street",
			wantName: "MAIN ST",
		},
		{
			name: "Empty",
			raw:  "",
		},
		{
			name:       "Hyphenated name tokenizes like spaced",
			raw:        "10 Forty-Second Street",
			wantNumber: "10",
			wantName:   "FORTY SECOND ST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number, name, unit := StreetParts(tt.raw)
			if number != tt.wantNumber {
				t.Errorf("StreetParts() number = %q, want %q", number, tt.wantNumber)
			}
			if name != tt.wantName {
				t.Errorf("StreetParts() name = %q, want %q", name, tt.wantName)
			}
			gotUnit := ""
			if unit != nil {
				gotUnit = unit.Value
			}
			if gotUnit != tt.wantUnit {
				t.Errorf("StreetParts() unit = %q, want %q", gotUnit, tt.wantUnit)
			}
		})
	}
}

func TestStreetPartsIdempotent(t *testing.T) {
	inputs := []string{
		"123 North Main Street",
		"500 Market Blvd Ste 300",
		"9 OCEAN AVE",
	}
	for _, raw := range inputs {
		number, name, _ := StreetParts(raw)
		again, againName, _ := StreetParts(number + " " + name)
		if again != number || againName != name {
			t.Errorf("StreetParts not idempotent for %q: %q %q -> %q %q",
				raw, number, name, again, againName)
		}
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "Designator and value", raw: "Apt 4B", want: "4B"},
		{name: "Suite", raw: "Suite 300", want: "300"},
		{name: "Hash form", raw: "#12", want: "12"},
		{name: "Bare value", raw: "2B", want: "2B"},
		{name: "Hyphenated bare value", raw: "B-2", want: "B-2"},
		{name: "Lone designator", raw: "Apt", want: ""},
		{name: "Lone hash", raw: "#", want: ""},
		{name: "Empty", raw: "", want: ""},
		{name: "Whitespace only", raw: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := ParseUnit(tt.raw)
			got := ""
			if unit != nil {
				got = unit.Value
			}
			if got != tt.want {
				t.Errorf("ParseUnit(%q) = %q, want %q", tt.raw, got, tt.want)
			}
			if unit != nil && unit.Designator != CanonicalUnitDesignator {
				t.Errorf("ParseUnit(%q) designator = %q, want %q",
					tt.raw, unit.Designator, CanonicalUnitDesignator)
			}
		})
	}
}

func TestUnitColumnAndInlineUnitAgree(t *testing.T) {
	// "Apt 4B" in a dedicated column and "... Apt 4B" appended to the street
	// must produce the same canonical unit.
	fromColumn := ParseUnit("Apt 4B")
	_, _, fromStreet := StreetParts("123 Main St Apt 4B")
	if fromColumn == nil || fromStreet == nil {
		t.Fatal("expected units from both forms")
	}
	if !fromColumn.Equal(fromStreet) {
		t.Errorf("column unit %v != inline unit %v", fromColumn, fromStreet)
	}
}

func TestZipCode(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"94105", "94105"},
		{"94105-1234", "94105"},
		{" 94105 ", "94105"},
		{"941", ""},
		{"", ""},
		{"abcde", ""},
	}
	for _, tt := range tests {
		if got := ZipCode(tt.raw); got != tt.want {
			t.Errorf("ZipCode(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestStateCode(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"CA", "CA"},
		{"ca", "CA"},
		{"California", "CA"},
		{"NEW YORK", "NY"},
		{"District of Columbia", "DC"},
		{"XX", "XX"},
	}
	for _, tt := range tests {
		if got := StateCode(tt.raw); got != tt.want {
			t.Errorf("StateCode(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCityName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"St. Louis", "ST LOUIS"},
		{"ST LOUIS", "ST LOUIS"},
		{"  san  francisco ", "SAN FRANCISCO"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CityName(tt.raw); got != tt.want {
			t.Errorf("CityName(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeEquivalentForms(t *testing.T) {
	mapping := model.ColumnMapping{
		model.FieldStreet: "street",
		model.FieldCity:   "city",
		model.FieldState:  "state",
		model.FieldZip:    "zip",
	}

	verbose := model.RawRecord{Values: map[string]string{
		"street": "123 North Main Street",
		"city":   "Springfield",
		"state":  "Illinois",
		"zip":    "62704-1234",
	}}
	abbreviated := model.RawRecord{Values: map[string]string{
		"street": "123 N MAIN ST",
		"city":   "SPRINGFIELD",
		"state":  "IL",
		"zip":    "62704",
	}}

	a := Normalize(verbose, mapping)
	b := Normalize(abbreviated, mapping)
	if a.Key() == "" {
		t.Fatal("expected a complete key")
	}
	if a.Key() != b.Key() {
		t.Errorf("equivalent forms produced different keys: %q vs %q", a.Key(), b.Key())
	}
}

func TestNormalizeDedicatedUnitColumnWins(t *testing.T) {
	mapping := model.ColumnMapping{
		model.FieldStreet: "street",
		model.FieldUnit:   "unit",
		model.FieldCity:   "city",
		model.FieldState:  "state",
		model.FieldZip:    "zip",
	}
	rec := model.RawRecord{Values: map[string]string{
		"street": "123 Main St Apt 9",
		"unit":   "Suite 300",
		"city":   "Springfield",
		"state":  "IL",
		"zip":    "62704",
	}}

	addr := Normalize(rec, mapping)
	if !addr.HasUnit() || addr.Unit.Value != "300" {
		t.Errorf("expected dedicated unit column to win, got %v", addr.Unit)
	}
}

func TestNormalizeInlineUnitFallback(t *testing.T) {
	mapping := model.ColumnMapping{
		model.FieldStreet: "street",
		model.FieldUnit:   "unit",
		model.FieldCity:   "city",
		model.FieldState:  "state",
		model.FieldZip:    "zip",
	}
	rec := model.RawRecord{Values: map[string]string{
		"street": "123 Main St Apt 9",
		"unit":   "",
		"city":   "Springfield",
		"state":  "IL",
		"zip":    "62704",
	}}

	addr := Normalize(rec, mapping)
	if !addr.HasUnit() || addr.Unit.Value != "9" {
		t.Errorf("expected inline unit fallback, got %v", addr.Unit)
	}
	if addr.StreetName != "MAIN ST" {
		t.Errorf("expected unit stripped from street name, got %q", addr.StreetName)
	}
}

// pkg/model/address_test.go
package model

import "testing"

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		addr NormalizedAddress
		want string
	}{
		{
			name: "Complete address",
			addr: NormalizedAddress{
				StreetNumber: "123", StreetName: "MAIN ST",
				City: "SPRINGFIELD", State: "IL", Zip: "62704",
			},
			want: "123|MAIN ST|SPRINGFIELD|IL|62704",
		},
		{
			name: "Unit does not participate",
			addr: NormalizedAddress{
				StreetNumber: "123", StreetName: "MAIN ST",
				City: "SPRINGFIELD", State: "IL", Zip: "62704",
				Unit: &Unit{Designator: "UNIT", Value: "4B"},
			},
			want: "123|MAIN ST|SPRINGFIELD|IL|62704",
		},
		{
			name: "Missing zip",
			addr: NormalizedAddress{
				StreetNumber: "123", StreetName: "MAIN ST",
				City: "SPRINGFIELD", State: "IL",
			},
			want: "",
		},
		{
			name: "Empty address",
			addr: NormalizedAddress{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnitEqual(t *testing.T) {
	a := &Unit{Designator: "UNIT", Value: "4B"}
	b := &Unit{Designator: "UNIT", Value: "4b"}
	c := &Unit{Designator: "UNIT", Value: "7"}

	if !a.Equal(b) {
		t.Error("unit comparison must be case-insensitive")
	}
	if a.Equal(c) {
		t.Error("different unit values must not compare equal")
	}
	var nilUnit *Unit
	if nilUnit.Equal(a) || a.Equal(nil) {
		t.Error("nil and non-nil units must not compare equal")
	}
	if !nilUnit.Equal(nil) {
		t.Error("two nil units compare equal")
	}
}

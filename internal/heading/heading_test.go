package heading_test

import (
	"testing"

	"airport-etl/internal/heading"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		ident   string
		listed  bool
		valid   bool
		degrees int
	}{
		{"09", true, true, 90},
		{"27", true, true, 270},
		{"36", true, true, 360},
		{"01", true, true, 10},
		{"18L", true, true, 180},
		{"27R", true, true, 270},
		{"04C", true, true, 40},
		{"00", true, false, 0},
		{"00x", true, false, 0},
		{"", false, false, 0},
		{"9", false, false, 0},
		{"N1", false, false, 0},
		{"H1", false, false, 0},
		{"1L", false, false, 0},
		{"ALL", false, false, 0},
	}

	for _, c := range cases {
		h, listed := heading.Decode(c.ident)
		if listed != c.listed {
			t.Errorf("Decode(%q) listed = %v, want %v", c.ident, listed, c.listed)
			continue
		}
		if h.Valid != c.valid || h.Degrees != c.degrees {
			t.Errorf("Decode(%q) = %+v, want {Degrees:%d Valid:%v}", c.ident, h, c.degrees, c.valid)
		}
	}
}

func TestEnds(t *testing.T) {
	ends := heading.Ends("KSEA", "09L", "27R")
	if len(ends) != 2 {
		t.Fatalf("Expected 2 ends, got %d", len(ends))
	}
	if ends[0].Runway != "09L" || ends[0].Heading.Degrees != 90 {
		t.Errorf("Unexpected low end: %+v", ends[0])
	}
	if ends[1].Runway != "27R" || ends[1].Heading.Degrees != 270 {
		t.Errorf("Unexpected high end: %+v", ends[1])
	}

	if got := heading.Ends("EGLL", "", "H1"); len(got) != 0 {
		t.Errorf("Expected no ends for unusable identifiers, got %+v", got)
	}
}

package sample_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"airport-etl/internal/sample"
	"airport-etl/internal/schema"
)

func TestGenerateDeterministic(t *testing.T) {
	var a1, r1, a2, r2 bytes.Buffer
	c1, err := sample.Generate(&a1, &r1, sample.Options{Airports: 20, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	c2, err := sample.Generate(&a2, &r2, sample.Options{Airports: 20, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	if c1 != c2 || a1.String() != a2.String() || r1.String() != r2.String() {
		t.Error("Same seed should produce identical output")
	}
}

func TestGenerateLayout(t *testing.T) {
	var airports, runways bytes.Buffer
	counts, err := sample.Generate(&airports, &runways, sample.Options{Airports: 30, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}

	arecs, err := csv.NewReader(&airports).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	rrecs, err := csv.NewReader(&runways).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(arecs)-1 != counts.Airports || counts.Airports != 30 {
		t.Errorf("Expected 30 airport rows, got %d (counts %d)", len(arecs)-1, counts.Airports)
	}
	if len(rrecs)-1 != counts.Runways {
		t.Errorf("Expected %d runway rows, got %d", counts.Runways, len(rrecs)-1)
	}
	if got := len(arecs[0]); got != len(schema.Airports().Columns) {
		t.Errorf("Airport header has %d columns", got)
	}
	if got := len(rrecs[0]); got != len(schema.Runways().Columns) {
		t.Errorf("Runway header has %d columns", got)
	}
	if counts.HeadingEnds > 2*counts.Runways {
		t.Errorf("HeadingEnds %d exceeds two ends per runway (%d runways)", counts.HeadingEnds, counts.Runways)
	}

	seen := make(map[string]bool)
	for _, rec := range arecs[1:] {
		if seen[rec[0]] {
			t.Errorf("Duplicate airport id %s", rec[0])
		}
		seen[rec[0]] = true
	}
}

package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"airport-etl/internal/engine"
	"airport-etl/internal/schema"
)

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runways.csv")
	content := "\ufeffid,le_ident,lighted,extra\n1,09L,1,x\n2,,0\n3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rows, err := engine.ReadCSV(path, schema.Runways())
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	// Column order follows schema.Runways: id=0, lighted=6, le_ident=8.
	first := rows[0].Values
	if first[0] != int64(1) || first[8] != "09L" || first[6] != true {
		t.Errorf("Unexpected first row: %v", first)
	}
	if first[1] != nil || first[13] != nil {
		t.Errorf("Columns without a header should be nil: %v", first)
	}
	if rows[1].Values[8] != nil || rows[1].Values[6] != false {
		t.Errorf("Unexpected second row: %v", rows[1].Values)
	}
	if rows[2].Values[0] != int64(3) || rows[2].Values[6] != nil {
		t.Errorf("Short record should pad with nil: %v", rows[2].Values)
	}
	if rows[0].Line != 2 || rows[2].Line != 4 {
		t.Errorf("Unexpected line numbers: %d, %d", rows[0].Line, rows[2].Line)
	}
}

func TestReadCSVEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airports.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	rows, err := engine.ReadCSV(path, schema.Airports())
	if err != nil || len(rows) != 0 {
		t.Errorf("Expected no rows and no error, got %d, %v", len(rows), err)
	}
}

func TestReadCSVBareQuotes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airports.csv")
	content := "id,ident,name\n1,AAAA,Bob's \"Big\" Field\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rows, err := engine.ReadCSV(path, schema.Airports())
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	// Column order follows schema.Airports: id=0, ident=1, name=3.
	if len(rows) != 1 || rows[0].Values[3] != `Bob's "Big" Field` {
		t.Errorf("Unexpected rows: %v", rows)
	}
}

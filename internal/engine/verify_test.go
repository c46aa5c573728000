package engine_test

import (
	"context"
	"testing"

	"airport-etl/internal/dialect"
	"airport-etl/internal/engine"
	"airport-etl/internal/schema"
)

func TestVerify(t *testing.T) {
	db := openStore(t)
	d := &dialect.SQLiteDialect{}
	if _, err := load(t, db, writeSources(t, airportsCSV, runwaysCSV), true); err != nil {
		t.Fatalf("Run: %v", err)
	}

	report, err := engine.Verify(context.Background(), db, d, schema.Tables())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if len(report.Tables) != 2 {
		t.Fatalf("Expected 2 tables, got %d", len(report.Tables))
	}
	if report.Tables[0].Actual != 3 || report.Tables[1].Actual != 6 {
		t.Errorf("Unexpected counts: %+v", report.Tables)
	}
	if !report.ViewExists || report.ViewRows != 7 || report.ExpectedViewRows != 7 || report.ViewStatus != "OK" {
		t.Errorf("Unexpected view report: %+v", report)
	}
}

func TestVerifyEmptyStore(t *testing.T) {
	db := openStore(t)
	report, err := engine.Verify(context.Background(), db, &dialect.SQLiteDialect{}, schema.Tables())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	for _, r := range report.Tables {
		if r.Status != "MISSING" {
			t.Errorf("Expected %s MISSING, got %s", r.TableName, r.Status)
		}
	}
	if report.ViewExists || report.ViewStatus != "MISSING" {
		t.Errorf("Unexpected view report: %+v", report)
	}
}

func TestVerifyWithoutView(t *testing.T) {
	db := openStore(t)
	opts := engine.Options{Reset: true, Sources: writeSources(t, airportsCSV, runwaysCSV)}
	if _, err := engine.Run(context.Background(), db, &dialect.SQLiteDialect{}, schema.Tables(), opts, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	report, err := engine.Verify(context.Background(), db, &dialect.SQLiteDialect{}, schema.Tables())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if report.ViewExists {
		t.Error("View should not exist when CreateView is off")
	}
	if report.Tables[1].Status != "OK" {
		t.Errorf("Unexpected runways status: %+v", report.Tables[1])
	}
}

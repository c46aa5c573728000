package engine

import (
	"context"
	"database/sql"
	"fmt"

	"airport-etl/internal/dialect"
	"airport-etl/internal/heading"
	"airport-etl/internal/schema"
)

// Report is the outcome of Verify.
type Report struct {
	Tables []schema.LoadResult

	ViewExists       bool
	ViewRows         int
	ExpectedViewRows int
	ViewStatus       string
}

// Verify counts the rows of every table and checks the heading view against
// the runway identifiers decoded in Go.
func Verify(ctx context.Context, db *sql.DB, d dialect.Dialect, tables []*schema.Table) (*Report, error) {
	report := &Report{}

	for _, t := range tables {
		res := schema.LoadResult{TableName: t.Name, Status: "OK"}
		found, err := exists(ctx, db, d.TableExistsQuery(), t.Name)
		if err != nil {
			return nil, err
		}
		if !found {
			res.Status = "MISSING"
			res.ErrorMsg = "table does not exist"
		} else {
			if res.Actual, err = count(ctx, db, d, t.Name); err != nil {
				return nil, err
			}
			if res.Actual == 0 {
				res.Status = "EMPTY"
			}
		}
		report.Tables = append(report.Tables, res)
	}

	found, err := exists(ctx, db, d.ViewExistsQuery(), schema.HeadingsView)
	if err != nil {
		return nil, err
	}
	report.ViewExists = found
	if !found {
		report.ViewStatus = "MISSING"
		return report, nil
	}

	if report.ViewRows, err = count(ctx, db, d, schema.HeadingsView); err != nil {
		return nil, err
	}
	if report.ExpectedViewRows, err = expectedHeadings(ctx, db); err != nil {
		return nil, err
	}
	report.ViewStatus = "OK"
	if report.ViewRows != report.ExpectedViewRows {
		report.ViewStatus = fmt.Sprintf("MISMATCH: %d/%d", report.ViewRows, report.ExpectedViewRows)
	}
	return report, nil
}

// expectedHeadings counts the distinct (airport, runway, heading) tuples the
// view should contain.
func expectedHeadings(ctx context.Context, db *sql.DB) (int, error) {
	query := fmt.Sprintf("SELECT airport_ident, le_ident, he_ident FROM %s", schema.RunwaysTable)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("query runways: %w", err)
	}
	defer rows.Close()

	type key struct {
		airport sql.NullString
		end     heading.End
	}
	seen := make(map[key]bool)
	for rows.Next() {
		var airport, le, he sql.NullString
		if err := rows.Scan(&airport, &le, &he); err != nil {
			return 0, fmt.Errorf("scan runway: %w", err)
		}
		for _, end := range heading.Ends(airport.String, le.String, he.String) {
			end.Airport = ""
			seen[key{airport: airport, end: end}] = true
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("error iterating runways: %w", err)
	}
	return len(seen), nil
}

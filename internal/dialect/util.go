package dialect

import (
	"fmt"
	"strings"

	"airport-etl/internal/schema"
)

// GeneratePlaceholders is a helper function to create a slice of placeholder strings.
// It takes the number of placeholders needed and a function that returns the placeholder for a given index.
// It returns a comma-separated string of the generated placeholders.
func GeneratePlaceholders(count int, placeholderFunc func(int) string) string {
	placeholders := make([]string, count)
	for i := 0; i < count; i++ {
		placeholders[i] = placeholderFunc(i)
	}
	return strings.Join(placeholders, ", ")
}

// DefaultInsertQuery builds a plain INSERT. Conflicts are never ignored: a
// duplicate key must fail the load.
func DefaultInsertQuery(table string, cols []string, placeholder func(int) string) string {
	vals := GeneratePlaceholders(len(cols), placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), vals)
}

func DefaultCountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
}

// BuildCreateTable renders CREATE TABLE with the dialect's column types. The
// foreign key clauses are only emitted when withFK is set.
func BuildCreateTable(t *schema.Table, columnType func(schema.ColumnType) string, withFK bool) string {
	var defs []string
	for _, c := range t.Columns {
		def := fmt.Sprintf("%s %s", c.Name, columnType(c.Type))
		if c.IsPK {
			def += " PRIMARY KEY"
		}
		defs = append(defs, def)
	}
	if withFK {
		for _, fk := range t.ForeignKeys {
			defs = append(defs, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s(%s)", fk.Column, fk.RefTable, fk.RefColumn))
		}
	}
	return fmt.Sprintf("CREATE TABLE %s (\n    %s\n)", t.Name, strings.Join(defs, ",\n    "))
}

// headingExpr holds the dialect-specific pieces of the runway_headings view.
type headingExpr struct {
	// match is a predicate: the identifier starts with two decimal digits.
	match func(col string) string
	// prefix converts the two leading characters to an integer.
	prefix func(col string) string
	// ordered appends ORDER BY airport_icao, runway.
	ordered bool
}

// buildHeadingView renders the view selecting every runway end (low and high)
// whose identifier starts with two digits. A "00" prefix yields a NULL heading.
func buildHeadingView(e headingExpr) string {
	end := func(col string) string {
		n := e.prefix("r." + col)
		return fmt.Sprintf(`SELECT
    r.airport_ident AS airport_icao,
    r.%[1]s AS runway,
    CASE
        WHEN %[2]s > 0
        THEN %[2]s * 10
        ELSE NULL
    END AS heading_degrees
FROM %[3]s r
WHERE r.%[1]s IS NOT NULL AND %[4]s`, col, n, schema.RunwaysTable, e.match("r."+col))
	}

	q := fmt.Sprintf("CREATE VIEW %s AS\n%s\nUNION\n%s", schema.HeadingsView, end("le_ident"), end("he_ident"))
	if e.ordered {
		q += "\nORDER BY airport_icao, runway"
	}
	return q
}

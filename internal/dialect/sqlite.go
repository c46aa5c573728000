package dialect

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"airport-etl/internal/schema"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteDialect targets a single-file store through the pure-Go modernc driver.
// Foreign keys are declared but SQLite does not enforce them unless the
// connection enables them, so dangling airport_ref values load fine.
type SQLiteDialect struct{}

func (d *SQLiteDialect) Name() string { return "sqlite" }

func (d *SQLiteDialect) columnType(t schema.ColumnType) string {
	switch t {
	case schema.Integer:
		return "INTEGER"
	case schema.Real:
		return "REAL"
	case schema.Boolean:
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}

func (d *SQLiteDialect) CreateTableQuery(t *schema.Table) string {
	return BuildCreateTable(t, d.columnType, true)
}

func (d *SQLiteDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
}

func (d *SQLiteDialect) CreateHeadingViewQuery() string {
	return buildHeadingView(headingExpr{
		match: func(col string) string {
			return fmt.Sprintf("SUBSTR(%s, 1, 2) GLOB '[0-9][0-9]'", col)
		},
		prefix: func(col string) string {
			return fmt.Sprintf("CAST(SUBSTR(%s, 1, 2) AS INTEGER)", col)
		},
		ordered: true,
	})
}

func (d *SQLiteDialect) DropViewQuery(view string) string {
	return fmt.Sprintf("DROP VIEW IF EXISTS %s", view)
}

func (d *SQLiteDialect) TableExistsQuery() string {
	return `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`
}

func (d *SQLiteDialect) ViewExistsQuery() string {
	return `SELECT COUNT(*) FROM sqlite_master WHERE type = 'view' AND name = ?`
}

func (d *SQLiteDialect) BeforeLoad(tx *sql.Tx) error { return nil }

func (d *SQLiteDialect) AfterLoad(tx *sql.Tx) error { return nil }

func (d *SQLiteDialect) InsertQuery(table string, cols []string) string {
	return DefaultInsertQuery(table, cols, d.Placeholder)
}

func (d *SQLiteDialect) CountQuery(table string) string {
	return DefaultCountQuery(table)
}

func (d *SQLiteDialect) Placeholder(index int) string {
	return "?"
}

func (d *SQLiteDialect) IsConstraintViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		// Extended codes keep the primary code in the low byte.
		return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}

// StorePath strips the "file:" scheme and any query parameters from a DSN.
func (d *SQLiteDialect) StorePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == ":memory:" {
		return ""
	}
	return path
}

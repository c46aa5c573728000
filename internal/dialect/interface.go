package dialect

import (
	"database/sql"

	"airport-etl/internal/schema"
)

// Dialect abstracts database-specific operations.
type Dialect interface {
	Name() string

	// DDL
	CreateTableQuery(t *schema.Table) string
	DropTableQuery(table string) string
	CreateHeadingViewQuery() string
	DropViewQuery(view string) string

	// Catalog lookups, each taking the object name as its only argument.
	TableExistsQuery() string
	ViewExistsQuery() string

	// Execution Hooks (Load Level)
	BeforeLoad(tx *sql.Tx) error
	AfterLoad(tx *sql.Tx) error

	// Query Generation
	InsertQuery(table string, cols []string) string
	CountQuery(table string) string
	Placeholder(index int) string // Returns ?, $1, @p1, :1

	// IsConstraintViolation reports whether err is a driver error for a
	// violated key, uniqueness or not-null constraint.
	IsConstraintViolation(err error) bool
}

// FileStore is implemented by dialects whose store is a single local file that
// can be removed to reset it.
type FileStore interface {
	StorePath(dsn string) string
}

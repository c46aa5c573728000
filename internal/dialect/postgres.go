package dialect

import (
	"database/sql"
	"errors"
	"fmt"

	"airport-etl/internal/schema"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// PostgresDialect serves both lib/pq ("postgres") and pgx ("pgx") connections.
type PostgresDialect struct {
	Driver string
}

func (d *PostgresDialect) Name() string {
	if d.Driver != "" {
		return d.Driver
	}
	return "postgres"
}

func (d *PostgresDialect) columnType(t schema.ColumnType) string {
	switch t {
	case schema.Integer:
		return "BIGINT"
	case schema.Real:
		return "DOUBLE PRECISION"
	case schema.Boolean:
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}

// CreateTableQuery leaves out the foreign key. Postgres enforces it
// immediately and disabling triggers needs superuser, so out-of-range
// airport_ref values would abort the load.
func (d *PostgresDialect) CreateTableQuery(t *schema.Table) string {
	return BuildCreateTable(t, d.columnType, false)
}

func (d *PostgresDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)
}

func (d *PostgresDialect) CreateHeadingViewQuery() string {
	return buildHeadingView(headingExpr{
		match: func(col string) string {
			return fmt.Sprintf("%s ~ '^[0-9]{2}'", col)
		},
		prefix: func(col string) string {
			return fmt.Sprintf("CAST(SUBSTRING(%s FROM 1 FOR 2) AS INTEGER)", col)
		},
		ordered: true,
	})
}

func (d *PostgresDialect) DropViewQuery(view string) string {
	return fmt.Sprintf("DROP VIEW IF EXISTS %s", view)
}

func (d *PostgresDialect) TableExistsQuery() string {
	return `SELECT COUNT(*) FROM information_schema.TABLES WHERE TABLE_SCHEMA = current_schema() AND TABLE_TYPE = 'BASE TABLE' AND TABLE_NAME = $1`
}

func (d *PostgresDialect) ViewExistsQuery() string {
	return `SELECT COUNT(*) FROM information_schema.VIEWS WHERE TABLE_SCHEMA = current_schema() AND TABLE_NAME = $1`
}

func (d *PostgresDialect) BeforeLoad(tx *sql.Tx) error { return nil }

func (d *PostgresDialect) AfterLoad(tx *sql.Tx) error { return nil }

func (d *PostgresDialect) InsertQuery(table string, cols []string) string {
	return DefaultInsertQuery(table, cols, d.Placeholder)
}

func (d *PostgresDialect) CountQuery(table string) string {
	return DefaultCountQuery(table)
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

// IsConstraintViolation matches SQLSTATE class 23 (integrity constraint
// violation) from either driver.
func (d *PostgresDialect) IsConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "23"
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return len(pgErr.Code) == 5 && pgErr.Code[:2] == "23"
	}
	return false
}

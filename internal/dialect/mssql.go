package dialect

import (
	"database/sql"
	"errors"
	"fmt"

	"airport-etl/internal/schema"

	mssql "github.com/denisenkom/go-mssqldb" // SQL Server Driver
)

type MSSQLDialect struct{}

// SQL Server error numbers for key and not-null violations.
var mssqlConstraintErrors = map[int32]bool{
	515:  true, // cannot insert NULL
	547:  true, // constraint conflict
	2601: true, // duplicate key row in unique index
	2627: true, // violation of PRIMARY KEY / UNIQUE constraint
}

func (d *MSSQLDialect) Name() string { return "sqlserver" }

func (d *MSSQLDialect) columnType(t schema.ColumnType) string {
	switch t {
	case schema.Integer:
		return "BIGINT"
	case schema.Real:
		return "FLOAT"
	case schema.Boolean:
		return "BIT"
	default:
		return "NVARCHAR(MAX)"
	}
}

func (d *MSSQLDialect) CreateTableQuery(t *schema.Table) string {
	return BuildCreateTable(t, d.columnType, false)
}

func (d *MSSQLDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE %s", table)
}

// CreateHeadingViewQuery has no ORDER BY: T-SQL rejects it inside a view, so
// readers order the result themselves.
func (d *MSSQLDialect) CreateHeadingViewQuery() string {
	return buildHeadingView(headingExpr{
		match: func(col string) string {
			return fmt.Sprintf("%s LIKE '[0-9][0-9]%%'", col)
		},
		prefix: func(col string) string {
			return fmt.Sprintf("CAST(SUBSTRING(%s, 1, 2) AS INT)", col)
		},
		ordered: false,
	})
}

func (d *MSSQLDialect) DropViewQuery(view string) string {
	return fmt.Sprintf("DROP VIEW %s", view)
}

func (d *MSSQLDialect) TableExistsQuery() string {
	return `SELECT COUNT(*) FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_TYPE = 'BASE TABLE' AND TABLE_SCHEMA = SCHEMA_NAME() AND TABLE_NAME = @p1`
}

func (d *MSSQLDialect) ViewExistsQuery() string {
	return `SELECT COUNT(*) FROM INFORMATION_SCHEMA.VIEWS WHERE TABLE_SCHEMA = SCHEMA_NAME() AND TABLE_NAME = @p1`
}

func (d *MSSQLDialect) BeforeLoad(tx *sql.Tx) error { return nil }

func (d *MSSQLDialect) AfterLoad(tx *sql.Tx) error { return nil }

func (d *MSSQLDialect) InsertQuery(table string, cols []string) string {
	return DefaultInsertQuery(table, cols, d.Placeholder)
}

func (d *MSSQLDialect) CountQuery(table string) string {
	return DefaultCountQuery(table)
}

// go-mssqldb prefers @p1, @p2 named parameters over ?.
func (d *MSSQLDialect) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index+1)
}

func (d *MSSQLDialect) IsConstraintViolation(err error) bool {
	var me mssql.Error
	if errors.As(err, &me) {
		return mssqlConstraintErrors[me.Number]
	}
	return false
}

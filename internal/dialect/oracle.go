package dialect

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"airport-etl/internal/schema"

	"github.com/sijms/go-ora/v2/network"
)

type OracleDialect struct{}

// ORA- codes for key and not-null violations.
var oracleConstraintErrors = map[int]bool{
	1:    true, // ORA-00001 unique constraint violated
	1400: true, // ORA-01400 cannot insert NULL
	2291: true, // ORA-02291 parent key not found
}

func (d *OracleDialect) Name() string { return "oracle" }

func (d *OracleDialect) columnType(t schema.ColumnType) string {
	switch t {
	case schema.Integer:
		return "NUMBER(19)"
	case schema.Real:
		return "BINARY_DOUBLE"
	case schema.Boolean:
		return "NUMBER(1)"
	default:
		return "VARCHAR2(4000)"
	}
}

func (d *OracleDialect) CreateTableQuery(t *schema.Table) string {
	return BuildCreateTable(t, d.columnType, false)
}

func (d *OracleDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE %s CASCADE CONSTRAINTS", table)
}

// Oracle stores '' as NULL, so the IS NOT NULL test also drops empty identifiers.
func (d *OracleDialect) CreateHeadingViewQuery() string {
	return buildHeadingView(headingExpr{
		match: func(col string) string {
			return fmt.Sprintf("REGEXP_LIKE(%s, '^[0-9]{2}')", col)
		},
		prefix: func(col string) string {
			return fmt.Sprintf("TO_NUMBER(SUBSTR(%s, 1, 2))", col)
		},
		ordered: true,
	})
}

func (d *OracleDialect) DropViewQuery(view string) string {
	return fmt.Sprintf("DROP VIEW %s", view)
}

// Unquoted identifiers are stored upper case in the data dictionary.
func (d *OracleDialect) TableExistsQuery() string {
	return `SELECT COUNT(*) FROM USER_TABLES WHERE TABLE_NAME = UPPER(:1)`
}

func (d *OracleDialect) ViewExistsQuery() string {
	return `SELECT COUNT(*) FROM USER_VIEWS WHERE VIEW_NAME = UPPER(:1)`
}

func (d *OracleDialect) BeforeLoad(tx *sql.Tx) error { return nil }

func (d *OracleDialect) AfterLoad(tx *sql.Tx) error { return nil }

func (d *OracleDialect) InsertQuery(table string, cols []string) string {
	return DefaultInsertQuery(table, cols, d.Placeholder)
}

func (d *OracleDialect) CountQuery(table string) string {
	return DefaultCountQuery(table)
}

func (d *OracleDialect) Placeholder(index int) string {
	// Oracle uses :1, :2, etc. (1-based index)
	return fmt.Sprintf(":%d", index+1)
}

func (d *OracleDialect) IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	var oe *network.OracleError
	if errors.As(err, &oe) {
		return oracleConstraintErrors[oe.ErrCode]
	}
	return strings.Contains(err.Error(), "ORA-00001")
}

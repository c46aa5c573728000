package dialect

import (
	"database/sql"
	"errors"
	"fmt"

	"airport-etl/internal/schema"

	"github.com/go-sql-driver/mysql"
)

type MysqlDialect struct{}

// MySQL error numbers for key and not-null violations.
var mysqlConstraintErrors = map[uint16]bool{
	1048: true, // ER_BAD_NULL_ERROR
	1062: true, // ER_DUP_ENTRY
	1451: true, // ER_ROW_IS_REFERENCED_2
	1452: true, // ER_NO_REFERENCED_ROW_2
}

func (d *MysqlDialect) Name() string { return "mysql" }

func (d *MysqlDialect) columnType(t schema.ColumnType) string {
	switch t {
	case schema.Integer:
		return "BIGINT"
	case schema.Real:
		return "DOUBLE"
	case schema.Boolean:
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}

// CreateTableQuery declares the foreign key; BeforeLoad switches checks off so
// runways referencing unknown airports still load.
func (d *MysqlDialect) CreateTableQuery(t *schema.Table) string {
	return BuildCreateTable(t, d.columnType, true)
}

func (d *MysqlDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
}

func (d *MysqlDialect) CreateHeadingViewQuery() string {
	return buildHeadingView(headingExpr{
		match: func(col string) string {
			return fmt.Sprintf("%s REGEXP '^[0-9]{2}'", col)
		},
		prefix: func(col string) string {
			return fmt.Sprintf("CAST(SUBSTRING(%s, 1, 2) AS UNSIGNED)", col)
		},
		ordered: true,
	})
}

func (d *MysqlDialect) DropViewQuery(view string) string {
	return fmt.Sprintf("DROP VIEW IF EXISTS %s", view)
}

func (d *MysqlDialect) TableExistsQuery() string {
	return `SELECT COUNT(*) FROM information_schema.TABLES WHERE TABLE_SCHEMA = DATABASE() AND TABLE_TYPE = 'BASE TABLE' AND TABLE_NAME = ?`
}

func (d *MysqlDialect) ViewExistsQuery() string {
	return `SELECT COUNT(*) FROM information_schema.VIEWS WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ?`
}

func (d *MysqlDialect) BeforeLoad(tx *sql.Tx) error {
	_, err := tx.Exec("SET FOREIGN_KEY_CHECKS = 0")
	return err
}

func (d *MysqlDialect) AfterLoad(tx *sql.Tx) error {
	_, err := tx.Exec("SET FOREIGN_KEY_CHECKS = 1")
	return err
}

func (d *MysqlDialect) InsertQuery(table string, cols []string) string {
	return DefaultInsertQuery(table, cols, d.Placeholder)
}

func (d *MysqlDialect) CountQuery(table string) string {
	return DefaultCountQuery(table)
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}

func (d *MysqlDialect) IsConstraintViolation(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return mysqlConstraintErrors[me.Number]
	}
	return false
}

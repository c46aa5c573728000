package engine

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"airport-etl/internal/dialect"
	"airport-etl/internal/schema"
)

// Options controls a single load run.
type Options struct {
	// Reset drops the view and tables before creating them. Without it tables
	// are created only when missing and rows accumulate across runs.
	Reset bool
	// CreateView (re)creates the runway_headings view after loading.
	CreateView bool
	// Sources maps table name to CSV path.
	Sources map[string]string
}

// ProgressFunc is called with done == 0 before a table's rows are inserted and
// after every inserted row.
type ProgressFunc func(table string, done, total int)

// Run creates the schema, loads every table from its CSV source and defines the
// heading view, all inside one transaction that is committed once at the end.
// Any failure rolls back the whole run.
func Run(ctx context.Context, db *sql.DB, d dialect.Dialect, tables []*schema.Table, opts Options, onProgress ProgressFunc) ([]schema.LoadResult, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			tx.Rollback()
		}
	}()

	if opts.Reset {
		if err := dropObjects(ctx, tx, d, tables); err != nil {
			return nil, err
		}
	}
	if err := createTables(ctx, tx, d, tables, opts.Reset); err != nil {
		return nil, err
	}

	if err := d.BeforeLoad(tx); err != nil {
		return nil, fmt.Errorf("before load hook: %w", err)
	}

	var results []schema.LoadResult
	for _, t := range tables {
		path, ok := opts.Sources[t.Name]
		if !ok {
			return nil, fmt.Errorf("no source file configured for table %s", t.Name)
		}

		log.Printf("Importing %s...", t.Name)
		rows, err := ReadCSV(path, t)
		if err != nil {
			return nil, err
		}
		if err := insertRows(ctx, tx, d, t, rows, onProgress); err != nil {
			return nil, err
		}
		results = append(results, schema.LoadResult{TableName: t.Name, Source: path, Rows: len(rows)})
	}

	if err := d.AfterLoad(tx); err != nil {
		return nil, fmt.Errorf("after load hook: %w", err)
	}

	if opts.CreateView {
		log.Println("Creating database views...")
		if err := createView(ctx, tx, d); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit load transaction: %w", err)
	}
	tx = nil

	// Verification
	for i := range results {
		n, err := count(ctx, db, d, results[i].TableName)
		if err != nil {
			return nil, err
		}
		results[i].Actual = n
		results[i].Status = "OK"
		if n < results[i].Rows {
			results[i].Status = "MISSING DATA"
			results[i].ErrorMsg = fmt.Sprintf("Only %d of %d rows found after commit", n, results[i].Rows)
		}
	}
	return results, nil
}

// Drop removes the heading view and the tables in reverse load order. Objects
// that do not exist are skipped.
func Drop(ctx context.Context, db *sql.DB, d dialect.Dialect, tables []*schema.Table) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			tx.Rollback()
		}
	}()

	if err := dropObjects(ctx, tx, d, tables); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit drop transaction: %w", err)
	}
	tx = nil
	return nil
}

func dropObjects(ctx context.Context, tx *sql.Tx, d dialect.Dialect, tables []*schema.Table) error {
	if err := dropView(ctx, tx, d); err != nil {
		return err
	}
	for i := len(tables) - 1; i >= 0; i-- {
		name := tables[i].Name
		found, err := exists(ctx, tx, d.TableExistsQuery(), name)
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		log.Printf("Dropping table %s", name)
		if _, err := tx.ExecContext(ctx, d.DropTableQuery(name)); err != nil {
			return fmt.Errorf("drop table %s: %w", name, err)
		}
	}
	return nil
}

func createTables(ctx context.Context, tx *sql.Tx, d dialect.Dialect, tables []*schema.Table, unconditional bool) error {
	for _, t := range tables {
		if !unconditional {
			found, err := exists(ctx, tx, d.TableExistsQuery(), t.Name)
			if err != nil {
				return err
			}
			if found {
				log.Printf("Table %s already exists, keeping it", t.Name)
				continue
			}
		}
		if _, err := tx.ExecContext(ctx, d.CreateTableQuery(t)); err != nil {
			return &SchemaError{Object: "table " + t.Name, Err: err}
		}
	}
	return nil
}

func dropView(ctx context.Context, tx *sql.Tx, d dialect.Dialect) error {
	found, err := exists(ctx, tx, d.ViewExistsQuery(), schema.HeadingsView)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if _, err := tx.ExecContext(ctx, d.DropViewQuery(schema.HeadingsView)); err != nil {
		return fmt.Errorf("drop view %s: %w", schema.HeadingsView, err)
	}
	return nil
}

func createView(ctx context.Context, tx *sql.Tx, d dialect.Dialect) error {
	if err := dropView(ctx, tx, d); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, d.CreateHeadingViewQuery()); err != nil {
		return &SchemaError{Object: "view " + schema.HeadingsView, Err: err}
	}
	return nil
}

func insertRows(ctx context.Context, tx *sql.Tx, d dialect.Dialect, t *schema.Table, rows []Row, onProgress ProgressFunc) error {
	stmt, err := tx.PrepareContext(ctx, d.InsertQuery(t.Name, t.ColumnNames()))
	if err != nil {
		return fmt.Errorf("prepare insert into %s: %w", t.Name, err)
	}
	defer stmt.Close()

	if onProgress != nil {
		onProgress(t.Name, 0, len(rows))
	}
	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.Values...); err != nil {
			if d.IsConstraintViolation(err) {
				return &ConstraintError{Table: t.Name, Line: row.Line, Err: err}
			}
			return fmt.Errorf("insert into %s (line %d): %w", t.Name, row.Line, err)
		}
		if onProgress != nil {
			onProgress(t.Name, i+1, len(rows))
		}
	}
	return nil
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func exists(ctx context.Context, q queryer, query, name string) (bool, error) {
	var n int
	if err := q.QueryRowContext(ctx, query, name).Scan(&n); err != nil {
		return false, fmt.Errorf("look up %s: %w", name, err)
	}
	return n > 0, nil
}

func count(ctx context.Context, q queryer, d dialect.Dialect, table string) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, d.CountQuery(table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

package engine

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"airport-etl/internal/schema"
)

// Row is one CSV record converted to the table's column order.
type Row struct {
	Line   int
	Values []interface{}
}

// ReadCSV reads the whole file and maps each record onto t's columns by header
// name. Columns without a matching header, short records and empty fields all
// give NULL. The file is held in memory, which is fine for the tens of
// thousands of rows the airport datasets have.
func ReadCSV(path string, t *schema.Table) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[name] = i // later duplicates win
	}

	var rows []Row
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		line, _ := r.FieldPos(0)

		values := make([]interface{}, len(t.Columns))
		for i, col := range t.Columns {
			var raw string
			if idx, ok := index[col.Name]; ok && idx < len(rec) {
				raw = rec[idx]
			}
			v, err := schema.ParseValue(col, raw)
			if err != nil {
				return nil, &schema.ParseError{
					Table:  t.Name,
					Line:   line,
					Column: col.Name,
					Type:   col.Type,
					Value:  raw,
					Err:    err,
				}
			}
			values[i] = v
		}
		rows = append(rows, Row{Line: line, Values: values})
	}
	return rows, nil
}

package schema

// ColumnType is the storage type of a column, independent of dialect.
type ColumnType int

const (
	Text ColumnType = iota
	Integer
	Real
	Boolean
)

func (t ColumnType) String() string {
	switch t {
	case Integer:
		return "integer"
	case Real:
		return "real"
	case Boolean:
		return "boolean"
	default:
		return "text"
	}
}

type Table struct {
	Name         string
	Columns      []*Column
	ForeignKeys  []*ForeignKey
	Dependencies []string // tables referenced through ForeignKeys
}

type Column struct {
	Name string
	Type ColumnType
	IsPK bool
}

type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// LoadResult reports what happened to one table during a run.
type LoadResult struct {
	TableName string
	Source    string
	Rows      int // rows read from the source file
	Actual    int // rows counted in the table afterwards
	Status    string
	ErrorMsg  string
}

package querybuild

import (
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm/schema"
)

// Table is the column catalog of one entity, keyed by lower-cased field and column names
type Table struct {
	Name    string
	columns map[string]string
}

var parseCache sync.Map

// NewTable builds the catalog of a gorm model. Both Go field names (issuedTo, IssuedTo)
// and column names (issued_to) resolve to the column.
func NewTable(model any) (*Table, error) {
	s, err := schema.Parse(model, &parseCache, schema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse model schema: %w", err)
	}

	t := &Table{Name: s.Table, columns: make(map[string]string, len(s.Fields)*2)}
	for _, f := range s.Fields {
		if f.DBName == "" {
			continue
		}
		t.columns[strings.ToLower(f.Name)] = f.DBName
		t.columns[strings.ToLower(f.DBName)] = f.DBName
	}
	return t, nil
}

// MustTable is NewTable for package-level catalogs
func MustTable(model any) *Table {
	t, err := NewTable(model)
	if err != nil {
		panic(err)
	}
	return t
}

// Column returns the column for a field reference
func (t *Table) Column(field string) (string, bool) {
	column, ok := t.columns[strings.ToLower(strings.TrimSpace(field))]
	return column, ok
}

package querybuild

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/feral-file/carbon-engine/internal/domain"
)

// Op is a comparison operator accepted in filters
type Op string

const (
	OpEq      Op = "eq"
	OpLike    Op = "like"
	OpLess    Op = "ls"
	OpGreat   Op = "gt"
	OpVector  Op = "vector"
	OpLessEq  Op = "lte"
	OpGreatEq Op = "gte"
)

// sqlOps translates filter operators to SQL
var sqlOps = map[Op]string{
	OpEq:      "=",
	OpLike:    "LIKE",
	OpLess:    "<",
	OpGreat:   ">",
	OpLessEq:  "<=",
	OpGreatEq: ">=",
}

// FieldType is the declared type of a filter value
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeNumber FieldType = "number"
)

// caseInsensitiveFields are holder-like columns always compared lower case
var caseInsensitiveFields = map[string]bool{
	"issued_to":   true,
	"issued_by":   true,
	"issued_from": true,
}

// Predicate is a node of a filter tree: And, Or or Cond
type Predicate interface {
	isPredicate()
}

// And matches when every child matches. An empty And matches everything.
type And []Predicate

// Or matches when any child matches. An empty Or matches everything.
type Or []Predicate

// Cond compares one column against a value.
// Fold forces a case-insensitive comparison.
type Cond struct {
	Field string
	Type  FieldType
	Op    Op
	Value any
	Fold  bool
}

func (And) isPredicate()  {}
func (Or) isPredicate()   {}
func (Cond) isPredicate() {}

// Compile converts a predicate tree to a parameterized SQL fragment.
// The first table is the base table; column references resolve to the first table owning them.
// Values are never interpolated.
func Compile(p Predicate, tables ...*Table) (string, []any, error) {
	if len(tables) == 0 {
		return "", nil, fmt.Errorf("compile predicate: no table given")
	}
	sql, args, err := compile(p, tables)
	if err != nil {
		return "", nil, err
	}
	if sql == "" {
		return "1 = 1", nil, nil
	}
	return sql, args, nil
}

// Apply adds the compiled predicate to db as a WHERE condition
func Apply(db *gorm.DB, p Predicate, tables ...*Table) (*gorm.DB, error) {
	if p == nil {
		return db, nil
	}
	sql, args, err := Compile(p, tables...)
	if err != nil {
		return nil, err
	}
	return db.Where(sql, args...), nil
}

func compile(p Predicate, tables []*Table) (string, []any, error) {
	switch pred := p.(type) {
	case nil:
		return "", nil, nil
	case And:
		return compileGroup([]Predicate(pred), " AND ", tables)
	case *And:
		return compileGroup([]Predicate(*pred), " AND ", tables)
	case Or:
		return compileGroup([]Predicate(pred), " OR ", tables)
	case *Or:
		return compileGroup([]Predicate(*pred), " OR ", tables)
	case Cond:
		return compileCond(pred, tables)
	case *Cond:
		return compileCond(*pred, tables)
	default:
		return "", nil, fmt.Errorf("unsupported predicate type: %T", p)
	}
}

func compileGroup(children []Predicate, sep string, tables []*Table) (string, []any, error) {
	var parts []string
	var args []any
	for _, child := range children {
		sql, childArgs, err := compile(child, tables)
		if err != nil {
			return "", nil, err
		}
		if sql == "" {
			continue
		}
		parts = append(parts, sql)
		args = append(args, childArgs...)
	}

	switch len(parts) {
	case 0:
		return "", nil, nil
	case 1:
		return parts[0], args, nil
	default:
		return "(" + strings.Join(parts, sep) + ")", args, nil
	}
}

func compileCond(c Cond, tables []*Table) (string, []any, error) {
	table, column, ok := resolveColumn(c.Field, tables)
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", domain.ErrUnknownColumn, c.Field)
	}
	ref := table.Name + "." + column

	if c.Op == OpVector {
		return fmt.Sprintf("to_tsvector(%s) @@ plainto_tsquery(?)", ref), []any{c.Value}, nil
	}

	op, ok := sqlOps[c.Op]
	if !ok {
		return "", nil, fmt.Errorf("%w: unsupported operator %q", domain.ErrInvalidFilter, c.Op)
	}

	value := c.Value
	if c.Op == OpLike && c.Type == FieldTypeString {
		value = fmt.Sprintf("%%%v%%", c.Value)
	}

	if c.Fold || c.Op == OpLike || caseInsensitiveFields[column] {
		return fmt.Sprintf("LOWER(%s) %s LOWER(?)", ref, op), []any{value}, nil
	}
	return fmt.Sprintf("%s %s ?", ref, op), []any{value}, nil
}

func resolveColumn(field string, tables []*Table) (*Table, string, bool) {
	for _, t := range tables {
		if column, ok := t.Column(field); ok {
			return t, column, true
		}
	}
	return nil, "", false
}

package querybuild

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

var (
	balances = MustTable(&schema.Balance{})
	tokens   = MustTable(&schema.Token{})
)

func TestTable_Column(t *testing.T) {
	tests := []struct {
		field  string
		column string
		ok     bool
	}{
		{field: "issuedTo", column: "issued_to", ok: true},
		{field: "IssuedTo", column: "issued_to", ok: true},
		{field: "issued_to", column: "issued_to", ok: true},
		{field: "tokenId", column: "token_id", ok: true},
		{field: "description", ok: false},
		{field: "token", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			column, ok := balances.Column(tt.field)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.column, column)
		})
	}
	assert.Equal(t, "balances", balances.Name)
	assert.Equal(t, "tokens", tokens.Name)
}

func TestCompile_Cond(t *testing.T) {
	tests := []struct {
		name     string
		cond     Cond
		wantSQL  string
		wantArgs []any
		wantErr  error
	}{
		{
			name:     "equality",
			cond:     Cond{Field: "tokenId", Type: FieldTypeNumber, Op: OpEq, Value: 5},
			wantSQL:  "balances.token_id = ?",
			wantArgs: []any{5},
		},
		{
			name:     "holder column is case insensitive",
			cond:     Cond{Field: "issuedTo", Type: FieldTypeString, Op: OpEq, Value: "0xABC"},
			wantSQL:  "LOWER(balances.issued_to) = LOWER(?)",
			wantArgs: []any{"0xABC"},
		},
		{
			name:     "string like is wrapped",
			cond:     Cond{Field: "description", Type: FieldTypeString, Op: OpLike, Value: "solar"},
			wantSQL:  "LOWER(tokens.description) LIKE LOWER(?)",
			wantArgs: []any{"%solar%"},
		},
		{
			name:     "less than",
			cond:     Cond{Field: "available", Type: FieldTypeNumber, Op: OpLess, Value: 10},
			wantSQL:  "balances.available < ?",
			wantArgs: []any{10},
		},
		{
			name:     "greater than on joined table",
			cond:     Cond{Field: "totalIssued", Type: FieldTypeNumber, Op: OpGreat, Value: 100},
			wantSQL:  "tokens.total_issued > ?",
			wantArgs: []any{100},
		},
		{
			name:     "full text",
			cond:     Cond{Field: "description", Type: FieldTypeString, Op: OpVector, Value: "wind farm"},
			wantSQL:  "to_tsvector(tokens.description) @@ plainto_tsquery(?)",
			wantArgs: []any{"wind farm"},
		},
		{
			name:    "unknown column",
			cond:    Cond{Field: "balance; DROP TABLE balances", Type: FieldTypeString, Op: OpEq, Value: "x"},
			wantErr: domain.ErrUnknownColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := Compile(tt.cond, balances, tokens)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestCompile_UnsupportedOperator(t *testing.T) {
	_, _, err := Compile(Cond{Field: "tokenId", Type: FieldTypeNumber, Op: Op("between"), Value: 1}, balances)
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestCompile_NestedGroups(t *testing.T) {
	tree := Or{
		And{
			Cond{Field: "issuedTo", Type: FieldTypeString, Op: OpEq, Value: "0xa"},
			Cond{Field: "available", Type: FieldTypeNumber, Op: OpGreat, Value: 0},
		},
		And{
			Cond{Field: "issuedTo", Type: FieldTypeString, Op: OpEq, Value: "0xb"},
			Cond{Field: "retired", Type: FieldTypeNumber, Op: OpGreat, Value: 0},
		},
	}

	sql, args, err := Compile(tree, balances)
	require.NoError(t, err)
	assert.Equal(t,
		"((LOWER(balances.issued_to) = LOWER(?) AND balances.available > ?) OR (LOWER(balances.issued_to) = LOWER(?) AND balances.retired > ?))",
		sql)
	assert.Equal(t, []any{"0xa", 0, "0xb", 0}, args)
}

func TestCompile_Empty(t *testing.T) {
	sql, args, err := Compile(And{}, balances)
	require.NoError(t, err)
	assert.Equal(t, "1 = 1", sql)
	assert.Empty(t, args)

	sql, _, err = Compile(And{Or{}, And{}}, balances)
	require.NoError(t, err)
	assert.Equal(t, "1 = 1", sql)

	_, _, err = Compile(And{})
	assert.Error(t, err)
}

func TestFromBundles(t *testing.T) {
	bundles := []Bundle{
		{Field: "issuedTo", FieldType: FieldTypeString, Value: "0xABC", Op: OpEq, Conjunction: true},
		{Field: "tokenId", FieldType: FieldTypeNumber, Value: 1, Op: OpEq, Conjunction: false},
		{Field: "metadata", FieldType: FieldType("object"), Value: "{}", Op: OpEq, Conjunction: true},
		{Field: "description", FieldType: FieldTypeString, Value: "solar", Op: OpLike, Conjunction: false},
	}

	tree := FromBundles(bundles)
	assert.Equal(t, And{
		Or{
			Cond{Field: "tokenId", Type: FieldTypeNumber, Op: OpEq, Value: 1},
			Cond{Field: "description", Type: FieldTypeString, Op: OpLike, Value: "solar"},
		},
		Cond{Field: "issuedTo", Type: FieldTypeString, Op: OpEq, Value: "0xABC"},
	}, tree)

	sql, args, err := Compile(tree, balances, tokens)
	require.NoError(t, err)
	assert.Equal(t,
		"((balances.token_id = ? OR LOWER(tokens.description) LIKE LOWER(?)) AND LOWER(balances.issued_to) = LOWER(?))",
		sql)
	assert.Equal(t, []any{1, "%solar%", "0xABC"}, args)
}

func TestFromBundles_OnlyConjunctions(t *testing.T) {
	tree := FromBundles([]Bundle{
		{Field: "issuedTo", FieldType: FieldTypeString, Value: "0xabc", Op: OpEq, Conjunction: true},
		{Field: "available", FieldType: FieldTypeNumber, Value: 0, Op: OpGreat, Conjunction: true},
	})

	sql, _, err := Compile(tree, balances)
	require.NoError(t, err)
	assert.Equal(t, "(LOWER(balances.issued_to) = LOWER(?) AND balances.available > ?)", sql)
}

func TestFromBundles_Nil(t *testing.T) {
	sql, args, err := Compile(FromBundles(nil), balances)
	require.NoError(t, err)
	assert.Equal(t, "1 = 1", sql)
	assert.Empty(t, args)
}

func TestFromBundles_FieldSuffixIgnored(t *testing.T) {
	var bundles []Bundle
	raw := `[
		{"field":"issuedTo","fieldSuffix":"1","fieldType":"string","value":"0xabc","op":"eq","conjunction":true},
		{"field":"issuedTo","fieldSuffix":"2","fieldType":"string","value":"0xdef","op":"eq","conjunction":true}
	]`
	require.NoError(t, json.Unmarshal([]byte(raw), &bundles))
	assert.Equal(t, "1", bundles[0].FieldSuffix)

	sql, args, err := Compile(FromBundles(bundles), balances)
	require.NoError(t, err)
	assert.Equal(t, "(LOWER(balances.issued_to) = LOWER(?) AND LOWER(balances.issued_to) = LOWER(?))", sql)
	assert.Equal(t, []any{"0xabc", "0xdef"}, args)
}

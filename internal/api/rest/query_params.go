package rest

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/ledger"
	"github.com/feral-file/carbon-engine/internal/querybuild"
)

// ListBalancesQueryParams holds query parameters for GET /balances/:kind
type ListBalancesQueryParams struct {
	// Holder narrows the page to one holder
	Holder string `form:"holder"`
	// Filters is a JSON array of filter bundles
	Filters string `form:"filters"`

	// Pagination
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ParseListBalancesQuery parses query parameters for GET /balances/:kind
func ParseListBalancesQuery(c *gin.Context) (*ListBalancesQueryParams, error) {
	var params ListBalancesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Holder = domain.NormalizeHolder(params.Holder)

	// Cap limits
	if params.Limit > ledger.MaxPageLimit {
		params.Limit = ledger.MaxPageLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	return &params, nil
}

// Predicate builds the filter of the page. Returns nil when nothing narrows it.
func (p *ListBalancesQueryParams) Predicate() (querybuild.Predicate, error) {
	var root querybuild.And
	if p.Filters != "" {
		var bundles []querybuild.Bundle
		if err := json.Unmarshal([]byte(p.Filters), &bundles); err != nil {
			return nil, fmt.Errorf("%w: filters: %v", domain.ErrInvalidFilter, err)
		}
		if filter, ok := querybuild.FromBundles(bundles).(querybuild.And); ok {
			root = append(root, filter...)
		}
	}
	if p.Holder != "" {
		root = append(root, querybuild.Cond{
			Field: "issued_to",
			Type:  querybuild.FieldTypeString,
			Op:    querybuild.OpEq,
			Value: p.Holder,
		})
	}

	if len(root) == 0 {
		return nil, nil
	}
	return root, nil
}

// LevelsQueryParams holds query parameters for GET /factors/levels
type LevelsQueryParams struct {
	Level  int    `form:"level" binding:"required,min=1,max=4"`
	Scope  string `form:"scope"`
	Level1 string `form:"level_1"`
	Level2 string `form:"level_2"`
	Level3 string `form:"level_3"`
	Year   *int   `form:"year"`
}

// ParseLevelsQuery parses query parameters for GET /factors/levels
func ParseLevelsQuery(c *gin.Context) (*LevelsQueryParams, error) {
	var params LevelsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// Query returns the parent levels as a factor query
func (p *LevelsQueryParams) Query() domain.FactorQuery {
	return domain.FactorQuery{
		Scope:  p.Scope,
		Level1: p.Level1,
		Level2: p.Level2,
		Level3: p.Level3,
		Year:   p.Year,
	}
}

// YearRangeQueryParams holds the optional year bounds of the electricity lookups
type YearRangeQueryParams struct {
	Scope    string `form:"scope"`
	FromYear *int   `form:"from_year"`
	ThruYear *int   `form:"thru_year"`
}

// ParseYearRangeQuery parses query parameters for GET /factors/electricity/*
func ParseYearRangeQuery(c *gin.Context) (*YearRangeQueryParams, error) {
	var params YearRangeQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.FromYear != nil && params.ThruYear != nil && *params.FromYear > *params.ThruYear {
		return nil, fmt.Errorf("from_year %d is after thru_year %d", *params.FromYear, *params.ThruYear)
	}
	return &params, nil
}

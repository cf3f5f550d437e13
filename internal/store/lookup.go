package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/querybuild"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

var (
	factorTable  = querybuild.MustTable(&schema.EmissionsFactor{})
	utilityTable = querybuild.MustTable(&schema.UtilityLookupItem{})
)

// levelColumns maps a hierarchy depth to its column
var levelColumns = map[int]string{
	1: "level_1",
	2: "level_2",
	3: "level_3",
	4: "level_4",
}

// factorPredicate builds the case-insensitive match over the fields present in q.
// Absent fields are wildcards.
func factorPredicate(q domain.FactorQuery) querybuild.And {
	var p querybuild.And
	fold := func(field, value string) {
		if value == "" {
			return
		}
		p = append(p, querybuild.Cond{Field: field, Type: querybuild.FieldTypeString, Op: querybuild.OpEq, Value: value, Fold: true})
	}

	fold("scope", q.Scope)
	fold("level_1", q.Level1)
	fold("level_2", q.Level2)
	fold("level_3", q.Level3)
	fold("level_4", q.Level4)
	fold("text", q.Text)
	fold("activity_uom", q.ActivityUOM)
	fold("division_type", q.DivisionType)
	fold("division_id", q.DivisionID)

	return append(p, yearPredicate(q.Year, q.FromYear, q.ThruYear)...)
}

// yearPredicate pins an exact year, else an inclusive range with optional bounds
func yearPredicate(year, fromYear, thruYear *int) querybuild.And {
	year4 := func(y int) string { return fmt.Sprintf("%04d", y) }

	if year != nil {
		return querybuild.And{querybuild.Cond{Field: "year", Type: querybuild.FieldTypeString, Op: querybuild.OpEq, Value: year4(*year)}}
	}

	var p querybuild.And
	if fromYear != nil {
		p = append(p, querybuild.Cond{Field: "year", Type: querybuild.FieldTypeString, Op: querybuild.OpGreatEq, Value: year4(*fromYear)})
	}
	if thruYear != nil {
		p = append(p, querybuild.Cond{Field: "year", Type: querybuild.FieldTypeString, Op: querybuild.OpLessEq, Value: year4(*thruYear)})
	}
	return p
}

// FindFactors returns factors matching the query, most recent year first
func (s *pgStore) FindFactors(ctx context.Context, query domain.FactorQuery) ([]schema.EmissionsFactor, error) {
	db, err := querybuild.Apply(s.db.WithContext(ctx).Model(&schema.EmissionsFactor{}), factorPredicate(query), factorTable)
	if err != nil {
		return nil, err
	}

	var factors []schema.EmissionsFactor
	if err := db.Order("year DESC").Order("uuid ASC").Find(&factors).Error; err != nil {
		return nil, fmt.Errorf("failed to find emissions factors: %w", err)
	}
	return factors, nil
}

// LastYearForLevel1 returns the most recent year with any factor under level1
func (s *pgStore) LastYearForLevel1(ctx context.Context, level1 string) (*int, error) {
	var years []string
	err := s.db.WithContext(ctx).
		Model(&schema.EmissionsFactor{}).
		Where("LOWER(level_1) = LOWER(?)", level1).
		Where("year <> ''").
		Group("year").
		Order("year DESC").
		Pluck("year", &years).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get last year for level_1: %w", err)
	}

	for _, y := range years {
		if year, err := strconv.Atoi(y); err == nil {
			return &year, nil
		}
	}
	return nil, nil
}

// GetFactor retrieves a factor by uuid
func (s *pgStore) GetFactor(ctx context.Context, id string) (*schema.EmissionsFactor, error) {
	var factor schema.EmissionsFactor
	err := s.db.WithContext(ctx).Where("uuid = ?", id).First(&factor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get emissions factor: %w", err)
	}
	return &factor, nil
}

// PutFactor deletes every factor with the same classification key, then inserts the replacement
func (s *pgStore) PutFactor(ctx context.Context, factor *schema.EmissionsFactor) error {
	if factor.UUID == "" {
		factor.UUID = uuid.NewString()
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where(
			"class = ? AND LOWER(scope) = LOWER(?) AND LOWER(level_1) = LOWER(?) AND LOWER(level_2) = LOWER(?) "+
				"AND LOWER(level_3) = LOWER(?) AND LOWER(level_4) = LOWER(?) AND LOWER(text) = LOWER(?) "+
				"AND LOWER(activity_uom) = LOWER(?) AND year = ? AND LOWER(division_type) = LOWER(?) AND LOWER(division_id) = LOWER(?)",
			factor.Class, factor.Scope, factor.Level1, factor.Level2,
			factor.Level3, factor.Level4, factor.Text,
			factor.ActivityUOM, factor.Year, factor.DivisionType, factor.DivisionID,
		).Delete(&schema.EmissionsFactor{}).Error
		if err != nil {
			return fmt.Errorf("failed to delete replaced emissions factors: %w", err)
		}

		if err := tx.Create(factor).Error; err != nil {
			return fmt.Errorf("failed to create emissions factor: %w", err)
		}
		return nil
	})
}

// CountFactors counts all factors
func (s *pgStore) CountFactors(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&schema.EmissionsFactor{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count emissions factors: %w", err)
	}
	return count, nil
}

// DistinctLevels lists the distinct values at a hierarchy depth under the query's scope and parent levels
func (s *pgStore) DistinctLevels(ctx context.Context, level int, query domain.FactorQuery) ([]string, error) {
	column, ok := levelColumns[level]
	if !ok {
		return nil, fmt.Errorf("invalid level: %d", level)
	}

	// Only parents of the requested level constrain the listing
	parents := domain.FactorQuery{Scope: query.Scope}
	if level > 1 {
		parents.Level1 = query.Level1
	}
	if level > 2 {
		parents.Level2 = query.Level2
	}
	if level > 3 {
		parents.Level3 = query.Level3
	}

	db, err := querybuild.Apply(s.db.WithContext(ctx).Model(&schema.EmissionsFactor{}), factorPredicate(parents), factorTable)
	if err != nil {
		return nil, err
	}

	var values []string
	if err := db.Where(column+" <> ''").Distinct(column).Order(column+" ASC").Pluck(column, &values).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", column, err)
	}
	return values, nil
}

// ElectricityCountries lists countries that have grid factors, plus the United States
func (s *pgStore) ElectricityCountries(ctx context.Context, scope string, fromYear, thruYear *int) ([]string, error) {
	q := domain.FactorQuery{
		Scope:    scope,
		Level1:   domain.ElectricityCountriesLevel1,
		FromYear: fromYear,
		ThruYear: thruYear,
	}
	db, err := querybuild.Apply(s.db.WithContext(ctx).Model(&schema.EmissionsFactor{}), factorPredicate(q), factorTable)
	if err != nil {
		return nil, err
	}

	var countries []string
	if err := db.Where("level_2 <> ''").Distinct("level_2").Order("level_2 ASC").Pluck("level_2", &countries).Error; err != nil {
		return nil, fmt.Errorf("failed to list electricity countries: %w", err)
	}
	return append(countries, domain.UnitedStates), nil
}

// GetUtilityLookupItem retrieves a utility lookup item by uuid
func (s *pgStore) GetUtilityLookupItem(ctx context.Context, id string) (*schema.UtilityLookupItem, error) {
	var item schema.UtilityLookupItem
	err := s.db.WithContext(ctx).Where("uuid = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get utility lookup item: %w", err)
	}
	return &item, nil
}

// PutUtilityLookupItem deletes every item with the same identity fields, then inserts the replacement
func (s *pgStore) PutUtilityLookupItem(ctx context.Context, item *schema.UtilityLookupItem) error {
	if item.UUID == "" {
		item.UUID = uuid.NewString()
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where(
			"class = ? AND year = ? AND utility_number = ? AND utility_name = ? AND country = ? "+
				"AND state_province = ? AND division_type = ? AND division_id = ?",
			item.Class, item.Year, item.UtilityNumber, item.UtilityName, item.Country,
			item.StateProvince, item.DivisionType, item.DivisionID,
		).Delete(&schema.UtilityLookupItem{}).Error
		if err != nil {
			return fmt.Errorf("failed to delete replaced utility lookup items: %w", err)
		}

		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("failed to create utility lookup item: %w", err)
		}
		return nil
	})
}

// CountUtilityLookupItems counts all utility lookup items
func (s *pgStore) CountUtilityLookupItems(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&schema.UtilityLookupItem{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count utility lookup items: %w", err)
	}
	return count, nil
}

// ElectricityUSAStates lists the US states with utility data
func (s *pgStore) ElectricityUSAStates(ctx context.Context) ([]string, error) {
	var states []string
	err := s.db.WithContext(ctx).
		Model(&schema.UtilityLookupItem{}).
		Where("country = ?", domain.DivisionIDUSA).
		Distinct("state_province").
		Order("state_province ASC").
		Pluck("state_province", &states).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list USA states: %w", err)
	}
	return states, nil
}

// ElectricityUSAUtilities returns one item per utility of a state.
// Within each utility the most recent item inside [fromYear, thruYear] wins;
// a utility without items in range falls back to its most recent item.
func (s *pgStore) ElectricityUSAUtilities(ctx context.Context, state string, fromYear, thruYear *int) ([]schema.UtilityLookupItem, error) {
	var items []schema.UtilityLookupItem
	err := s.db.WithContext(ctx).
		Where("country = ? AND state_province = ?", domain.DivisionIDUSA, state).
		Where("utility_name <> ''").
		Order("utility_name ASC").
		Order("year DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list USA utilities: %w", err)
	}

	inRange := func(item schema.UtilityLookupItem) bool {
		y, err := strconv.Atoi(item.Year)
		if err != nil {
			return true
		}
		if fromYear != nil && y < *fromYear {
			return false
		}
		if thruYear != nil && y > *thruYear {
			return false
		}
		return true
	}

	var result []schema.UtilityLookupItem
	for i := 0; i < len(items); {
		j := i
		for j < len(items) && items[j].UtilityName == items[i].UtilityName {
			j++
		}

		picked := items[i]
		for _, item := range items[i:j] {
			if inRange(item) {
				picked = item
				break
			}
		}
		result = append(result, picked)
		i = j
	}
	return result, nil
}

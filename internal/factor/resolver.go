package factor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/logger"
	"github.com/feral-file/carbon-engine/internal/store"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

// Resolver maps activities onto emissions factors
//
//go:generate mockgen -source=resolver.go -destination=../mocks/factor_resolver.go -package=mocks -mock_names=Resolver=MockFactorResolver
type Resolver interface {
	// Resolve returns the factors matching query, falling back to the latest year of its level_1
	// and then to fallback. An empty result is not an error.
	Resolve(ctx context.Context, query domain.FactorQuery, fallback *domain.FactorQuery) ([]schema.EmissionsFactor, error)

	// ResolveOne resolves a single factor for an activity
	ResolveOne(ctx context.Context, activity domain.Activity) (*schema.EmissionsFactor, error)

	// ResolveByLookupItem resolves the grid factor for a utility, stepping back one year at a time
	// from the year of thruDate. Each fallback division is tried in turn.
	ResolveByLookupItem(ctx context.Context, item *schema.UtilityLookupItem, thruDate string) (*schema.EmissionsFactor, error)

	// ResolveByDivision resolves grid factors of a division, stepping back one year at a time from year
	ResolveByDivision(ctx context.Context, division domain.Division, year *int) ([]schema.EmissionsFactor, error)

	// Levels lists the distinct values at a hierarchy depth (1-4) under the query's parents
	Levels(ctx context.Context, level int, query domain.FactorQuery) ([]string, error)

	// Factor returns a factor by uuid
	Factor(ctx context.Context, uuid string) (*schema.EmissionsFactor, error)

	// ElectricityCountries lists the countries with grid factors in a scope and year range
	ElectricityCountries(ctx context.Context, scope string, fromYear, thruYear *int) ([]string, error)

	// ElectricityStates lists the US states with utility data
	ElectricityStates(ctx context.Context) ([]string, error)

	// ElectricityUtilities lists one lookup item per utility of a US state
	ElectricityUtilities(ctx context.Context, state string, fromYear, thruYear *int) ([]schema.UtilityLookupItem, error)
}

// Config configures a Resolver
type Config struct {
	// MaxYearLookup is how many preceding years the division lookup tries after the requested one
	MaxYearLookup int
	// DivisionRules overrides DefaultDivisionRules
	DivisionRules []DivisionRule
}

type resolver struct {
	store         store.LookupStore
	maxYearLookup int
	rules         []DivisionRule
	metrics       *Metrics
}

// NewResolver creates a resolver over the lookup store
func NewResolver(store store.LookupStore, cfg Config, metrics *Metrics) Resolver {
	if cfg.MaxYearLookup <= 0 {
		cfg.MaxYearLookup = domain.DefaultMaxYearLookup
	}
	if len(cfg.DivisionRules) == 0 {
		cfg.DivisionRules = DefaultDivisionRules
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	return &resolver{
		store:         store,
		maxYearLookup: cfg.MaxYearLookup,
		rules:         cfg.DivisionRules,
		metrics:       metrics,
	}
}

func (r *resolver) Resolve(ctx context.Context, query domain.FactorQuery, fallback *domain.FactorQuery) ([]schema.EmissionsFactor, error) {
	factors, err := r.store.FindFactors(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(factors) > 0 {
		r.metrics.observe(stepExact)
		return factors, nil
	}

	// Factor tables are refreshed at different cadences per category
	if query.HasYearConstraint() && query.Level1 != "" {
		year, err := r.store.LastYearForLevel1(ctx, query.Level1)
		if err != nil {
			return nil, err
		}
		if year != nil {
			logger.DebugCtx(ctx, "Retrying factor lookup with last year of level_1",
				zap.String("level_1", query.Level1),
				zap.Int("year", *year))

			factors, err = r.store.FindFactors(ctx, query.WithYear(*year))
			if err != nil {
				return nil, err
			}
			if len(factors) > 0 {
				r.metrics.observe(stepLastYear)
				return factors, nil
			}
		}
	}

	if fallback != nil {
		factors, err = r.Resolve(ctx, *fallback, nil)
		if err != nil {
			return nil, err
		}
		if len(factors) > 0 {
			r.metrics.observe(stepFallback)
		}
		return factors, nil
	}

	r.metrics.observe(stepMiss)
	return nil, nil
}

func (r *resolver) ResolveOne(ctx context.Context, activity domain.Activity) (*schema.EmissionsFactor, error) {
	factors, err := r.Resolve(ctx, activity.Query(), nil)
	if err != nil {
		return nil, err
	}
	if len(factors) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrFactorNotFound, describe(activity.Query()))
	}
	return Disambiguate(factors)
}

func (r *resolver) ResolveByLookupItem(ctx context.Context, item *schema.UtilityLookupItem, thruDate string) (*schema.EmissionsFactor, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: missing utility lookup item", domain.ErrInvalidActivity)
	}

	candidates := DeriveDivisions(r.rules, item)
	if len(candidates) == 0 {
		r.metrics.observe(stepMiss)
		return nil, fmt.Errorf("%w: utility %s has no division data", domain.ErrNoUtilityFactor, item.UtilityNumber)
	}

	year := domain.ParseYear(thruDate)
	if year == nil {
		logger.WarnCtx(ctx, "Could not read year from thru date, looking up without year",
			zap.String("thruDate", thruDate))
	}

	var lastErr error
	for _, c := range candidates {
		logger.DebugCtx(ctx, "Resolving utility factor",
			zap.String("utility", item.UtilityNumber),
			zap.String("rule", c.Rule),
			zap.String("divisionType", c.Division.Type),
			zap.String("divisionID", c.Division.ID))

		factors, err := r.ResolveByDivision(ctx, c.Division, year)
		if err == nil {
			return &factors[0], nil
		}
		if !errors.Is(err, domain.ErrNoUtilityFactor) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (r *resolver) ResolveByDivision(ctx context.Context, division domain.Division, year *int) ([]schema.EmissionsFactor, error) {
	query := domain.FactorQuery{
		DivisionType: division.Type,
		DivisionID:   division.ID,
	}

	if year == nil {
		factors, err := r.store.FindFactors(ctx, query)
		if err != nil {
			return nil, err
		}
		if len(factors) == 0 {
			r.metrics.observe(stepMiss)
			return nil, fmt.Errorf("%w: %s %s", domain.ErrNoUtilityFactor, division.Type, division.ID)
		}
		r.metrics.observe(stepDivision)
		return factors, nil
	}

	for attempt := 0; attempt <= r.maxYearLookup; attempt++ {
		factors, err := r.store.FindFactors(ctx, query.WithYear(*year-attempt))
		if err != nil {
			return nil, err
		}
		if len(factors) > 0 {
			r.metrics.observe(stepDivision)
			return factors, nil
		}
	}

	r.metrics.observe(stepMiss)
	return nil, fmt.Errorf("%w: %s %s from %d back %d years",
		domain.ErrNoUtilityFactor, division.Type, division.ID, *year, r.maxYearLookup)
}

func (r *resolver) Levels(ctx context.Context, level int, query domain.FactorQuery) ([]string, error) {
	return r.store.DistinctLevels(ctx, level, query)
}

func (r *resolver) Factor(ctx context.Context, uuid string) (*schema.EmissionsFactor, error) {
	f, err := r.store.GetFactor(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("%w: uuid %s", domain.ErrFactorNotFound, uuid)
	}
	return f, nil
}

func (r *resolver) ElectricityCountries(ctx context.Context, scope string, fromYear, thruYear *int) ([]string, error) {
	return r.store.ElectricityCountries(ctx, scope, fromYear, thruYear)
}

func (r *resolver) ElectricityStates(ctx context.Context) ([]string, error) {
	return r.store.ElectricityUSAStates(ctx)
}

func (r *resolver) ElectricityUtilities(ctx context.Context, state string, fromYear, thruYear *int) ([]schema.UtilityLookupItem, error) {
	if strings.TrimSpace(state) == "" {
		return nil, fmt.Errorf("%w: state is required", domain.ErrInvalidActivity)
	}
	return r.store.ElectricityUSAUtilities(ctx, strings.TrimSpace(state), fromYear, thruYear)
}

// Disambiguate picks one factor from a non-empty match set.
// Factors that differ by more than year are ambiguous; otherwise the greatest year wins.
func Disambiguate(factors []schema.EmissionsFactor) (*schema.EmissionsFactor, error) {
	if len(factors) == 0 {
		return nil, domain.ErrFactorNotFound
	}

	keys := make(map[string]struct{})
	for i := range factors {
		keys[strings.ToUpper(factors[i].ClassificationKey())] = struct{}{}
	}
	if len(keys) > 1 {
		return nil, fmt.Errorf("%w: %d distinct factors matched", domain.ErrAmbiguousFactor, len(keys))
	}

	best := &factors[0]
	for i := 1; i < len(factors); i++ {
		if yearOf(&factors[i]) > yearOf(best) {
			best = &factors[i]
		}
	}
	return best, nil
}

func yearOf(f *schema.EmissionsFactor) int {
	y, err := strconv.Atoi(f.Year)
	if err != nil {
		return 0
	}
	return y
}

func describe(q domain.FactorQuery) string {
	parts := []string{q.Scope, q.Level1, q.Level2, q.Level3, q.Level4, q.Text, q.ActivityUOM}
	var present []string
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, "/")
}

package factor_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/factor"
	"github.com/feral-file/carbon-engine/internal/logger"
	"github.com/feral-file/carbon-engine/internal/mocks"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func intPtr(i int) *int { return &i }

func gasFactor(year string) schema.EmissionsFactor {
	return schema.EmissionsFactor{
		UUID:                      "factor-" + year,
		Class:                     domain.EmissionsFactorClass,
		Scope:                     "SCOPE 1",
		Level1:                    "FUELS",
		Level2:                    "GASEOUS FUELS",
		Level3:                    "NATURAL GAS",
		ActivityUOM:               "cubic metres",
		CO2EquivalentEmissions:    "1.88",
		CO2EquivalentEmissionsUOM: "kg",
		Year:                      year,
	}
}

type testResolverMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockLookupStore
	registry *prometheus.Registry
	resolver factor.Resolver
}

func setupTestResolver(t *testing.T) *testResolverMocks {
	ctrl := gomock.NewController(t)
	tm := &testResolverMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockLookupStore(ctrl),
		registry: prometheus.NewRegistry(),
	}
	tm.resolver = factor.NewResolver(tm.store, factor.Config{MaxYearLookup: 2}, factor.NewMetrics(tm.registry))
	return tm
}

func TestResolver_Resolve_ExactMatch(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	query := domain.FactorQuery{Level1: "FUELS", Level3: "NATURAL GAS", Year: intPtr(2020)}
	tm.store.EXPECT().FindFactors(gomock.Any(), query).Return([]schema.EmissionsFactor{gasFactor("2020")}, nil).Times(2)

	factors, err := tm.resolver.Resolve(context.Background(), query, nil)
	require.NoError(t, err)
	require.Len(t, factors, 1)
	assert.Equal(t, "2020", factors[0].Year)

	again, err := tm.resolver.Resolve(context.Background(), query, nil)
	require.NoError(t, err)
	assert.Equal(t, factors, again)
}

func TestResolver_Resolve_LastYearForLevel1(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	query := domain.FactorQuery{Level1: "FUELS", FromYear: intPtr(2022), ThruYear: intPtr(2023)}
	retry := query.WithYear(2020)

	gomock.InOrder(
		tm.store.EXPECT().FindFactors(gomock.Any(), query).Return(nil, nil),
		tm.store.EXPECT().LastYearForLevel1(gomock.Any(), "FUELS").Return(intPtr(2020), nil),
		tm.store.EXPECT().FindFactors(gomock.Any(), retry).Return([]schema.EmissionsFactor{gasFactor("2020")}, nil),
	)

	factors, err := tm.resolver.Resolve(context.Background(), query, nil)
	require.NoError(t, err)
	require.Len(t, factors, 1)
	assert.Equal(t, "2020", factors[0].Year)
	assert.Equal(t, 1.0, resolutions(t, tm.registry, "last_year"))
	assert.Zero(t, resolutions(t, tm.registry, "exact"))
}

func TestResolver_Resolve_NoYearConstraintSkipsLastYear(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	query := domain.FactorQuery{Level1: "FUELS"}
	tm.store.EXPECT().FindFactors(gomock.Any(), query).Return(nil, nil)

	factors, err := tm.resolver.Resolve(context.Background(), query, nil)
	require.NoError(t, err)
	assert.Empty(t, factors)
}

func TestResolver_Resolve_CallerFallback(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	query := domain.FactorQuery{Level1: "EGRID", DivisionType: "STATE", DivisionID: "CA", Year: intPtr(2021)}
	fallback := domain.FactorQuery{Level1: "EGRID", DivisionType: "Country", DivisionID: "USA", Year: intPtr(2021)}
	fallbackFactor := gasFactor("2021")
	fallbackFactor.DivisionID = "USA"

	gomock.InOrder(
		tm.store.EXPECT().FindFactors(gomock.Any(), query).Return(nil, nil),
		tm.store.EXPECT().LastYearForLevel1(gomock.Any(), "EGRID").Return(nil, nil),
		tm.store.EXPECT().FindFactors(gomock.Any(), fallback).Return([]schema.EmissionsFactor{fallbackFactor}, nil),
	)

	factors, err := tm.resolver.Resolve(context.Background(), query, &fallback)
	require.NoError(t, err)
	require.Len(t, factors, 1)
	assert.Equal(t, "USA", factors[0].DivisionID)
}

func TestResolver_Resolve_FallbackDoesNotRecurse(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	query := domain.FactorQuery{Level1: "A"}
	fallback := domain.FactorQuery{Level1: "B"}

	tm.store.EXPECT().FindFactors(gomock.Any(), query).Return(nil, nil)
	tm.store.EXPECT().FindFactors(gomock.Any(), fallback).Return(nil, nil).Times(1)

	factors, err := tm.resolver.Resolve(context.Background(), query, &fallback)
	require.NoError(t, err)
	assert.Empty(t, factors)
}

func TestResolver_Resolve_StoreError(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	storeErr := errors.New("connection reset")
	tm.store.EXPECT().FindFactors(gomock.Any(), gomock.Any()).Return(nil, storeErr)

	_, err := tm.resolver.Resolve(context.Background(), domain.FactorQuery{Level1: "FUELS"}, nil)
	require.ErrorIs(t, err, storeErr)
}

func TestResolver_ResolveOne(t *testing.T) {
	activity := domain.Activity{Level1: "FUELS", Level3: "natural gas", ActivityUOM: "cubic metres"}

	tests := []struct {
		name    string
		factors []schema.EmissionsFactor
		wantErr error
		wantID  string
	}{
		{
			name:    "no match",
			wantErr: domain.ErrFactorNotFound,
		},
		{
			name:    "single match",
			factors: []schema.EmissionsFactor{gasFactor("2019")},
			wantID:  "factor-2019",
		},
		{
			name:    "same key different years keeps greatest year",
			factors: []schema.EmissionsFactor{gasFactor("2018"), gasFactor("2021"), gasFactor("2020")},
			wantID:  "factor-2021",
		},
		{
			name: "keys differing only by case are the same factor",
			factors: func() []schema.EmissionsFactor {
				lower := gasFactor("2022")
				lower.Level3 = "natural gas"
				return []schema.EmissionsFactor{gasFactor("2020"), lower}
			}(),
			wantID: "factor-2022",
		},
		{
			name: "distinct keys are ambiguous",
			factors: func() []schema.EmissionsFactor {
				other := gasFactor("2020")
				other.Level4 = "COMPRESSED"
				return []schema.EmissionsFactor{gasFactor("2020"), other}
			}(),
			wantErr: domain.ErrAmbiguousFactor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestResolver(t)
			defer tm.ctrl.Finish()

			tm.store.EXPECT().FindFactors(gomock.Any(), activity.Query()).Return(tt.factors, nil)

			f, err := tm.resolver.ResolveOne(context.Background(), activity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, f.UUID)
		})
	}
}

func TestResolver_ResolveByDivision_YearRetry(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	division := domain.Division{Type: domain.DivisionTypeState, ID: "CA"}
	base := domain.FactorQuery{DivisionType: "STATE", DivisionID: "CA"}
	found := gasFactor("2019")

	gomock.InOrder(
		tm.store.EXPECT().FindFactors(gomock.Any(), base.WithYear(2021)).Return(nil, nil),
		tm.store.EXPECT().FindFactors(gomock.Any(), base.WithYear(2020)).Return(nil, nil),
		tm.store.EXPECT().FindFactors(gomock.Any(), base.WithYear(2019)).Return([]schema.EmissionsFactor{found}, nil),
	)

	factors, err := tm.resolver.ResolveByDivision(context.Background(), division, intPtr(2021))
	require.NoError(t, err)
	require.Len(t, factors, 1)
	assert.Equal(t, "2019", factors[0].Year)
}

func TestResolver_ResolveByDivision_Exhausted(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	// MaxYearLookup 2: the requested year plus two preceding years
	tm.store.EXPECT().FindFactors(gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)

	_, err := tm.resolver.ResolveByDivision(context.Background(), domain.Division{Type: "STATE", ID: "ZZ"}, intPtr(2021))
	require.ErrorIs(t, err, domain.ErrNoUtilityFactor)
}

func TestResolver_ResolveByDivision_NoYearSingleAttempt(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().FindFactors(gomock.Any(), domain.FactorQuery{DivisionType: "Country", DivisionID: "USA"}).Return(nil, nil).Times(1)

	_, err := tm.resolver.ResolveByDivision(context.Background(), domain.Division{Type: "Country", ID: "USA"}, nil)
	require.ErrorIs(t, err, domain.ErrNoUtilityFactor)
}

func TestResolver_ResolveByLookupItem(t *testing.T) {
	tests := []struct {
		name     string
		item     schema.UtilityLookupItem
		thruDate string
		want     domain.FactorQuery
	}{
		{
			name:     "state data wins",
			item:     schema.UtilityLookupItem{StateProvince: "CA", DivisionType: "NERC_REGION", DivisionID: "WECC"},
			thruDate: "2021-12-31",
			want:     domain.FactorQuery{DivisionType: "STATE", DivisionID: "CA", Year: intPtr(2021)},
		},
		{
			name:     "nerc region",
			item:     schema.UtilityLookupItem{DivisionType: "nerc_region", DivisionID: "WECC"},
			thruDate: "2020-06-30T00:00:00Z",
			want:     domain.FactorQuery{DivisionType: "nerc_region", DivisionID: "WECC", Year: intPtr(2020)},
		},
		{
			name:     "non-US country",
			item:     schema.UtilityLookupItem{DivisionType: "COUNTRY", DivisionID: "FRANCE"},
			thruDate: "2019",
			want:     domain.FactorQuery{DivisionType: "Country", DivisionID: "FRANCE", Year: intPtr(2019)},
		},
		{
			name:     "US country falls to default",
			item:     schema.UtilityLookupItem{DivisionType: "Country", DivisionID: "usa"},
			thruDate: "2019-01-01",
			want:     domain.FactorQuery{DivisionType: "Country", DivisionID: "USA", Year: intPtr(2019)},
		},
		{
			name:     "unparsable thru date looks up without year",
			item:     schema.UtilityLookupItem{StateProvince: "TX"},
			thruDate: "n/a",
			want:     domain.FactorQuery{DivisionType: "STATE", DivisionID: "TX"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestResolver(t)
			defer tm.ctrl.Finish()

			found := gasFactor("2019")
			tm.store.EXPECT().FindFactors(gomock.Any(), tt.want).Return([]schema.EmissionsFactor{found}, nil)

			f, err := tm.resolver.ResolveByLookupItem(context.Background(), &tt.item, tt.thruDate)
			require.NoError(t, err)
			assert.Equal(t, found.UUID, f.UUID)
		})
	}
}

func TestResolver_ResolveByLookupItem_StateFallsBackToUSA(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	usa := gasFactor("2020")
	usa.DivisionType = domain.DivisionTypeCountry
	usa.DivisionID = domain.DivisionIDUSA

	var queried []string
	tm.store.EXPECT().FindFactors(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q domain.FactorQuery) ([]schema.EmissionsFactor, error) {
			queried = append(queried, fmt.Sprintf("%s %s %d", q.DivisionType, q.DivisionID, *q.Year))
			if q.DivisionID == domain.DivisionIDUSA && *q.Year == 2020 {
				return []schema.EmissionsFactor{usa}, nil
			}
			return nil, nil
		}).AnyTimes()

	item := &schema.UtilityLookupItem{UtilityNumber: "7", StateProvince: "WY", Country: "USA"}
	f, err := tm.resolver.ResolveByLookupItem(context.Background(), item, "2021-12-31")
	require.NoError(t, err)
	assert.Equal(t, usa.UUID, f.UUID)
	assert.Equal(t, []string{
		"STATE WY 2021", "STATE WY 2020", "STATE WY 2019",
		"Country USA 2021", "Country USA 2020",
	}, queried)
}

func TestResolver_ResolveByLookupItem_TriesRegionBeforeCountry(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	region := gasFactor("2019")
	region.DivisionType = domain.DivisionTypeNERCRegion
	region.DivisionID = "WECC"

	gomock.InOrder(
		tm.store.EXPECT().FindFactors(gomock.Any(), domain.FactorQuery{DivisionType: "STATE", DivisionID: "NV"}).Return(nil, nil),
		tm.store.EXPECT().FindFactors(gomock.Any(), domain.FactorQuery{DivisionType: "NERC_REGION", DivisionID: "WECC"}).
			Return([]schema.EmissionsFactor{region}, nil),
	)

	item := &schema.UtilityLookupItem{StateProvince: "NV", DivisionType: "NERC_REGION", DivisionID: "WECC"}
	f, err := tm.resolver.ResolveByLookupItem(context.Background(), item, "")
	require.NoError(t, err)
	assert.Equal(t, "WECC", f.DivisionID)
}

func TestResolver_ResolveByLookupItem_NonUSNeverUsesUSGrid(t *testing.T) {
	t.Run("country without a factor", func(t *testing.T) {
		tm := setupTestResolver(t)
		defer tm.ctrl.Finish()

		tm.store.EXPECT().FindFactors(gomock.Any(), domain.FactorQuery{DivisionType: "Country", DivisionID: "FRANCE"}).Return(nil, nil)

		item := &schema.UtilityLookupItem{Country: "FRANCE", DivisionType: "Country", DivisionID: "FRANCE"}
		_, err := tm.resolver.ResolveByLookupItem(context.Background(), item, "")
		require.ErrorIs(t, err, domain.ErrNoUtilityFactor)
	})

	t.Run("country without division data", func(t *testing.T) {
		tm := setupTestResolver(t)
		defer tm.ctrl.Finish()

		item := &schema.UtilityLookupItem{UtilityNumber: "9", Country: "GERMANY"}
		_, err := tm.resolver.ResolveByLookupItem(context.Background(), item, "2021")
		require.ErrorIs(t, err, domain.ErrNoUtilityFactor)
	})
}

func TestDeriveDivisions(t *testing.T) {
	candidates := factor.DeriveDivisions(factor.DefaultDivisionRules, &schema.UtilityLookupItem{
		StateProvince: "CA", Country: "USA", DivisionType: "NERC_REGION", DivisionID: "WECC",
	})
	assert.Equal(t, []factor.Candidate{
		{Rule: "state", Division: domain.Division{Type: "STATE", ID: "CA"}},
		{Rule: "nerc_region", Division: domain.Division{Type: "NERC_REGION", ID: "WECC"}},
		{Rule: "default", Division: domain.Division{Type: "Country", ID: "USA"}},
	}, candidates)

	candidates = factor.DeriveDivisions(factor.DefaultDivisionRules, &schema.UtilityLookupItem{
		Country: "CANADA", DivisionType: "Country", DivisionID: "CANADA",
	})
	assert.Equal(t, []factor.Candidate{
		{Rule: "country", Division: domain.Division{Type: "Country", ID: "CANADA"}},
	}, candidates)

	assert.Empty(t, factor.DeriveDivisions(factor.DefaultDivisionRules, &schema.UtilityLookupItem{Country: "GERMANY"}))
}

func TestResolver_ResolveByLookupItem_Nil(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	_, err := tm.resolver.ResolveByLookupItem(context.Background(), nil, "2020")
	require.ErrorIs(t, err, domain.ErrInvalidActivity)
}

func TestResolver_Levels(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	query := domain.FactorQuery{Scope: "SCOPE 1"}
	tm.store.EXPECT().DistinctLevels(gomock.Any(), 1, query).Return([]string{"FUELS", "REFRIGERANT"}, nil)

	levels, err := tm.resolver.Levels(context.Background(), 1, query)
	require.NoError(t, err)
	assert.Equal(t, []string{"FUELS", "REFRIGERANT"}, levels)
}

func TestResolver_Factor(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	found := gasFactor("2020")
	tm.store.EXPECT().GetFactor(gomock.Any(), found.UUID).Return(&found, nil)
	tm.store.EXPECT().GetFactor(gomock.Any(), "missing").Return(nil, nil)

	f, err := tm.resolver.Factor(context.Background(), found.UUID)
	require.NoError(t, err)
	assert.Equal(t, found.UUID, f.UUID)

	_, err = tm.resolver.Factor(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrFactorNotFound)
}

func TestResolver_ElectricityLookups(t *testing.T) {
	tm := setupTestResolver(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	from := 2019
	tm.store.EXPECT().ElectricityCountries(ctx, "SCOPE 2", &from, nil).Return([]string{"FRANCE", domain.UnitedStates}, nil)
	tm.store.EXPECT().ElectricityUSAStates(ctx).Return([]string{"CA", "NC"}, nil)
	tm.store.EXPECT().ElectricityUSAUtilities(ctx, "NC", nil, nil).
		Return([]schema.UtilityLookupItem{{UtilityNumber: "5416"}}, nil)

	countries, err := tm.resolver.ElectricityCountries(ctx, "SCOPE 2", &from, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"FRANCE", domain.UnitedStates}, countries)

	states, err := tm.resolver.ElectricityStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"CA", "NC"}, states)

	utilities, err := tm.resolver.ElectricityUtilities(ctx, " NC ", nil, nil)
	require.NoError(t, err)
	require.Len(t, utilities, 1)

	_, err = tm.resolver.ElectricityUtilities(ctx, "", nil, nil)
	require.ErrorIs(t, err, domain.ErrInvalidActivity)
}

func TestDeriveDivisions_CustomRules(t *testing.T) {
	rules := []factor.DivisionRule{{
		Name: "utility",
		Derive: func(item *schema.UtilityLookupItem) (domain.Division, bool) {
			return domain.Division{Type: "UTILITY", ID: item.UtilityNumber}, item.UtilityNumber != ""
		},
	}}

	candidates := factor.DeriveDivisions(rules, &schema.UtilityLookupItem{UtilityNumber: "42"})
	assert.Equal(t, []factor.Candidate{{Rule: "utility", Division: domain.Division{Type: "UTILITY", ID: "42"}}}, candidates)

	assert.Empty(t, factor.DeriveDivisions(rules, &schema.UtilityLookupItem{}))
}

// resolutions reads the resolution counter for a step
func resolutions(t *testing.T, reg *prometheus.Registry, step string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != "carbon_engine_factor_resolutions_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "step" && l.GetValue() == step {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

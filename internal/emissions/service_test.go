package emissions_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/emissions"
	"github.com/feral-file/carbon-engine/internal/mocks"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

type testServiceMocks struct {
	ctrl     *gomock.Controller
	resolver *mocks.MockFactorResolver
	lookup   *mocks.MockLookupStore
	service  emissions.Service
}

func setupTestService(t *testing.T) *testServiceMocks {
	ctrl := gomock.NewController(t)
	tm := &testServiceMocks{
		ctrl:     ctrl,
		resolver: mocks.NewMockFactorResolver(ctrl),
		lookup:   mocks.NewMockLookupStore(ctrl),
	}
	tm.service = emissions.NewService(tm.resolver, emissions.NewCalculator(), tm.lookup)
	return tm
}

func TestService_ActivityEmissions(t *testing.T) {
	tm := setupTestService(t)
	defer tm.ctrl.Finish()

	activity := domain.Activity{
		Level1:      "FUELS",
		Level2:      "GASEOUS FUELS",
		Level3:      "NATURAL GAS",
		Amount:      decimal.NewFromInt(100),
		ActivityUOM: "cubic metres",
	}
	f := &schema.EmissionsFactor{
		UUID:                      "gas",
		Class:                     domain.EmissionsFactorClass,
		Level1:                    "FUELS",
		Level2:                    "GASEOUS FUELS",
		Level3:                    "NATURAL GAS",
		ActivityUOM:               "cubic metres",
		CO2EquivalentEmissions:    "1.88",
		CO2EquivalentEmissionsUOM: "kg",
		Year:                      "2020",
	}
	tm.resolver.EXPECT().ResolveOne(gomock.Any(), activity).Return(f, nil)

	result, err := tm.service.ActivityEmissions(context.Background(), activity)
	require.NoError(t, err)
	assert.True(t, result.Value.Equal(decimal.NewFromInt(188)))
	assert.Equal(t, "kg", result.UOM)
}

func TestService_ActivityEmissions_Errors(t *testing.T) {
	t.Run("missing classification", func(t *testing.T) {
		tm := setupTestService(t)
		defer tm.ctrl.Finish()

		_, err := tm.service.ActivityEmissions(context.Background(), domain.Activity{Amount: decimal.NewFromInt(1)})
		require.ErrorIs(t, err, domain.ErrInvalidActivity)
	})

	t.Run("resolver error propagates", func(t *testing.T) {
		tm := setupTestService(t)
		defer tm.ctrl.Finish()

		tm.resolver.EXPECT().ResolveOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrAmbiguousFactor)

		_, err := tm.service.ActivityEmissions(context.Background(), domain.Activity{Level1: "FUELS"})
		require.ErrorIs(t, err, domain.ErrAmbiguousFactor)
	})
}

func TestService_UsageEmissions(t *testing.T) {
	item := &schema.UtilityLookupItem{UUID: "utility-1", StateProvince: "CA", Country: "USA"}
	grid := &schema.EmissionsFactor{
		UUID:                      "grid",
		ActivityUOM:               "MWh",
		CO2EquivalentEmissions:    "250",
		CO2EquivalentEmissionsUOM: "kg",
		DivisionType:              "STATE",
		DivisionID:                "CA",
		Year:                      "2021",
	}

	t.Run("computes usage in kg", func(t *testing.T) {
		tm := setupTestService(t)
		defer tm.ctrl.Finish()

		tm.lookup.EXPECT().GetUtilityLookupItem(gomock.Any(), "utility-1").Return(item, nil)
		tm.resolver.EXPECT().ResolveByLookupItem(gomock.Any(), item, "2021-12-31").Return(grid, nil)

		result, err := tm.service.UsageEmissions(context.Background(), emissions.UsageRequest{
			UtilityID: "utility-1",
			ThruDate:  "2021-12-31",
			Usage:     decimal.NewFromInt(4000),
			UsageUOM:  "kWh",
		})
		require.NoError(t, err)
		assert.True(t, result.Value.Equal(decimal.NewFromInt(1000)), "got %s", result.Value)
		assert.Equal(t, "CA", result.DivisionID)
	})

	t.Run("unknown utility", func(t *testing.T) {
		tm := setupTestService(t)
		defer tm.ctrl.Finish()

		tm.lookup.EXPECT().GetUtilityLookupItem(gomock.Any(), "missing").Return(nil, nil)

		_, err := tm.service.UsageEmissions(context.Background(), emissions.UsageRequest{UtilityID: "missing", UsageUOM: "kWh"})
		require.ErrorIs(t, err, domain.ErrNoUtilityFactor)
	})
}

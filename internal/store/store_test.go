package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/querybuild"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func intPtr(i int) *int { return &i }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// buildTestFactor creates a natural gas factor for the given year
func buildTestFactor(year string, co2e string) *schema.EmissionsFactor {
	return &schema.EmissionsFactor{
		Class:                     domain.EmissionsFactorClass,
		Type:                      "EMISSIONS_FACTOR",
		Scope:                     "SCOPE 1",
		Level1:                    "FUELS",
		Level2:                    "GASEOUS FUELS",
		Level3:                    "NATURAL GAS",
		ActivityUOM:               "cubic metres",
		CO2EquivalentEmissions:    co2e,
		CO2EquivalentEmissionsUOM: "kg",
		Year:                      year,
		Source:                    "test",
	}
}

// buildTestUtility creates a utility lookup item
func buildTestUtility(name, state, year string) *schema.UtilityLookupItem {
	return &schema.UtilityLookupItem{
		Class:         domain.UtilityLookupItemClass,
		Key:           fmt.Sprintf("%s_%s", name, year),
		Year:          year,
		UtilityNumber: name + "-1",
		UtilityName:   name,
		Country:       domain.DivisionIDUSA,
		StateProvince: state,
		DivisionType:  domain.DivisionTypeNERCRegion,
		DivisionID:    "WECC",
	}
}

// buildTestToken creates a carbon token
func buildTestToken(id int64, description string) *schema.Token {
	return &schema.Token{
		TokenID:     id,
		TokenTypeID: 1,
		IssuedBy:    "0xIssuer",
		IssuedTo:    "0xHolderA",
		Description: description,
		Metadata:    datatypes.JSON(`{"source":"test"}`),
		Scope:       "SCOPE 2",
		Type:        "REC",
	}
}

// issue credits a holder and increments the asset total, as an issuance would
func issue(t *testing.T, store Store, kind domain.AssetKind, holder string, assetID int64, amount string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.CreditAvailable(ctx, kind, holder, assetID, dec(amount)))
	require.NoError(t, store.IncrementTotalIssued(ctx, kind, assetID, dec(amount)))
}

// =============================================================================
// Test: Emissions factors
// =============================================================================

func testEmissionsFactors(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("put assigns uuid and get returns it", func(t *testing.T) {
		factor := buildTestFactor("2020", "1.88")
		require.NoError(t, store.PutFactor(ctx, factor))
		require.NotEmpty(t, factor.UUID)

		got, err := store.GetFactor(ctx, factor.UUID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "1.88", got.CO2EquivalentEmissions)
		assert.Equal(t, "NATURAL GAS", got.Level3)
	})

	t.Run("get missing factor returns nil", func(t *testing.T) {
		got, err := store.GetFactor(ctx, "00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("put replaces factor with the same classification key", func(t *testing.T) {
		before, err := store.CountFactors(ctx)
		require.NoError(t, err)

		replacement := buildTestFactor("2020", "1.90")
		replacement.Level3 = "natural gas"
		require.NoError(t, store.PutFactor(ctx, replacement))

		after, err := store.CountFactors(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)

		found, err := store.FindFactors(ctx, domain.FactorQuery{Level1: "FUELS", Year: intPtr(2020)})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "1.90", found[0].CO2EquivalentEmissions)
	})

	t.Run("find matches case-insensitively, most recent year first", func(t *testing.T) {
		require.NoError(t, store.PutFactor(ctx, buildTestFactor("2018", "1.70")))
		require.NoError(t, store.PutFactor(ctx, buildTestFactor("2019", "1.80")))

		found, err := store.FindFactors(ctx, domain.FactorQuery{
			Level1:      "fuels",
			Level2:      "gaseous fuels",
			Level3:      "natural gas",
			ActivityUOM: "CUBIC METRES",
		})
		require.NoError(t, err)
		require.Len(t, found, 3)
		assert.Equal(t, "2020", found[0].Year)
		assert.Equal(t, "2019", found[1].Year)
		assert.Equal(t, "2018", found[2].Year)
	})

	t.Run("find honors a year range", func(t *testing.T) {
		found, err := store.FindFactors(ctx, domain.FactorQuery{
			Level1:   "FUELS",
			FromYear: intPtr(2018),
			ThruYear: intPtr(2019),
		})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "2019", found[0].Year)
	})

	t.Run("find returns empty when nothing matches", func(t *testing.T) {
		found, err := store.FindFactors(ctx, domain.FactorQuery{Level1: "FUELS", Year: intPtr(1999)})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("last year for level_1", func(t *testing.T) {
		year, err := store.LastYearForLevel1(ctx, "fuels")
		require.NoError(t, err)
		require.NotNil(t, year)
		assert.Equal(t, 2020, *year)

		year, err = store.LastYearForLevel1(ctx, "NO SUCH LEVEL")
		require.NoError(t, err)
		assert.Nil(t, year)
	})

	t.Run("distinct levels are constrained by parents", func(t *testing.T) {
		other := buildTestFactor("2020", "2.5")
		other.Level2 = "LIQUID FUELS"
		other.Level3 = "DIESEL"
		other.ActivityUOM = "litres"
		require.NoError(t, store.PutFactor(ctx, other))

		level2, err := store.DistinctLevels(ctx, 2, domain.FactorQuery{Scope: "scope 1", Level1: "FUELS"})
		require.NoError(t, err)
		assert.Equal(t, []string{"GASEOUS FUELS", "LIQUID FUELS"}, level2)

		level3, err := store.DistinctLevels(ctx, 3, domain.FactorQuery{Scope: "SCOPE 1", Level1: "FUELS", Level2: "LIQUID FUELS"})
		require.NoError(t, err)
		assert.Equal(t, []string{"DIESEL"}, level3)

		_, err = store.DistinctLevels(ctx, 5, domain.FactorQuery{})
		require.Error(t, err)
	})

	t.Run("absent level_4 matches factors with and without one", func(t *testing.T) {
		bottled := buildTestFactor("2020", "1.51")
		bottled.Level2 = "LIQUID FUELS"
		bottled.Level3 = "LPG"
		bottled.Level4 = "BOTTLED"
		bottled.ActivityUOM = "litres"
		require.NoError(t, store.PutFactor(ctx, bottled))

		bulk := buildTestFactor("2020", "1.55")
		bulk.Level2 = "LIQUID FUELS"
		bulk.Level3 = "LPG"
		bulk.ActivityUOM = "litres"
		require.NoError(t, store.PutFactor(ctx, bulk))

		found, err := store.FindFactors(ctx, domain.FactorQuery{Level1: "FUELS", Level3: "lpg"})
		require.NoError(t, err)
		assert.Len(t, found, 2)

		found, err = store.FindFactors(ctx, domain.FactorQuery{Level1: "FUELS", Level3: "lpg", Level4: "bottled"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "1.51", found[0].CO2EquivalentEmissions)
	})

	t.Run("electricity countries include the united states", func(t *testing.T) {
		grid := &schema.EmissionsFactor{
			Class:                     domain.EmissionsFactorClass,
			Scope:                     "SCOPE 2",
			Level1:                    domain.ElectricityCountriesLevel1,
			Level2:                    "FRANCE",
			Level3:                    "ELECTRICITY",
			ActivityUOM:               "kwh",
			CO2EquivalentEmissions:    "0.06",
			CO2EquivalentEmissionsUOM: "kg",
			Year:                      "2019",
			DivisionType:              domain.DivisionTypeCountry,
			DivisionID:                "FRANCE",
		}
		require.NoError(t, store.PutFactor(ctx, grid))

		countries, err := store.ElectricityCountries(ctx, "SCOPE 2", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"FRANCE", domain.UnitedStates}, countries)

		countries, err = store.ElectricityCountries(ctx, "SCOPE 2", intPtr(2020), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{domain.UnitedStates}, countries)
	})
}

// =============================================================================
// Test: Utility lookup items
// =============================================================================

func testUtilityLookupItems(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("put and get", func(t *testing.T) {
		item := buildTestUtility("Pacific Power", "CA", "2019")
		require.NoError(t, store.PutUtilityLookupItem(ctx, item))
		require.NotEmpty(t, item.UUID)

		got, err := store.GetUtilityLookupItem(ctx, item.UUID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Pacific Power", got.UtilityName)

		missing, err := store.GetUtilityLookupItem(ctx, "00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("put replaces the same item", func(t *testing.T) {
		before, err := store.CountUtilityLookupItems(ctx)
		require.NoError(t, err)
		require.NoError(t, store.PutUtilityLookupItem(ctx, buildTestUtility("Pacific Power", "CA", "2019")))
		after, err := store.CountUtilityLookupItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("states and utilities", func(t *testing.T) {
		require.NoError(t, store.PutUtilityLookupItem(ctx, buildTestUtility("Pacific Power", "CA", "2017")))
		require.NoError(t, store.PutUtilityLookupItem(ctx, buildTestUtility("Pacific Power", "CA", "2021")))
		require.NoError(t, store.PutUtilityLookupItem(ctx, buildTestUtility("Desert Electric", "AZ", "2019")))

		states, err := store.ElectricityUSAStates(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"AZ", "CA"}, states)

		utilities, err := store.ElectricityUSAUtilities(ctx, "CA", intPtr(2016), intPtr(2019))
		require.NoError(t, err)
		require.Len(t, utilities, 1)
		assert.Equal(t, "2019", utilities[0].Year)

		// Nothing in range: latest item wins
		utilities, err = store.ElectricityUSAUtilities(ctx, "CA", intPtr(2010), intPtr(2012))
		require.NoError(t, err)
		require.Len(t, utilities, 1)
		assert.Equal(t, "2021", utilities[0].Year)
	})
}

// =============================================================================
// Test: Ledger mutations
// =============================================================================

func testLedgerMutations(t *testing.T, store Store) {
	ctx := context.Background()
	const tokenID int64 = 5
	require.NoError(t, store.CreateToken(ctx, buildTestToken(tokenID, "Solar REC")))

	t.Run("transfer then retire keeps the row sum", func(t *testing.T) {
		issue(t, store, domain.AssetKindToken, "0xHolderA", tokenID, "1000")

		require.NoError(t, store.Transfer(ctx, domain.AssetKindToken, "0xHolderA", tokenID, dec("300")))
		b, err := store.SelectBalance(ctx, domain.AssetKindToken, "0xholdera", tokenID)
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.True(t, b.Available.Equal(dec("700")))
		assert.True(t, b.Transferred.Equal(dec("300")))

		require.NoError(t, store.Retire(ctx, domain.AssetKindToken, "0xHOLDERA", tokenID, dec("200")))
		b, err = store.SelectBalance(ctx, domain.AssetKindToken, "0xHolderA", tokenID)
		require.NoError(t, err)
		assert.True(t, b.Available.Equal(dec("500")))
		assert.True(t, b.Retired.Equal(dec("200")))
		assert.True(t, b.Transferred.Equal(dec("300")))
		assert.True(t, b.Available.Add(b.Retired).Add(b.Transferred).Equal(dec("1000")))
		assert.Equal(t, "Solar REC", b.AssetDescription)
		assert.Equal(t, domain.AssetKindToken, b.Kind)
	})

	t.Run("credits accumulate on one row", func(t *testing.T) {
		issue(t, store, domain.AssetKindToken, "0xHolderB", tokenID, "10")
		issue(t, store, domain.AssetKindToken, "0xholderb", tokenID, "15")

		b, err := store.SelectBalance(ctx, domain.AssetKindToken, "0xHOLDERB", tokenID)
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.True(t, b.Available.Equal(dec("25")))
		assert.Equal(t, "0xholderb", b.IssuedTo)
	})

	t.Run("insufficient balance leaves the row unchanged", func(t *testing.T) {
		err := store.Transfer(ctx, domain.AssetKindToken, "0xHolderB", tokenID, dec("26"))
		require.ErrorIs(t, err, domain.ErrInsufficientBalance)

		err = store.Retire(ctx, domain.AssetKindToken, "0xHolderB", tokenID, dec("1000"))
		require.ErrorIs(t, err, domain.ErrInsufficientBalance)

		b, err := store.SelectBalance(ctx, domain.AssetKindToken, "0xHolderB", tokenID)
		require.NoError(t, err)
		assert.True(t, b.Available.Equal(dec("25")))
		assert.True(t, b.Retired.IsZero())
		assert.True(t, b.Transferred.IsZero())
	})

	t.Run("debit of unknown holder", func(t *testing.T) {
		err := store.Transfer(ctx, domain.AssetKindToken, "0xNobody", tokenID, dec("1"))
		require.ErrorIs(t, err, domain.ErrBalanceNotFound)

		b, err := store.SelectBalance(ctx, domain.AssetKindToken, "0xNobody", tokenID)
		require.NoError(t, err)
		assert.Nil(t, b)
	})

	t.Run("invalid amounts are rejected", func(t *testing.T) {
		for _, amount := range []string{"0", "-5", "1.5"} {
			err := store.CreditAvailable(ctx, domain.AssetKindToken, "0xHolderA", tokenID, dec(amount))
			require.ErrorIs(t, err, domain.ErrInvalidAmount, amount)
		}
	})

	t.Run("trackers have no quantities", func(t *testing.T) {
		err := store.CreditAvailable(ctx, domain.AssetKindTracker, "0xHolderA", 1, dec("1"))
		require.ErrorIs(t, err, domain.ErrInvalidAssetKind)

		err = store.Transfer(ctx, "bogus", "0xHolderA", 1, dec("1"))
		require.ErrorIs(t, err, domain.ErrInvalidAssetKind)
	})

	t.Run("totals and sums agree", func(t *testing.T) {
		totals, err := store.GetAssetTotals(ctx, domain.AssetKindToken, tokenID)
		require.NoError(t, err)
		require.NotNil(t, totals)
		assert.True(t, totals.TotalIssued.Equal(dec("1025")))

		sums, err := store.SumBalances(ctx, domain.AssetKindToken, tokenID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), sums.Holders)
		assert.True(t, sums.Available.Add(sums.Retired).Add(sums.Transferred).Equal(totals.TotalIssued))

		require.NoError(t, store.IncrementTotalRetired(ctx, domain.AssetKindToken, tokenID, dec("200")))
		totals, err = store.GetAssetTotals(ctx, domain.AssetKindToken, tokenID)
		require.NoError(t, err)
		assert.True(t, totals.TotalRetired.Equal(sums.Retired))
	})

	t.Run("increment of unknown asset", func(t *testing.T) {
		err := store.IncrementTotalIssued(ctx, domain.AssetKindToken, 999, dec("1"))
		require.ErrorIs(t, err, domain.ErrAssetNotFound)

		totals, err := store.GetAssetTotals(ctx, domain.AssetKindToken, 999)
		require.NoError(t, err)
		assert.Nil(t, totals)
	})

	t.Run("received credits are counted apart from issuance", func(t *testing.T) {
		const otherID int64 = 6
		require.NoError(t, store.CreateToken(ctx, buildTestToken(otherID, "Offset")))
		issue(t, store, domain.AssetKindToken, "0xSender", otherID, "100")

		require.NoError(t, store.Transfer(ctx, domain.AssetKindToken, "0xSender", otherID, dec("40")))
		require.NoError(t, store.CreditReceived(ctx, domain.AssetKindToken, "0xReceiver", otherID, dec("40")))

		b, err := store.SelectBalance(ctx, domain.AssetKindToken, "0xreceiver", otherID)
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.True(t, b.Available.Equal(dec("40")))
		assert.True(t, b.Received.Equal(dec("40")))

		sums, err := store.SumBalances(ctx, domain.AssetKindToken, otherID)
		require.NoError(t, err)
		assert.True(t, sums.Received.Equal(dec("40")))
		total := sums.Available.Add(sums.Retired).Add(sums.Transferred)
		assert.True(t, total.Sub(sums.Received).Equal(dec("100")), "got %s", total)
	})
}

// =============================================================================
// Test: Product tokens and trackers
// =============================================================================

func testProductsAndTrackers(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.CreateTracker(ctx, &schema.Tracker{TrackerID: 7, Trackee: "0xTrackee", Description: "Gas well"}))
	require.NoError(t, store.CreateProductToken(ctx, &schema.ProductToken{ProductID: 3, TrackerID: 7, Name: "Natural gas", Unit: "MMBtu"}))

	t.Run("product quantities", func(t *testing.T) {
		issue(t, store, domain.AssetKindProduct, "0xHolderA", 3, "40")
		require.NoError(t, store.Retire(ctx, domain.AssetKindProduct, "0xHolderA", 3, dec("15")))

		b, err := store.SelectBalance(ctx, domain.AssetKindProduct, "0xHolderA", 3)
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.True(t, b.Available.Equal(dec("25")))
		assert.True(t, b.Retired.Equal(dec("15")))
		assert.Equal(t, "Natural gas", b.AssetDescription)
	})

	t.Run("tracker status upsert", func(t *testing.T) {
		require.NoError(t, store.SetTrackerStatus(ctx, "0xHolderA", 7, domain.TrackerStatusPending))
		require.NoError(t, store.SetTrackerStatus(ctx, "0xHOLDERA", 7, domain.TrackerStatusAudited))

		b, err := store.SelectBalance(ctx, domain.AssetKindTracker, "0xholdera", 7)
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.Equal(t, string(domain.TrackerStatusAudited), b.Status)
		assert.True(t, b.Available.IsZero())
		assert.Equal(t, "Gas well", b.AssetDescription)

		count, err := store.Count(ctx, domain.AssetKindTracker, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("invalid tracker status", func(t *testing.T) {
		err := store.SetTrackerStatus(ctx, "0xHolderA", 7, "LOST")
		require.ErrorIs(t, err, domain.ErrInvalidTrackerStatus)
	})

	t.Run("duplicate registration is ignored", func(t *testing.T) {
		require.NoError(t, store.CreateTracker(ctx, &schema.Tracker{TrackerID: 7, Description: "Other"}))
		b, err := store.SelectBalance(ctx, domain.AssetKindTracker, "0xHolderA", 7)
		require.NoError(t, err)
		assert.Equal(t, "Gas well", b.AssetDescription)
	})
}

// =============================================================================
// Test: Paginated selection
// =============================================================================

func testSelectPaginated(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.CreateToken(ctx, buildTestToken(1, "Solar REC")))
	require.NoError(t, store.CreateToken(ctx, buildTestToken(2, "Wind offset")))
	for i := 0; i < 5; i++ {
		issue(t, store, domain.AssetKindToken, fmt.Sprintf("0xHolder%d", i), 1, "10")
	}
	issue(t, store, domain.AssetKindToken, "0xHolder0", 2, "3")

	t.Run("pages are ordered and bounded", func(t *testing.T) {
		page, err := store.SelectPaginated(ctx, domain.AssetKindToken, 0, 4, nil)
		require.NoError(t, err)
		require.Len(t, page, 4)
		assert.Equal(t, "0xholder0", page[0].IssuedTo)
		assert.Equal(t, int64(1), page[0].AssetID)

		rest, err := store.SelectPaginated(ctx, domain.AssetKindToken, 4, 4, nil)
		require.NoError(t, err)
		require.Len(t, rest, 2)
		assert.Equal(t, int64(2), rest[1].AssetID)

		count, err := store.Count(ctx, domain.AssetKindToken, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(6), count)
	})

	t.Run("filter on holder is case-insensitive", func(t *testing.T) {
		filter := querybuild.And{querybuild.Cond{Field: "issued_to", Type: querybuild.FieldTypeString, Op: querybuild.OpEq, Value: "0XHOLDER0"}}
		rows, err := store.SelectPaginated(ctx, domain.AssetKindToken, 0, 10, filter)
		require.NoError(t, err)
		assert.Len(t, rows, 2)

		count, err := store.Count(ctx, domain.AssetKindToken, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("filter can reference the asset table", func(t *testing.T) {
		filter := querybuild.Cond{Field: "description", Type: querybuild.FieldTypeString, Op: querybuild.OpLike, Value: "wind"}
		rows, err := store.SelectPaginated(ctx, domain.AssetKindToken, 0, 10, filter)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(2), rows[0].AssetID)
	})

	t.Run("bundles combine OR group with conjunctions", func(t *testing.T) {
		filter := querybuild.FromBundles([]querybuild.Bundle{
			{Field: "token_id", FieldType: "number", Value: 1, Op: "eq", Conjunction: false},
			{Field: "token_id", FieldType: "number", Value: 2, Op: "eq", Conjunction: false},
			{Field: "issued_to", FieldType: "string", Value: "0xholder0", Op: "eq", Conjunction: true},
		})
		rows, err := store.SelectPaginated(ctx, domain.AssetKindToken, 0, 10, filter)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("unknown column", func(t *testing.T) {
		filter := querybuild.Cond{Field: "nope", Type: querybuild.FieldTypeString, Op: querybuild.OpEq, Value: "x"}
		_, err := store.SelectPaginated(ctx, domain.AssetKindToken, 0, 10, filter)
		require.ErrorIs(t, err, domain.ErrUnknownColumn)
	})
}

// =============================================================================
// Test: Outbox
// =============================================================================

func buildTestOutboxEvent(dedupe string, amount string) *schema.OutboxEvent {
	return &schema.OutboxEvent{
		Kind:      schema.OutboxKindIssued,
		AssetKind: string(domain.AssetKindToken),
		AssetID:   5,
		Holder:    "0xHolderA",
		Amount:    dec(amount),
		Payload:   datatypes.JSON(`{"amount":"` + amount + `"}`),
		DedupeKey: dedupe,
	}
}

func testOutbox(t *testing.T, store Store) {
	ctx := context.Background()

	first := buildTestOutboxEvent("dedupe-1", "100")
	second := buildTestOutboxEvent("dedupe-2", "100")
	require.NoError(t, store.EnqueueOutbox(ctx, first))
	require.NoError(t, store.EnqueueOutbox(ctx, second))
	require.NoError(t, store.EnqueueOutbox(ctx, buildTestOutboxEvent("dedupe-1", "100")))

	t.Run("pending entries are listed oldest first", func(t *testing.T) {
		pending, err := store.ListPendingOutbox(ctx, 10)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, first.ID, pending[0].ID)
		assert.Equal(t, "0xholdera", pending[0].Holder)
	})

	t.Run("published entries leave the pending list", func(t *testing.T) {
		require.NoError(t, store.MarkOutboxPublished(ctx, first.ID, time.Now()))
		pending, err := store.ListPendingOutbox(ctx, 10)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, second.ID, pending[0].ID)
	})

	t.Run("attempts fail permanently at the limit", func(t *testing.T) {
		require.NoError(t, store.MarkOutboxAttemptFailed(ctx, second.ID, "broker down", 2))
		pending, err := store.ListPendingOutbox(ctx, 10)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, 1, pending[0].Attempts)
		require.NotNil(t, pending[0].LastError)
		assert.Equal(t, "broker down", *pending[0].LastError)

		require.NoError(t, store.MarkOutboxAttemptFailed(ctx, second.ID, "broker down", 2))
		pending, err = store.ListPendingOutbox(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("reconcile marks the oldest matching entry", func(t *testing.T) {
		ok, err := store.ReconcileOutbox(ctx, schema.OutboxKindIssued, domain.AssetKindToken, 5, "0xHOLDERA", dec("100"))
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.ReconcileOutbox(ctx, schema.OutboxKindIssued, domain.AssetKindToken, 5, "0xHolderA", dec("100"))
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.ReconcileOutbox(ctx, schema.OutboxKindIssued, domain.AssetKindToken, 5, "0xHolderA", dec("100"))
		require.NoError(t, err)
		assert.False(t, ok)

		counts, err := store.CountOutboxByStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), counts[schema.OutboxStatusReconciled])
		assert.Zero(t, counts[schema.OutboxStatusPending])
	})
}

// =============================================================================
// Test: Key-value store and transactions
// =============================================================================

func testKeyValueStore(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "import:factors", "42"))
		value, err := store.GetKeyValue(ctx, "import:factors")
		require.NoError(t, err)
		assert.Equal(t, "42", value)

		require.NoError(t, store.SetKeyValue(ctx, "import:factors", "43"))
		value, err = store.GetKeyValue(ctx, "import:factors")
		require.NoError(t, err)
		assert.Equal(t, "43", value)

		value, err = store.GetKeyValue(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("mark once", func(t *testing.T) {
		first, err := store.MarkOnce(ctx, "ledger_event:0xabc:1")
		require.NoError(t, err)
		assert.True(t, first)

		again, err := store.MarkOnce(ctx, "ledger_event:0xabc:1")
		require.NoError(t, err)
		assert.False(t, again)
	})
}

func testWithTx(t *testing.T, store Store) {
	ctx := context.Background()
	require.NoError(t, store.CreateToken(ctx, buildTestToken(11, "Tx token")))

	t.Run("error rolls back every write", func(t *testing.T) {
		err := store.WithTx(ctx, func(tx Store) error {
			require.NoError(t, tx.CreditAvailable(ctx, domain.AssetKindToken, "0xHolderA", 11, dec("5")))
			return tx.Transfer(ctx, domain.AssetKindToken, "0xHolderA", 11, dec("6"))
		})
		require.ErrorIs(t, err, domain.ErrInsufficientBalance)

		b, err := store.SelectBalance(ctx, domain.AssetKindToken, "0xHolderA", 11)
		require.NoError(t, err)
		assert.Nil(t, b)
	})

	t.Run("success commits", func(t *testing.T) {
		err := store.WithTx(ctx, func(tx Store) error {
			if err := tx.CreditAvailable(ctx, domain.AssetKindToken, "0xHolderA", 11, dec("5")); err != nil {
				return err
			}
			return tx.IncrementTotalIssued(ctx, domain.AssetKindToken, 11, dec("5"))
		})
		require.NoError(t, err)

		totals, err := store.GetAssetTotals(ctx, domain.AssetKindToken, 11)
		require.NoError(t, err)
		assert.True(t, totals.TotalIssued.Equal(dec("5")))
	})
}

// RunStoreTests runs every store test against the store returned by initDB
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"EmissionsFactors", testEmissionsFactors},
		{"UtilityLookupItems", testUtilityLookupItems},
		{"LedgerMutations", testLedgerMutations},
		{"ProductsAndTrackers", testProductsAndTrackers},
		{"SelectPaginated", testSelectPaginated},
		{"Outbox", testOutbox},
		{"KeyValueStore", testKeyValueStore},
		{"WithTx", testWithTx},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}

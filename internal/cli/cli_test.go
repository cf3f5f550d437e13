package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/emissions"
	"github.com/feral-file/carbon-engine/internal/importer"
	"github.com/feral-file/carbon-engine/internal/ledger"
	"github.com/feral-file/carbon-engine/internal/mocks"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

type testCLIMocks struct {
	ctrl      *gomock.Controller
	importer  *mocks.MockImporter
	resolver  *mocks.MockFactorResolver
	emissions *mocks.MockEmissionsService
	ledger    *mocks.MockLedgerService
	released  bool
}

func setupTestCLI(t *testing.T) *testCLIMocks {
	ctrl := gomock.NewController(t)
	return &testCLIMocks{
		ctrl:      ctrl,
		importer:  mocks.NewMockImporter(ctrl),
		resolver:  mocks.NewMockFactorResolver(ctrl),
		emissions: mocks.NewMockEmissionsService(ctrl),
		ledger:    mocks.NewMockLedgerService(ctrl),
	}
}

func (tm *testCLIMocks) factory(ctx context.Context, opts *RootOptions) (*Services, func(), error) {
	return &Services{
		Importer:  tm.importer,
		Resolver:  tm.resolver,
		Emissions: tm.emissions,
		Ledger:    tm.ledger,
	}, func() { tm.released = true }, nil
}

func (tm *testCLIMocks) run(args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand(tm.factory)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestImportFactors(t *testing.T) {
	tm := setupTestCLI(t)
	defer tm.ctrl.Finish()

	tm.importer.EXPECT().
		ImportFactors(gomock.Any(), "data/factors.csv", importer.Options{Source: "EPA", SourceYear: "2021"}).
		Return(&importer.Result{
			Kind:       importer.KindFactors,
			File:       "data/factors.csv",
			Rows:       5,
			Loaded:     3,
			Ignored:    map[string]int{"Missing year": 1, "Duplicate row": 1},
			Total:      40,
			ImportedAt: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		}, nil)

	out, err := tm.run("import", "factors", "data/factors.csv", "--source", "EPA", "--source-year", "2021")
	require.NoError(t, err)
	assert.True(t, tm.released)
	assert.Contains(t, out, "Imported factors from data/factors.csv at 2026-04-01 09:00:00")
	assert.Contains(t, out, "loaded:  3")
	assert.Contains(t, out, "ignored: 2")
	assert.Contains(t, out, "Duplicate row: 1")
	assert.Contains(t, out, "total:   40")
}

func TestImportUtilities_PartialFailureJSON(t *testing.T) {
	tm := setupTestCLI(t)
	defer tm.ctrl.Finish()

	tm.importer.EXPECT().ImportUtilities(gomock.Any(), "utilities.csv", importer.Options{}).
		Return(&importer.Result{Kind: importer.KindUtilities, File: "utilities.csv", Rows: 2, Loaded: 1, Failed: 1}, errors.New("connection reset"))

	out, err := tm.run("--format", "json", "import", "utilities", "utilities.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")

	var result importer.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 1, result.Failed)
}

func TestImportStatus(t *testing.T) {
	tm := setupTestCLI(t)
	defer tm.ctrl.Finish()

	tm.importer.EXPECT().LastImport(gomock.Any(), importer.KindUtilities).Return(nil, nil)

	_, err := tm.run("import", "status", "utilities")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no utilities import recorded")

	_, err = tm.run("import", "status", "tokens")
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	tm := setupTestCLI(t)
	defer tm.ctrl.Finish()

	year := 2021
	tm.resolver.EXPECT().
		Resolve(gomock.Any(), domain.FactorQuery{Scope: "SCOPE 1", Level1: "FUELS", Level2: "GASEOUS FUELS", ActivityUOM: "litres", Year: &year}, nil).
		Return([]schema.EmissionsFactor{{
			UUID:                      "f1",
			Scope:                     "SCOPE 1",
			Level1:                    "FUELS",
			Level2:                    "GASEOUS FUELS",
			Level3:                    "PROPANE",
			Year:                      "2021",
			ActivityUOM:               "litres",
			CO2EquivalentEmissions:    "1.5",
			CO2EquivalentEmissionsUOM: "kg",
		}}, nil)

	out, err := tm.run("resolve", "--scope", "SCOPE 1", "--level-1", "FUELS", "--level-2", "GASEOUS FUELS", "--uom", "litres", "--year", "2021")
	require.NoError(t, err)
	assert.Contains(t, out, "FUELS > GASEOUS FUELS > PROPANE")
	assert.Contains(t, out, "1.5 kg/litres")
}

func TestResolve_NoFactors(t *testing.T) {
	tm := setupTestCLI(t)
	defer tm.ctrl.Finish()

	tm.resolver.EXPECT().Resolve(gomock.Any(), domain.FactorQuery{Level1: "NOTHING"}, nil).Return(nil, nil)

	out, err := tm.run("resolve", "--level-1", "NOTHING")
	require.NoError(t, err)
	assert.Contains(t, out, "No factors found")
}

func TestCompute(t *testing.T) {
	t.Run("activity", func(t *testing.T) {
		tm := setupTestCLI(t)
		defer tm.ctrl.Finish()

		tm.emissions.EXPECT().ActivityEmissions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, activity domain.Activity) (*domain.EmissionsResult, error) {
				assert.Equal(t, "FUELS", activity.Level1)
				assert.Equal(t, "litres", activity.ActivityUOM)
				assert.Equal(t, "100", activity.Amount.String())
				return &domain.EmissionsResult{Value: decimal.NewFromInt(150), UOM: "kg", Year: 2021, FactorID: "f1"}, nil
			})

		out, err := tm.run("compute", "--level-1", "FUELS", "--amount", "100", "--uom", "litres")
		require.NoError(t, err)
		assert.Contains(t, out, "150 kg CO2e (2021, factor f1)")
	})

	t.Run("utility usage", func(t *testing.T) {
		tm := setupTestCLI(t)
		defer tm.ctrl.Finish()

		tm.emissions.EXPECT().UsageEmissions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req emissions.UsageRequest) (*domain.EmissionsResult, error) {
				assert.Equal(t, "u1", req.UtilityID)
				assert.Equal(t, "2019-12-31", req.ThruDate)
				assert.Equal(t, "kWh", req.UsageUOM)
				return &domain.EmissionsResult{
					Value:              decimal.NewFromInt(5),
					UOM:                "kg",
					Year:               2019,
					RenewableAmount:    decimal.NewFromInt(2),
					NonRenewableAmount: decimal.NewFromInt(10),
					DivisionType:       "NERC_REGION",
					DivisionID:         "RFC",
				}, nil
			})

		out, err := tm.run("compute", "--utility-id", "u1", "--thru-date", "2019-12-31", "--amount", "12", "--uom", "kWh")
		require.NoError(t, err)
		assert.Contains(t, out, "renewable:     2")
		assert.Contains(t, out, "division:      NERC_REGION RFC")
	})

	t.Run("invalid amount", func(t *testing.T) {
		tm := setupTestCLI(t)
		defer tm.ctrl.Finish()

		_, err := tm.run("compute", "--amount", "lots", "--uom", "kWh")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		assert.False(t, tm.released)
	})
}

func TestAudit(t *testing.T) {
	t.Run("conserved", func(t *testing.T) {
		tm := setupTestCLI(t)
		defer tm.ctrl.Finish()

		tm.ledger.EXPECT().Audit(gomock.Any(), domain.AssetKindToken, int64(7)).
			Return(&ledger.ConservationReport{Kind: domain.AssetKindToken, AssetID: 7, Holders: 2, Conserved: true, RetiredMatches: true}, nil)

		out, err := tm.run("audit", "token", "7")
		require.NoError(t, err)
		assert.Contains(t, out, "token 7: 2 holder(s)")
		assert.Contains(t, out, "conserved")
	})

	t.Run("discrepancy", func(t *testing.T) {
		tm := setupTestCLI(t)
		defer tm.ctrl.Finish()

		tm.ledger.EXPECT().Audit(gomock.Any(), domain.AssetKindProduct, int64(3)).
			Return(&ledger.ConservationReport{Kind: domain.AssetKindProduct, AssetID: 3, Discrepancy: decimal.NewFromInt(-10), RetiredMatches: true}, nil)

		out, err := tm.run("audit", "product", "3")
		assert.ErrorIs(t, err, ErrNotConserved)
		assert.Contains(t, out, "NOT conserved: discrepancy -10")
	})

	t.Run("invalid asset id", func(t *testing.T) {
		tm := setupTestCLI(t)
		defer tm.ctrl.Finish()

		_, err := tm.run("audit", "token", "seven")
		require.Error(t, err)
	})
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	tm := setupTestCLI(t)
	defer tm.ctrl.Finish()

	_, err := tm.run("--format", "yaml", "audit", "token", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

package importer_test

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/carbon-engine/internal/adapter"
	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/importer"
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

type testImporterMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	fs       *mocks.MockFileSystem
	clock    *mocks.MockClock
	importer importer.Importer
}

func setupTestImporter(t *testing.T) *testImporterMocks {
	ctrl := gomock.NewController(t)
	tm := &testImporterMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
		fs:    mocks.NewMockFileSystem(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}
	tm.importer = importer.New(importer.Config{Workers: 4, QueueSize: 16}, tm.store, tm.fs, adapter.NewJSON(), tm.clock)
	return tm
}

func (tm *testImporterMocks) file(path, content string) {
	tm.fs.EXPECT().Open(path).Return(io.NopCloser(strings.NewReader(content)), nil)
}

const factorsCSV = `Scope,Level 1,Level 2,Level 3,Level 4,Text,Year,Activity UOM,CO2 Equivalent Emissions,CO2 Equivalent Emissions UOM,Percent of Renewables,Division Type,Division ID
scope 2,eGRID EMISSIONS FACTORS,USA,NERC_REGION: RFC,,,2019,MWH,512.5,kg,12.4,NERC_REGION,RFC
scope 2,eGRID EMISSIONS FACTORS,USA,NERC_REGION: RFC,,,2019,MWH,515,kg,12.4,NERC_REGION,RFC
SCOPE 1,FUELS,GASEOUS FUELS,NATURAL GAS,,,2021,cubic metres,1.88,kg,,,
SCOPE 1,FUELS,GASEOUS FUELS,PROPANE,,,,litres,1.5,kg,,,
SCOPE 1,FUELS,GASEOUS FUELS,BUTANE,,,2021,litres,lots,kg,,,
`

func TestImporter_ImportFactors(t *testing.T) {
	tm := setupTestImporter(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	tm.file("/data/factors.csv", factorsCSV)

	var mu sync.Mutex
	stored := map[string]*schema.EmissionsFactor{}
	tm.store.EXPECT().PutFactor(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, f *schema.EmissionsFactor) error {
		mu.Lock()
		defer mu.Unlock()
		stored[f.Level3] = f
		return nil
	}).Times(2)
	tm.store.EXPECT().CountFactors(ctx).Return(int64(42), nil)
	tm.clock.EXPECT().Now().Return(now)

	var recorded string
	tm.store.EXPECT().SetKeyValue(ctx, "last_import:factors", gomock.Any()).DoAndReturn(func(ctx context.Context, key, value string) error {
		recorded = value
		return nil
	})

	result, err := tm.importer.ImportFactors(ctx, "/data/factors.csv", importer.Options{SourceYear: "2021"})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Rows)
	assert.Equal(t, 2, result.Loaded)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, int64(42), result.Total)
	assert.Equal(t, 3, result.IgnoredCount())
	assert.Equal(t, 1, result.Ignored["Duplicate row"])
	assert.Equal(t, 1, result.Ignored["Missing year"])
	assert.Equal(t, 1, result.Ignored["Invalid co2_equivalent_emissions"])
	assert.Equal(t, now, result.ImportedAt)

	// The later of two rows with the same key wins
	rfc := stored["NERC_REGION: RFC"]
	require.NotNil(t, rfc)
	assert.Equal(t, "515", rfc.CO2EquivalentEmissions)
	assert.Equal(t, "SCOPE 2", rfc.Scope)
	assert.Equal(t, domain.EmissionsFactorClass, rfc.Class)
	assert.Equal(t, "EMISSIONS_FACTOR", rfc.Type)
	assert.Equal(t, "factors.csv", rfc.Source)
	assert.Equal(t, "2021", rfc.SourceYear)
	require.NotNil(t, rfc.PercentOfRenewables)
	assert.Equal(t, "12.4", *rfc.PercentOfRenewables)
	assert.NotEmpty(t, rfc.UUID)

	gas := stored["NATURAL GAS"]
	require.NotNil(t, gas)
	assert.Nil(t, gas.PercentOfRenewables)
	assert.Equal(t, "cubic metres", gas.ActivityUOM)

	assert.Contains(t, recorded, `"kind":"factors"`)
	assert.Contains(t, recorded, `"loaded":2`)
}

func TestImporter_ImportFactors_MissingColumn(t *testing.T) {
	tm := setupTestImporter(t)
	defer tm.ctrl.Finish()

	tm.file("factors.csv", "scope,level_1,year\nSCOPE 1,FUELS,2021\n")

	_, err := tm.importer.ImportFactors(context.Background(), "factors.csv", importer.Options{})
	assert.ErrorIs(t, err, importer.ErrMissingColumn)
}

func TestImporter_ImportFactors_EmptyFile(t *testing.T) {
	tm := setupTestImporter(t)
	defer tm.ctrl.Finish()

	tm.file("factors.csv", "")

	_, err := tm.importer.ImportFactors(context.Background(), "factors.csv", importer.Options{})
	assert.ErrorIs(t, err, importer.ErrMissingColumn)
}

func TestImporter_ImportFactors_OpenError(t *testing.T) {
	tm := setupTestImporter(t)
	defer tm.ctrl.Finish()

	tm.fs.EXPECT().Open("missing.csv").Return(nil, os.ErrNotExist)

	_, err := tm.importer.ImportFactors(context.Background(), "missing.csv", importer.Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestImporter_ImportFactors_StoreFailure(t *testing.T) {
	tm := setupTestImporter(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	tm.file("factors.csv", factorsCSV)

	calls := 0
	var mu sync.Mutex
	tm.store.EXPECT().PutFactor(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, f *schema.EmissionsFactor) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if f.Level3 == "NATURAL GAS" {
			return errors.New("connection reset")
		}
		return nil
	}).Times(2)

	result, err := tm.importer.ImportFactors(ctx, "factors.csv", importer.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, 1, result.Loaded)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 2, calls)
}

const utilitiesCSV = `Year,Utility Number,Utility Name,State Province,Division ID
2019,34,City of Abbeville - (SC),SC,SERC
2019,195,Alabama Power Co,AL,SERC
2019,,Nameless,AL,SERC
2019,5416,Duke Energy's Carolinas,NC,SERC
`

func TestImporter_ImportUtilities(t *testing.T) {
	tm := setupTestImporter(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	tm.file("utilities.csv", utilitiesCSV)

	var mu sync.Mutex
	stored := map[string]*schema.UtilityLookupItem{}
	tm.store.EXPECT().PutUtilityLookupItem(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, item *schema.UtilityLookupItem) error {
		mu.Lock()
		defer mu.Unlock()
		stored[item.UtilityNumber] = item
		return nil
	}).Times(3)
	tm.store.EXPECT().CountUtilityLookupItems(ctx).Return(int64(3), nil)
	tm.clock.EXPECT().Now().Return(time.Now())
	tm.store.EXPECT().SetKeyValue(ctx, "last_import:utilities", gomock.Any()).Return(nil)

	result, err := tm.importer.ImportUtilities(ctx, "utilities.csv", importer.Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Rows)
	assert.Equal(t, 3, result.Loaded)
	assert.Equal(t, 1, result.Ignored["Missing utility_number"])

	duke := stored["5416"]
	require.NotNil(t, duke)
	assert.Equal(t, "Duke_Energy`s_Carolinas", duke.UtilityName)
	assert.Equal(t, "USA", duke.Country)
	assert.Equal(t, "NC", duke.StateProvince)
	assert.Equal(t, domain.DivisionTypeNERCRegion, duke.DivisionType)
	assert.Equal(t, "SERC", duke.DivisionID)
	assert.Equal(t, domain.UtilityLookupItemClass, duke.Class)
	assert.Equal(t, duke.UUID, duke.Key)
}

func TestImporter_LastImport(t *testing.T) {
	t.Run("none yet", func(t *testing.T) {
		tm := setupTestImporter(t)
		defer tm.ctrl.Finish()

		tm.store.EXPECT().GetKeyValue(gomock.Any(), "last_import:utilities").Return("", nil)

		result, err := tm.importer.LastImport(context.Background(), importer.KindUtilities)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("decodes the stored result", func(t *testing.T) {
		tm := setupTestImporter(t)
		defer tm.ctrl.Finish()

		tm.store.EXPECT().GetKeyValue(gomock.Any(), "last_import:factors").
			Return(`{"kind":"factors","file":"f.csv","rows":3,"loaded":2,"failed":0,"total":10,"imported_at":"2026-04-01T09:00:00Z"}`, nil)

		result, err := tm.importer.LastImport(context.Background(), importer.KindFactors)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "f.csv", result.File)
		assert.Equal(t, 2, result.Loaded)
		assert.Equal(t, int64(10), result.Total)
		assert.Equal(t, 2026, result.ImportedAt.Year())
	})
}

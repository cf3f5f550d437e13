package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/carbon-engine/internal/adapter"
	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/logger"
	"github.com/feral-file/carbon-engine/internal/store"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

// Kind names what an import loads
type Kind string

const (
	KindFactors   Kind = "factors"
	KindUtilities Kind = "utilities"
)

const (
	defaultFactorType      = "EMISSIONS_FACTOR"
	defaultUtilityCountry  = "USA"
	defaultUtilityDivision = domain.DivisionTypeNERCRegion
)

// ErrMissingColumn is returned when a required header column is absent
var ErrMissingColumn = errors.New("missing column")

// Config holds the worker pool settings
type Config struct {
	Workers   int
	QueueSize int
}

// Options describe the provenance of an import
type Options struct {
	// Source is recorded on every factor; defaults to the file name
	Source string
	// SourceYear is recorded on every factor when the file has no source_year column
	SourceYear string
	// Type tags factors; defaults to EMISSIONS_FACTOR
	Type string
}

// Result summarizes one import
type Result struct {
	Kind       Kind           `json:"kind"`
	File       string         `json:"file"`
	Rows       int            `json:"rows"`
	Loaded     int            `json:"loaded"`
	Failed     int            `json:"failed"`
	Ignored    map[string]int `json:"ignored,omitempty"`
	Total      int64          `json:"total"`
	ImportedAt time.Time      `json:"imported_at"`
}

// IgnoredCount sums the ignored rows over all reasons
func (r *Result) IgnoredCount() int {
	n := 0
	for _, c := range r.Ignored {
		n += c
	}
	return n
}

// Importer loads lookup data from CSV files into the lookup store
//
//go:generate mockgen -source=importer.go -destination=../mocks/importer.go -package=mocks -mock_names=Importer=MockImporter
type Importer interface {
	// ImportFactors loads emissions factors. Each row replaces the stored factors with the same classification key.
	ImportFactors(ctx context.Context, path string, opts Options) (*Result, error)
	// ImportUtilities loads utility lookup items, replacing items with the same identity fields
	ImportUtilities(ctx context.Context, path string, opts Options) (*Result, error)
	// LastImport returns the result of the most recent import of kind, nil if none ran
	LastImport(ctx context.Context, kind Kind) (*Result, error)
}

// Stores is what the importer writes to
type Stores interface {
	store.LookupStore
	store.KeyValueStore
}

type importer struct {
	config Config
	store  Stores
	fs     adapter.FileSystem
	json   adapter.JSON
	clock  adapter.Clock
}

// New creates an importer
func New(cfg Config, st Stores, fs adapter.FileSystem, jsonAdapter adapter.JSON, clock adapter.Clock) Importer {
	if cfg.Workers <= 0 {
		cfg.Workers = 8
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1024
	}
	return &importer{
		config: cfg,
		store:  st,
		fs:     fs,
		json:   jsonAdapter,
		clock:  clock,
	}
}

func (i *importer) ImportFactors(ctx context.Context, path string, opts Options) (*Result, error) {
	if opts.Source == "" {
		opts.Source = filepath.Base(path)
	}
	if opts.Type == "" {
		opts.Type = defaultFactorType
	}

	result := newResult(KindFactors, path)
	rows, err := i.readRows(path, []string{"level_1", "year", "activity_uom", "co2_equivalent_emissions"})
	if err != nil {
		return nil, err
	}

	// Rows sharing a key replace each other; the last one in the file wins
	latest := make(map[string]*schema.EmissionsFactor)
	var order []string
	for _, row := range rows {
		result.Rows++
		factor, reason := buildFactor(row, opts)
		if reason != "" {
			result.Ignored[reason]++
			continue
		}

		key := factorKey(factor)
		if _, ok := latest[key]; ok {
			result.Ignored["Duplicate row"]++
		} else {
			order = append(order, key)
		}
		latest[key] = factor
	}

	err = i.load(ctx, result, len(order), func(n int) error {
		return i.store.PutFactor(ctx, latest[order[n]])
	})
	if err != nil {
		return result, err
	}

	if result.Total, err = i.store.CountFactors(ctx); err != nil {
		return result, err
	}
	return result, i.record(ctx, result)
}

func (i *importer) ImportUtilities(ctx context.Context, path string, opts Options) (*Result, error) {
	result := newResult(KindUtilities, path)
	rows, err := i.readRows(path, []string{"year", "utility_number", "utility_name"})
	if err != nil {
		return nil, err
	}

	latest := make(map[string]*schema.UtilityLookupItem)
	var order []string
	for _, row := range rows {
		result.Rows++
		item, reason := buildUtility(row)
		if reason != "" {
			result.Ignored[reason]++
			continue
		}

		key := utilityKey(item)
		if _, ok := latest[key]; ok {
			result.Ignored["Duplicate row"]++
		} else {
			order = append(order, key)
		}
		latest[key] = item
	}

	err = i.load(ctx, result, len(order), func(n int) error {
		return i.store.PutUtilityLookupItem(ctx, latest[order[n]])
	})
	if err != nil {
		return result, err
	}

	if result.Total, err = i.store.CountUtilityLookupItems(ctx); err != nil {
		return result, err
	}
	return result, i.record(ctx, result)
}

func (i *importer) LastImport(ctx context.Context, kind Kind) (*Result, error) {
	value, err := i.store.GetKeyValue(ctx, lastImportKey(kind))
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}

	var result Result
	if err := i.json.Unmarshal([]byte(value), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal last import: %w", err)
	}
	return &result, nil
}

// load runs put for n records on the worker pool. Failures are counted and the first is returned.
func (i *importer) load(ctx context.Context, result *Result, n int, put func(n int) error) error {
	pool := pond.NewPool(
		i.config.Workers,
		pond.WithQueueSize(i.config.QueueSize),
		pond.WithContext(ctx),
	)

	var (
		loaded   atomic.Int64
		failed   atomic.Int64
		firstErr error
		once     sync.Once
	)
	for idx := 0; idx < n; idx++ {
		pool.Submit(func() {
			if err := put(idx); err != nil {
				failed.Add(1)
				once.Do(func() { firstErr = err })
				logger.WarnCtx(ctx, "Failed to load record", zap.Error(err), zap.String("kind", string(result.Kind)), zap.Int("record", idx))
				return
			}
			loaded.Add(1)
		})
	}
	pool.StopAndWait()

	result.Loaded = int(loaded.Load())
	result.Failed = int(failed.Load())
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Import finished",
		zap.String("kind", string(result.Kind)),
		zap.String("file", result.File),
		zap.Int("rows", result.Rows),
		zap.Int("loaded", result.Loaded),
		zap.Int("ignored", result.IgnoredCount()),
		zap.Int("failed", result.Failed),
	)

	if firstErr != nil {
		return fmt.Errorf("failed to load %d of %d records: %w", result.Failed, n, firstErr)
	}
	return nil
}

// record stores the result as the last import of its kind
func (i *importer) record(ctx context.Context, result *Result) error {
	result.ImportedAt = i.clock.Now().UTC()
	data, err := i.json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal import result: %w", err)
	}
	return i.store.SetKeyValue(ctx, lastImportKey(result.Kind), string(data))
}

// readRows reads a CSV file with a header row into column-keyed rows
func (i *importer) readRows(path string, required []string) ([]map[string]string, error) {
	f, err := i.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s is empty", ErrMissingColumn, path)
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make([]string, len(header))
	present := make(map[string]bool, len(header))
	for n, name := range header {
		columns[n] = normalizeColumn(name)
		present[columns[n]] = true
	}
	for _, name := range required {
		if !present[name] {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		row := make(map[string]string, len(columns))
		for n, value := range record {
			if n < len(columns) {
				row[columns[n]] = strings.TrimSpace(value)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func buildFactor(row map[string]string, opts Options) (*schema.EmissionsFactor, string) {
	year, reason := parseYear(row["year"])
	if reason != "" {
		return nil, reason
	}
	if row["level_1"] == "" {
		return nil, "Missing level_1"
	}
	if row["activity_uom"] == "" {
		return nil, "Missing activity_uom"
	}

	value, err := decimal.NewFromString(row["co2_equivalent_emissions"])
	if err != nil || value.IsNegative() {
		return nil, "Invalid co2_equivalent_emissions"
	}

	factor := &schema.EmissionsFactor{
		UUID:                      uuid.NewString(),
		Class:                     domain.EmissionsFactorClass,
		Type:                      firstNonEmpty(row["type"], opts.Type),
		Scope:                     strings.ToUpper(row["scope"]),
		Level1:                    row["level_1"],
		Level2:                    row["level_2"],
		Level3:                    row["level_3"],
		Level4:                    row["level_4"],
		Text:                      row["text"],
		Year:                      year,
		ActivityUOM:               row["activity_uom"],
		CO2EquivalentEmissions:    value.String(),
		CO2EquivalentEmissionsUOM: firstNonEmpty(row["co2_equivalent_emissions_uom"], "kg"),
		DivisionType:              row["division_type"],
		DivisionID:                row["division_id"],
		Source:                    firstNonEmpty(row["source"], opts.Source),
		SourceYear:                firstNonEmpty(row["source_year"], opts.SourceYear),
	}

	if share := row["percent_of_renewables"]; share != "" {
		if _, err := decimal.NewFromString(share); err != nil {
			return nil, "Invalid percent_of_renewables"
		}
		factor.PercentOfRenewables = &share
	}
	return factor, ""
}

func buildUtility(row map[string]string) (*schema.UtilityLookupItem, string) {
	year, reason := parseYear(row["year"])
	if reason != "" {
		return nil, reason
	}
	if row["utility_number"] == "" {
		return nil, "Missing utility_number"
	}
	if row["utility_name"] == "" {
		return nil, "Missing utility_name"
	}

	id := uuid.NewString()
	return &schema.UtilityLookupItem{
		UUID:          id,
		Class:         domain.UtilityLookupItemClass,
		Key:           id,
		Year:          year,
		UtilityNumber: row["utility_number"],
		UtilityName:   strings.ReplaceAll(strings.ReplaceAll(row["utility_name"], "'", "`"), " ", "_"),
		Country:       firstNonEmpty(row["country"], defaultUtilityCountry),
		StateProvince: row["state_province"],
		DivisionType:  firstNonEmpty(row["division_type"], defaultUtilityDivision),
		DivisionID:    strings.ReplaceAll(row["division_id"], " ", "_"),
	}, ""
}

func parseYear(value string) (string, string) {
	if value == "" {
		return "", "Missing year"
	}
	year := domain.ParseYear(value)
	if year == nil || *year > 9999 {
		return "", "Invalid year"
	}
	return fmt.Sprintf("%04d", *year), ""
}

func factorKey(f *schema.EmissionsFactor) string {
	return strings.ToLower(strings.Join([]string{
		f.ClassificationKey(), f.Year, f.DivisionType, f.DivisionID,
	}, "/"))
}

func utilityKey(u *schema.UtilityLookupItem) string {
	return strings.Join([]string{
		u.Year, u.UtilityNumber, u.UtilityName, u.Country, u.StateProvince, u.DivisionType, u.DivisionID,
	}, "/")
}

// normalizeColumn maps "Level 1" and "level_1" to the same column
func normalizeColumn(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(name)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func newResult(kind Kind, path string) *Result {
	return &Result{
		Kind:    kind,
		File:    filepath.Base(path),
		Ignored: make(map[string]int),
	}
}

func lastImportKey(kind Kind) string {
	return schema.KeyPrefixLastImport + string(kind)
}
